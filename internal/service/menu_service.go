package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/pkg/cache"
	"go-sysadmin/internal/repository/dao"
)

const menuListCacheKey = "sys:menu:all"

// MenuItem 前端路由菜单节点.
type MenuItem struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parent_id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	APIURL   string `json:"api_url"`
	MenuType int8   `json:"menu_type"`
	Path     string `json:"path"`
}

// UserMenuResult 登录后首页所需的菜单与按钮权限.
type UserMenuResult struct {
	SysMenu []MenuItem `json:"sys_menu"`
	BtnMenu []string   `json:"btn_menu"`
	Avatar  string     `json:"avatar"`
	Name    string     `json:"name"`
}

// MenuService 菜单维护与用户菜单装配.
type MenuService struct {
	menuDAO *dao.SysMenuDAO
	userDAO *dao.SysUserDAO
	perm    *PermissionService
	cache   cache.Cache
	logger  *logging.Logger
}

func NewMenuService(menuDAO *dao.SysMenuDAO, userDAO *dao.SysUserDAO, perm *PermissionService, c cache.Cache, l *logging.Logger) *MenuService {
	return &MenuService{menuDAO: menuDAO, userDAO: userDAO, perm: perm, cache: c, logger: l}
}

func (s *MenuService) tracer() trace.Tracer { return otel.Tracer("service.menu") }

// List 全量菜单, 带缓存.
func (s *MenuService) List(ctx context.Context) ([]model.SysMenu, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, menuListCacheKey); err == nil && raw != "" {
			var menus []model.SysMenu
			if err := json.Unmarshal([]byte(raw), &menus); err == nil {
				return menus, nil
			}
			// 缓存损坏时回源并覆盖
			_ = s.cache.Del(ctx, menuListCacheKey)
		}
	}
	menus, err := s.menuDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if raw, err := json.Marshal(menus); err == nil {
			if err := s.cache.SetEX(ctx, menuListCacheKey, string(raw), 10*time.Minute); err != nil {
				s.logger.WithContext(ctx).Warn("菜单缓存写入失败", zap.Error(err))
			}
		}
	}
	return menus, nil
}

func (s *MenuService) Save(ctx context.Context, m *model.SysMenu) error {
	if err := s.menuDAO.Create(ctx, m); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) Update(ctx context.Context, m *model.SysMenu) error {
	if err := s.menuDAO.Update(ctx, m); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) ChangeStatus(ctx context.Context, id int64, status int8) error {
	if err := s.menuDAO.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete 仅允许删除叶子菜单.
func (s *MenuService) Delete(ctx context.Context, id int64) error {
	n, err := s.menuDAO.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrMenuHasChildren
	}
	if err := s.menuDAO.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// UserMenu 装配用户的路由菜单与按钮权限.
// 目录与菜单节点连带其直接父节点一并返回, 仅上溯一级.
func (s *MenuService) UserMenu(ctx context.Context, userID int64) (*UserMenuResult, error) {
	ctx, span := s.tracer().Start(ctx, "menu.user_menu")
	defer span.End()
	span.SetAttributes(attribute.Int64("user.id", userID))

	user, err := s.userDAO.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user menu: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	super, err := s.perm.IsSuperAdmin(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user menu: %w", err)
	}

	var menus []model.SysMenu
	if super {
		menus, err = s.menuDAO.ListAll(ctx)
	} else {
		menus, err = s.menuDAO.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("user menu: %w", err)
	}

	idSet := make(map[int64]struct{}, len(menus)*2)
	ids := make([]int64, 0, len(menus)*2)
	btnMenu := make([]string, 0, len(menus))
	for _, m := range menus {
		if m.MenuType != model.MenuTypeButton {
			for _, id := range []int64{m.ID, m.ParentID} {
				if _, ok := idSet[id]; !ok {
					idSet[id] = struct{}{}
					ids = append(ids, id)
				}
			}
		}
		if m.APIURL != "" {
			btnMenu = append(btnMenu, m.APIURL)
		}
	}

	routed, err := s.menuDAO.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("user menu: %w", err)
	}
	items := make([]MenuItem, 0, len(routed))
	for _, m := range routed {
		items = append(items, MenuItem{
			ID:       m.ID,
			ParentID: m.ParentID,
			Name:     m.MenuName,
			Icon:     m.MenuIcon,
			APIURL:   m.APIURL,
			MenuType: m.MenuType,
			Path:     m.MenuURL,
		})
	}

	return &UserMenuResult{
		SysMenu: items,
		BtnMenu: btnMenu,
		Avatar:  "https://gw.alipayobjects.com/zos/antfincdn/XAosXuNZyF/BiazfanxmamNRoxxVxka.png",
		Name:    user.RealName,
	}, nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, menuListCacheKey); err != nil {
		s.logger.WithContext(ctx).Warn("菜单缓存失效失败", zap.Error(err))
	}
}
