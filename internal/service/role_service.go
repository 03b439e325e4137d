package service

import (
	"context"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/repository/dao"
)

// RoleMenuResult 角色菜单勾选页所需数据.
type RoleMenuResult struct {
	AllMenus    []model.SysMenu `json:"menu_list"`
	RoleMenuIDs []int64         `json:"menu_ids"`
}

// RoleService 角色维护与角色菜单绑定.
type RoleService struct {
	roleDAO     *dao.SysRoleDAO
	menuDAO     *dao.SysMenuDAO
	roleMenuDAO *dao.SysRoleMenuDAO
	userRoleDAO *dao.SysUserRoleDAO
}

func NewRoleService(roleDAO *dao.SysRoleDAO, menuDAO *dao.SysMenuDAO, roleMenuDAO *dao.SysRoleMenuDAO, userRoleDAO *dao.SysUserRoleDAO) *RoleService {
	return &RoleService{roleDAO: roleDAO, menuDAO: menuDAO, roleMenuDAO: roleMenuDAO, userRoleDAO: userRoleDAO}
}

func (s *RoleService) List(ctx context.Context, name string, status *int8, pageNo, pageSize int) ([]model.SysRole, int64, error) {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.roleDAO.List(ctx, name, status, (pageNo-1)*pageSize, pageSize)
}

func (s *RoleService) Save(ctx context.Context, r *model.SysRole) error {
	return s.roleDAO.Create(ctx, r)
}

func (s *RoleService) Update(ctx context.Context, r *model.SysRole) error {
	return s.roleDAO.Update(ctx, r)
}

func (s *RoleService) ChangeStatus(ctx context.Context, id int64, status int8) error {
	return s.roleDAO.UpdateStatus(ctx, id, status)
}

// Delete 删除角色. 超级管理员角色与仍被用户引用的角色拒绝删除.
// 删除成功后连带清理角色菜单关联.
func (s *RoleService) Delete(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		if id == model.SuperAdminRoleID {
			return ErrSuperRoleImmutable
		}
	}
	n, err := s.userRoleDAO.CountByRoleIDs(ctx, ids)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrRoleInUse
	}
	if err := s.roleDAO.Delete(ctx, ids); err != nil {
		return err
	}
	return s.roleMenuDAO.DeleteByRoleIDs(ctx, ids)
}

// QueryRoleMenu 返回全量菜单与该角色已绑定的菜单 id.
// 超级管理员角色默认持有全部菜单.
func (s *RoleService) QueryRoleMenu(ctx context.Context, roleID int64) (*RoleMenuResult, error) {
	menus, err := s.menuDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var ids []int64
	if roleID == model.SuperAdminRoleID {
		ids = make([]int64, 0, len(menus))
		for _, m := range menus {
			ids = append(ids, m.ID)
		}
	} else {
		ids, err = s.roleMenuDAO.ListMenuIDsByRole(ctx, roleID)
		if err != nil {
			return nil, err
		}
	}
	return &RoleMenuResult{AllMenus: menus, RoleMenuIDs: ids}, nil
}

// UpdateRoleMenu 整体替换角色的菜单绑定.
func (s *RoleService) UpdateRoleMenu(ctx context.Context, roleID int64, menuIDs []int64) error {
	return s.roleMenuDAO.Replace(ctx, roleID, menuIDs)
}
