package dao

import (
	"context"
	"fmt"

	"go-sysadmin/internal/domain/model"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type SysMenuDAO struct{ DB *gorm.DB }

func NewSysMenuDAO(db *gorm.DB) *SysMenuDAO { return &SysMenuDAO{DB: db} }

func (d *SysMenuDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_menu") }

// ListAll 返回全部菜单，按 sort 升序
func (d *SysMenuDAO) ListAll(ctx context.Context) ([]model.SysMenu, error) {
	ctx, span := d.tracer().Start(ctx, "SysMenuDAO.ListAll")
	defer span.End()
	var list []model.SysMenu
	if err := d.DB.WithContext(ctx).Order("sort ASC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list menus: %w", err)
	}
	return list, nil
}

func (d *SysMenuDAO) ListByIDs(ctx context.Context, ids []int64) ([]model.SysMenu, error) {
	ctx, span := d.tracer().Start(ctx, "SysMenuDAO.ListByIDs")
	defer span.End()
	if len(ids) == 0 {
		return []model.SysMenu{}, nil
	}
	var list []model.SysMenu
	if err := d.DB.WithContext(ctx).Where("id IN ?", ids).Order("sort ASC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list menus by ids: %w", err)
	}
	return list, nil
}

// ListByUser 用户经 user_role/role_menu 连接可达的菜单行
func (d *SysMenuDAO) ListByUser(ctx context.Context, uid int64) ([]model.SysMenu, error) {
	ctx, span := d.tracer().Start(ctx, "SysMenuDAO.ListByUser")
	defer span.End()
	var list []model.SysMenu
	err := d.DB.WithContext(ctx).
		Table("sys_menu").
		Select("DISTINCT sys_menu.*").
		Joins("JOIN sys_role_menu ON sys_role_menu.menu_id = sys_menu.id").
		Joins("JOIN sys_user_role ON sys_user_role.role_id = sys_role_menu.role_id").
		Where("sys_user_role.user_id = ?", uid).
		Find(&list).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list menus by user uid=%d: %w", uid, err)
	}
	return list, nil
}

// ListAPIURLsByUser 返回用户可达的去重 api_url 集合（权限解析用，类型化结果而非裸 map）
func (d *SysMenuDAO) ListAPIURLsByUser(ctx context.Context, uid int64) ([]string, error) {
	ctx, span := d.tracer().Start(ctx, "SysMenuDAO.ListAPIURLsByUser")
	defer span.End()
	var urls []string
	err := d.DB.WithContext(ctx).
		Table("sys_menu").
		Distinct("sys_menu.api_url").
		Joins("JOIN sys_role_menu ON sys_role_menu.menu_id = sys_menu.id").
		Joins("JOIN sys_user_role ON sys_user_role.role_id = sys_role_menu.role_id").
		Where("sys_user_role.user_id = ?", uid).
		Pluck("sys_menu.api_url", &urls).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list api urls by user uid=%d: %w", uid, err)
	}
	return urls, nil
}

func (d *SysMenuDAO) Create(ctx context.Context, m *model.SysMenu) error {
	ctx, span := d.tracer().Start(ctx, "SysMenuDAO.Create")
	defer span.End()
	if err := d.DB.WithContext(ctx).Create(m).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create menu: %w", err)
	}
	return nil
}

func (d *SysMenuDAO) Update(ctx context.Context, m *model.SysMenu) error {
	ctx, span := d.tracer().Start(ctx, "SysMenuDAO.Update")
	defer span.End()
	err := d.DB.WithContext(ctx).Model(&model.SysMenu{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"menu_name": m.MenuName,
		"parent_id": m.ParentID,
		"menu_type": m.MenuType,
		"menu_url":  m.MenuURL,
		"api_url":   m.APIURL,
		"menu_icon": m.MenuIcon,
		"status_id": m.StatusID,
		"sort":      m.Sort,
		"remark":    m.Remark,
	}).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update menu id=%d: %w", m.ID, err)
	}
	return nil
}

func (d *SysMenuDAO) UpdateStatus(ctx context.Context, id int64, status int8) error {
	ctx, span := d.tracer().Start(ctx, "SysMenuDAO.UpdateStatus")
	defer span.End()
	if err := d.DB.WithContext(ctx).Model(&model.SysMenu{}).Where("id = ?", id).Update("status_id", status).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update menu status id=%d: %w", id, err)
	}
	return nil
}

func (d *SysMenuDAO) Delete(ctx context.Context, id int64) error {
	ctx, span := d.tracer().Start(ctx, "SysMenuDAO.Delete")
	defer span.End()
	if err := d.DB.WithContext(ctx).Delete(&model.SysMenu{}, id).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete menu id=%d: %w", id, err)
	}
	return nil
}

// CountChildren 子菜单数量（删除前校验）
func (d *SysMenuDAO) CountChildren(ctx context.Context, id int64) (int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysMenuDAO.CountChildren")
	defer span.End()
	var n int64
	if err := d.DB.WithContext(ctx).Model(&model.SysMenu{}).Where("parent_id = ?", id).Count(&n).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("count menu children id=%d: %w", id, err)
	}
	return n, nil
}
