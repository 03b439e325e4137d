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

// SysRoleMenuDAO 角色-菜单关联
type SysRoleMenuDAO struct{ DB *gorm.DB }

func NewSysRoleMenuDAO(db *gorm.DB) *SysRoleMenuDAO { return &SysRoleMenuDAO{DB: db} }

func (d *SysRoleMenuDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_role_menu") }

func (d *SysRoleMenuDAO) ListMenuIDsByRole(ctx context.Context, roleID int64) ([]int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysRoleMenuDAO.ListMenuIDsByRole")
	defer span.End()
	var ids []int64
	if err := d.DB.WithContext(ctx).Model(&model.SysRoleMenu{}).Where("role_id = ?", roleID).Pluck("menu_id", &ids).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list menu ids by role id=%d: %w", roleID, err)
	}
	return ids, nil
}

// Replace 先删后插，覆盖角色的菜单授权
func (d *SysRoleMenuDAO) Replace(ctx context.Context, roleID int64, menuIDs []int64) error {
	ctx, span := d.tracer().Start(ctx, "SysRoleMenuDAO.Replace")
	defer span.End()
	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&model.SysRoleMenu{}).Error; err != nil {
			return err
		}
		if len(menuIDs) == 0 {
			return nil
		}
		rows := make([]model.SysRoleMenu, 0, len(menuIDs))
		for _, mid := range menuIDs {
			rows = append(rows, model.SysRoleMenu{RoleID: roleID, MenuID: mid, StatusID: 1, Sort: 1})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("replace role menus role=%d: %w", roleID, err)
	}
	return nil
}

func (d *SysRoleMenuDAO) DeleteByRoleIDs(ctx context.Context, roleIDs []int64) error {
	ctx, span := d.tracer().Start(ctx, "SysRoleMenuDAO.DeleteByRoleIDs")
	defer span.End()
	if len(roleIDs) == 0 {
		return nil
	}
	if err := d.DB.WithContext(ctx).Where("role_id IN ?", roleIDs).Delete(&model.SysRoleMenu{}).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete role menus: %w", err)
	}
	return nil
}
