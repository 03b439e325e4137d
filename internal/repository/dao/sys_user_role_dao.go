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

// SysUserRoleDAO 用户-角色关联
type SysUserRoleDAO struct{ DB *gorm.DB }

func NewSysUserRoleDAO(db *gorm.DB) *SysUserRoleDAO { return &SysUserRoleDAO{DB: db} }

func (d *SysUserRoleDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_user_role") }

// CountByUserAndRole 超级管理员判定即 CountByUserAndRole(uid, 1) > 0
func (d *SysUserRoleDAO) CountByUserAndRole(ctx context.Context, uid, roleID int64) (int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysUserRoleDAO.CountByUserAndRole")
	defer span.End()
	var n int64
	if err := d.DB.WithContext(ctx).Model(&model.SysUserRole{}).Where("user_id = ? AND role_id = ?", uid, roleID).Count(&n).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("count user role uid=%d role=%d: %w", uid, roleID, err)
	}
	return n, nil
}

func (d *SysUserRoleDAO) ListRoleIDsByUser(ctx context.Context, uid int64) ([]int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysUserRoleDAO.ListRoleIDsByUser")
	defer span.End()
	var ids []int64
	if err := d.DB.WithContext(ctx).Model(&model.SysUserRole{}).Where("user_id = ?", uid).Pluck("role_id", &ids).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list role ids by user uid=%d: %w", uid, err)
	}
	return ids, nil
}

// CountByRoleIDs 角色删除前的占用校验
func (d *SysUserRoleDAO) CountByRoleIDs(ctx context.Context, roleIDs []int64) (int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysUserRoleDAO.CountByRoleIDs")
	defer span.End()
	if len(roleIDs) == 0 {
		return 0, nil
	}
	var n int64
	if err := d.DB.WithContext(ctx).Model(&model.SysUserRole{}).Where("role_id IN ?", roleIDs).Count(&n).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("count user roles by role ids: %w", err)
	}
	return n, nil
}

// Replace 先删后插，保持与旧实现一致的覆盖语义
func (d *SysUserRoleDAO) Replace(ctx context.Context, uid int64, roleIDs []int64) error {
	ctx, span := d.tracer().Start(ctx, "SysUserRoleDAO.Replace")
	defer span.End()
	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", uid).Delete(&model.SysUserRole{}).Error; err != nil {
			return err
		}
		if len(roleIDs) == 0 {
			return nil
		}
		rows := make([]model.SysUserRole, 0, len(roleIDs))
		for _, rid := range roleIDs {
			rows = append(rows, model.SysUserRole{UserID: uid, RoleID: rid, StatusID: 1, Sort: 1})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("replace user roles uid=%d: %w", uid, err)
	}
	return nil
}
