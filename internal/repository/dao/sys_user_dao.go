package dao

import (
	"context"
	"errors"
	"fmt"

	"go-sysadmin/internal/domain/model"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// SysUserDAO is a data access object for system users.
type SysUserDAO struct{ DB *gorm.DB }

func NewSysUserDAO(db *gorm.DB) *SysUserDAO { return &SysUserDAO{DB: db} }

func (d *SysUserDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_user") }

// FindByMobile finds the unique user with the given mobile. Returns (nil, nil) when absent.
func (d *SysUserDAO) FindByMobile(ctx context.Context, mobile string) (*model.SysUser, error) {
	ctx, span := d.tracer().Start(ctx, "SysUserDAO.FindByMobile")
	defer span.End()
	var u model.SysUser
	if err := d.DB.WithContext(ctx).Where("mobile = ?", mobile).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("find user by mobile: %w", err)
	}
	return &u, nil
}

func (d *SysUserDAO) FindByID(ctx context.Context, id int64) (*model.SysUser, error) {
	ctx, span := d.tracer().Start(ctx, "SysUserDAO.FindByID")
	defer span.End()
	var u model.SysUser
	if err := d.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("find user by id=%d: %w", id, err)
	}
	return &u, nil
}

func (d *SysUserDAO) Create(ctx context.Context, u *model.SysUser) error {
	ctx, span := d.tracer().Start(ctx, "SysUserDAO.Create")
	defer span.End()
	if err := d.DB.WithContext(ctx).Create(u).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update 只更新可编辑字段，密码走 UpdatePassword
func (d *SysUserDAO) Update(ctx context.Context, u *model.SysUser) error {
	ctx, span := d.tracer().Start(ctx, "SysUserDAO.Update")
	defer span.End()
	err := d.DB.WithContext(ctx).Model(&model.SysUser{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
		"mobile":    u.Mobile,
		"real_name": u.RealName,
		"status_id": u.StatusID,
		"sort":      u.Sort,
		"remark":    u.Remark,
	}).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update user id=%d: %w", u.ID, err)
	}
	return nil
}

func (d *SysUserDAO) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	ctx, span := d.tracer().Start(ctx, "SysUserDAO.UpdatePassword")
	defer span.End()
	if err := d.DB.WithContext(ctx).Model(&model.SysUser{}).Where("id = ?", id).Update("password", hashed).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update password id=%d: %w", id, err)
	}
	return nil
}

func (d *SysUserDAO) UpdateStatus(ctx context.Context, id int64, status int8) error {
	ctx, span := d.tracer().Start(ctx, "SysUserDAO.UpdateStatus")
	defer span.End()
	if err := d.DB.WithContext(ctx).Model(&model.SysUser{}).Where("id = ?", id).Update("status_id", status).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update user status id=%d: %w", id, err)
	}
	return nil
}

func (d *SysUserDAO) Delete(ctx context.Context, ids []int64) error {
	ctx, span := d.tracer().Start(ctx, "SysUserDAO.Delete")
	defer span.End()
	if len(ids) == 0 {
		return nil
	}
	if err := d.DB.WithContext(ctx).Delete(&model.SysUser{}, ids).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}

// List 按 mobile 模糊与状态过滤的分页查询
func (d *SysUserDAO) List(ctx context.Context, mobile string, status *int8, offset, limit int) ([]model.SysUser, int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysUserDAO.List")
	defer span.End()
	q := d.DB.WithContext(ctx).Model(&model.SysUser{})
	if mobile != "" {
		q = q.Where("mobile LIKE ?", "%"+mobile+"%")
	}
	if status != nil {
		q = q.Where("status_id = ?", *status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	if limit <= 0 {
		limit = 500
	}
	var list []model.SysUser
	if err := q.Offset(offset).Limit(limit).Order("sort ASC, id ASC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return list, total, nil
}
