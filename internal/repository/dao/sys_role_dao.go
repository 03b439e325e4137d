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

type SysRoleDAO struct{ DB *gorm.DB }

func NewSysRoleDAO(db *gorm.DB) *SysRoleDAO { return &SysRoleDAO{DB: db} }

func (d *SysRoleDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_role") }

func (d *SysRoleDAO) FindByID(ctx context.Context, id int64) (*model.SysRole, error) {
	ctx, span := d.tracer().Start(ctx, "SysRoleDAO.FindByID")
	defer span.End()
	var r model.SysRole
	if err := d.DB.WithContext(ctx).First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("find role by id=%d: %w", id, err)
	}
	return &r, nil
}

func (d *SysRoleDAO) ListAll(ctx context.Context) ([]model.SysRole, error) {
	ctx, span := d.tracer().Start(ctx, "SysRoleDAO.ListAll")
	defer span.End()
	var list []model.SysRole
	if err := d.DB.WithContext(ctx).Order("sort ASC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return list, nil
}

func (d *SysRoleDAO) List(ctx context.Context, name string, status *int8, offset, limit int) ([]model.SysRole, int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysRoleDAO.List")
	defer span.End()
	q := d.DB.WithContext(ctx).Model(&model.SysRole{})
	if name != "" {
		q = q.Where("role_name LIKE ?", "%"+name+"%")
	}
	if status != nil {
		q = q.Where("status_id = ?", *status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("count roles: %w", err)
	}
	if limit <= 0 {
		limit = 500
	}
	var list []model.SysRole
	if err := q.Offset(offset).Limit(limit).Order("sort ASC, id ASC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("list roles: %w", err)
	}
	return list, total, nil
}

func (d *SysRoleDAO) Create(ctx context.Context, r *model.SysRole) error {
	ctx, span := d.tracer().Start(ctx, "SysRoleDAO.Create")
	defer span.End()
	if err := d.DB.WithContext(ctx).Create(r).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create role: %w", err)
	}
	return nil
}

func (d *SysRoleDAO) Update(ctx context.Context, r *model.SysRole) error {
	ctx, span := d.tracer().Start(ctx, "SysRoleDAO.Update")
	defer span.End()
	err := d.DB.WithContext(ctx).Model(&model.SysRole{}).Where("id = ?", r.ID).Updates(map[string]interface{}{
		"role_name": r.RoleName,
		"status_id": r.StatusID,
		"sort":      r.Sort,
		"remark":    r.Remark,
	}).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update role id=%d: %w", r.ID, err)
	}
	return nil
}

func (d *SysRoleDAO) UpdateStatus(ctx context.Context, id int64, status int8) error {
	ctx, span := d.tracer().Start(ctx, "SysRoleDAO.UpdateStatus")
	defer span.End()
	if err := d.DB.WithContext(ctx).Model(&model.SysRole{}).Where("id = ?", id).Update("status_id", status).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update role status id=%d: %w", id, err)
	}
	return nil
}

func (d *SysRoleDAO) Delete(ctx context.Context, ids []int64) error {
	ctx, span := d.tracer().Start(ctx, "SysRoleDAO.Delete")
	defer span.End()
	if len(ids) == 0 {
		return nil
	}
	if err := d.DB.WithContext(ctx).Delete(&model.SysRole{}, ids).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete roles: %w", err)
	}
	return nil
}
