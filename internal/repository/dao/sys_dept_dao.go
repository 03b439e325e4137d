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

type SysDeptDAO struct{ DB *gorm.DB }

func NewSysDeptDAO(db *gorm.DB) *SysDeptDAO { return &SysDeptDAO{DB: db} }

func (d *SysDeptDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_dept") }

func (d *SysDeptDAO) ListAll(ctx context.Context) ([]model.SysDept, error) {
	ctx, span := d.tracer().Start(ctx, "SysDeptDAO.ListAll")
	defer span.End()
	var list []model.SysDept
	if err := d.DB.WithContext(ctx).Order("sort ASC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list depts: %w", err)
	}
	return list, nil
}

func (d *SysDeptDAO) Create(ctx context.Context, dept *model.SysDept) error {
	ctx, span := d.tracer().Start(ctx, "SysDeptDAO.Create")
	defer span.End()
	if err := d.DB.WithContext(ctx).Create(dept).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create dept: %w", err)
	}
	return nil
}

func (d *SysDeptDAO) Update(ctx context.Context, dept *model.SysDept) error {
	ctx, span := d.tracer().Start(ctx, "SysDeptDAO.Update")
	defer span.End()
	err := d.DB.WithContext(ctx).Model(&model.SysDept{}).Where("id = ?", dept.ID).Updates(map[string]interface{}{
		"parent_id": dept.ParentID,
		"dept_name": dept.DeptName,
		"leader":    dept.Leader,
		"phone":     dept.Phone,
		"status_id": dept.StatusID,
		"sort":      dept.Sort,
		"remark":    dept.Remark,
	}).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update dept id=%d: %w", dept.ID, err)
	}
	return nil
}

func (d *SysDeptDAO) UpdateStatus(ctx context.Context, id int64, status int8) error {
	ctx, span := d.tracer().Start(ctx, "SysDeptDAO.UpdateStatus")
	defer span.End()
	if err := d.DB.WithContext(ctx).Model(&model.SysDept{}).Where("id = ?", id).Update("status_id", status).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update dept status id=%d: %w", id, err)
	}
	return nil
}

func (d *SysDeptDAO) CountChildren(ctx context.Context, id int64) (int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysDeptDAO.CountChildren")
	defer span.End()
	var n int64
	if err := d.DB.WithContext(ctx).Model(&model.SysDept{}).Where("parent_id = ?", id).Count(&n).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("count dept children id=%d: %w", id, err)
	}
	return n, nil
}

func (d *SysDeptDAO) Delete(ctx context.Context, id int64) error {
	ctx, span := d.tracer().Start(ctx, "SysDeptDAO.Delete")
	defer span.End()
	if err := d.DB.WithContext(ctx).Delete(&model.SysDept{}, id).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete dept id=%d: %w", id, err)
	}
	return nil
}
