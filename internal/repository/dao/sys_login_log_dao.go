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

type SysLoginLogDAO struct{ DB *gorm.DB }

func NewSysLoginLogDAO(db *gorm.DB) *SysLoginLogDAO { return &SysLoginLogDAO{DB: db} }

func (d *SysLoginLogDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_login_log") }

func (d *SysLoginLogDAO) Create(ctx context.Context, l *model.SysLoginLog) error {
	ctx, span := d.tracer().Start(ctx, "SysLoginLogDAO.Create")
	defer span.End()
	if err := d.DB.WithContext(ctx).Create(l).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create login log: %w", err)
	}
	return nil
}

func (d *SysLoginLogDAO) List(ctx context.Context, mobile string, status *int8, offset, limit int) ([]model.SysLoginLog, int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysLoginLogDAO.List")
	defer span.End()
	q := d.DB.WithContext(ctx).Model(&model.SysLoginLog{})
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
		return nil, 0, fmt.Errorf("count login logs: %w", err)
	}
	if limit <= 0 {
		limit = 500
	}
	var list []model.SysLoginLog
	if err := q.Offset(offset).Limit(limit).Order("id DESC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("list login logs: %w", err)
	}
	return list, total, nil
}

func (d *SysLoginLogDAO) Delete(ctx context.Context, ids []int64) error {
	ctx, span := d.tracer().Start(ctx, "SysLoginLogDAO.Delete")
	defer span.End()
	if len(ids) == 0 {
		return nil
	}
	if err := d.DB.WithContext(ctx).Delete(&model.SysLoginLog{}, ids).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete login logs: %w", err)
	}
	return nil
}
