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

type SysNoticeDAO struct{ DB *gorm.DB }

func NewSysNoticeDAO(db *gorm.DB) *SysNoticeDAO { return &SysNoticeDAO{DB: db} }

func (d *SysNoticeDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_notice") }

func (d *SysNoticeDAO) FindByID(ctx context.Context, id int64) (*model.SysNotice, error) {
	ctx, span := d.tracer().Start(ctx, "SysNoticeDAO.FindByID")
	defer span.End()
	var n model.SysNotice
	if err := d.DB.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("find notice by id=%d: %w", id, err)
	}
	return &n, nil
}

func (d *SysNoticeDAO) List(ctx context.Context, title string, noticeType *int8, status *int8, offset, limit int) ([]model.SysNotice, int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysNoticeDAO.List")
	defer span.End()
	q := d.DB.WithContext(ctx).Model(&model.SysNotice{})
	if title != "" {
		q = q.Where("notice_title LIKE ?", "%"+title+"%")
	}
	if noticeType != nil {
		q = q.Where("notice_type = ?", *noticeType)
	}
	if status != nil {
		q = q.Where("status_id = ?", *status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("count notices: %w", err)
	}
	if limit <= 0 {
		limit = 500
	}
	var list []model.SysNotice
	if err := q.Offset(offset).Limit(limit).Order("id DESC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("list notices: %w", err)
	}
	return list, total, nil
}

func (d *SysNoticeDAO) Create(ctx context.Context, n *model.SysNotice) error {
	ctx, span := d.tracer().Start(ctx, "SysNoticeDAO.Create")
	defer span.End()
	if err := d.DB.WithContext(ctx).Create(n).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create notice: %w", err)
	}
	return nil
}

func (d *SysNoticeDAO) Update(ctx context.Context, n *model.SysNotice) error {
	ctx, span := d.tracer().Start(ctx, "SysNoticeDAO.Update")
	defer span.End()
	err := d.DB.WithContext(ctx).Model(&model.SysNotice{}).Where("id = ?", n.ID).Updates(map[string]interface{}{
		"notice_title":   n.NoticeTitle,
		"notice_type":    n.NoticeType,
		"notice_content": n.NoticeContent,
		"status_id":      n.StatusID,
		"remark":         n.Remark,
	}).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update notice id=%d: %w", n.ID, err)
	}
	return nil
}

func (d *SysNoticeDAO) UpdateStatus(ctx context.Context, id int64, status int8) error {
	ctx, span := d.tracer().Start(ctx, "SysNoticeDAO.UpdateStatus")
	defer span.End()
	if err := d.DB.WithContext(ctx).Model(&model.SysNotice{}).Where("id = ?", id).Update("status_id", status).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update notice status id=%d: %w", id, err)
	}
	return nil
}

func (d *SysNoticeDAO) Delete(ctx context.Context, ids []int64) error {
	ctx, span := d.tracer().Start(ctx, "SysNoticeDAO.Delete")
	defer span.End()
	if len(ids) == 0 {
		return nil
	}
	if err := d.DB.WithContext(ctx).Delete(&model.SysNotice{}, ids).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete notices: %w", err)
	}
	return nil
}
