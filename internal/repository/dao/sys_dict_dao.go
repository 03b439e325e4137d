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

type SysDictTypeDAO struct{ DB *gorm.DB }

func NewSysDictTypeDAO(db *gorm.DB) *SysDictTypeDAO { return &SysDictTypeDAO{DB: db} }

func (d *SysDictTypeDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_dict_type") }

func (d *SysDictTypeDAO) FindByType(ctx context.Context, dictType string) (*model.SysDictType, error) {
	ctx, span := d.tracer().Start(ctx, "SysDictTypeDAO.FindByType")
	defer span.End()
	var t model.SysDictType
	if err := d.DB.WithContext(ctx).Where("dict_type = ?", dictType).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("find dict type: %w", err)
	}
	return &t, nil
}

func (d *SysDictTypeDAO) List(ctx context.Context, name string, status *int8, offset, limit int) ([]model.SysDictType, int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysDictTypeDAO.List")
	defer span.End()
	q := d.DB.WithContext(ctx).Model(&model.SysDictType{})
	if name != "" {
		q = q.Where("dict_name LIKE ?", "%"+name+"%")
	}
	if status != nil {
		q = q.Where("status_id = ?", *status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("count dict types: %w", err)
	}
	if limit <= 0 {
		limit = 500
	}
	var list []model.SysDictType
	if err := q.Offset(offset).Limit(limit).Order("id ASC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("list dict types: %w", err)
	}
	return list, total, nil
}

func (d *SysDictTypeDAO) Create(ctx context.Context, t *model.SysDictType) error {
	ctx, span := d.tracer().Start(ctx, "SysDictTypeDAO.Create")
	defer span.End()
	if err := d.DB.WithContext(ctx).Create(t).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create dict type: %w", err)
	}
	return nil
}

func (d *SysDictTypeDAO) Update(ctx context.Context, t *model.SysDictType) error {
	ctx, span := d.tracer().Start(ctx, "SysDictTypeDAO.Update")
	defer span.End()
	err := d.DB.WithContext(ctx).Model(&model.SysDictType{}).Where("id = ?", t.ID).Updates(map[string]interface{}{
		"dict_name": t.DictName,
		"dict_type": t.DictType,
		"status_id": t.StatusID,
		"remark":    t.Remark,
	}).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update dict type id=%d: %w", t.ID, err)
	}
	return nil
}

func (d *SysDictTypeDAO) UpdateStatus(ctx context.Context, id int64, status int8) error {
	ctx, span := d.tracer().Start(ctx, "SysDictTypeDAO.UpdateStatus")
	defer span.End()
	if err := d.DB.WithContext(ctx).Model(&model.SysDictType{}).Where("id = ?", id).Update("status_id", status).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update dict type status id=%d: %w", id, err)
	}
	return nil
}

func (d *SysDictTypeDAO) Delete(ctx context.Context, ids []int64) error {
	ctx, span := d.tracer().Start(ctx, "SysDictTypeDAO.Delete")
	defer span.End()
	if len(ids) == 0 {
		return nil
	}
	if err := d.DB.WithContext(ctx).Delete(&model.SysDictType{}, ids).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete dict types: %w", err)
	}
	return nil
}

type SysDictDataDAO struct{ DB *gorm.DB }

func NewSysDictDataDAO(db *gorm.DB) *SysDictDataDAO { return &SysDictDataDAO{DB: db} }

func (d *SysDictDataDAO) tracer() trace.Tracer { return otel.Tracer("dao.sys_dict_data") }

func (d *SysDictDataDAO) List(ctx context.Context, dictType, label string, status *int8, offset, limit int) ([]model.SysDictData, int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysDictDataDAO.List")
	defer span.End()
	q := d.DB.WithContext(ctx).Model(&model.SysDictData{})
	if dictType != "" {
		q = q.Where("dict_type = ?", dictType)
	}
	if label != "" {
		q = q.Where("dict_label LIKE ?", "%"+label+"%")
	}
	if status != nil {
		q = q.Where("status_id = ?", *status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("count dict data: %w", err)
	}
	if limit <= 0 {
		limit = 500
	}
	var list []model.SysDictData
	if err := q.Offset(offset).Limit(limit).Order("dict_sort ASC, id ASC").Find(&list).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("list dict data: %w", err)
	}
	return list, total, nil
}

func (d *SysDictDataDAO) CountByDictTypes(ctx context.Context, dictTypes []string) (int64, error) {
	ctx, span := d.tracer().Start(ctx, "SysDictDataDAO.CountByDictTypes")
	defer span.End()
	if len(dictTypes) == 0 {
		return 0, nil
	}
	var n int64
	if err := d.DB.WithContext(ctx).Model(&model.SysDictData{}).Where("dict_type IN ?", dictTypes).Count(&n).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("count dict data by types: %w", err)
	}
	return n, nil
}

func (d *SysDictDataDAO) Create(ctx context.Context, r *model.SysDictData) error {
	ctx, span := d.tracer().Start(ctx, "SysDictDataDAO.Create")
	defer span.End()
	if err := d.DB.WithContext(ctx).Create(r).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create dict data: %w", err)
	}
	return nil
}

func (d *SysDictDataDAO) Update(ctx context.Context, r *model.SysDictData) error {
	ctx, span := d.tracer().Start(ctx, "SysDictDataDAO.Update")
	defer span.End()
	err := d.DB.WithContext(ctx).Model(&model.SysDictData{}).Where("id = ?", r.ID).Updates(map[string]interface{}{
		"dict_sort":  r.DictSort,
		"dict_label": r.DictLabel,
		"dict_value": r.DictValue,
		"dict_type":  r.DictType,
		"status_id":  r.StatusID,
		"remark":     r.Remark,
	}).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update dict data id=%d: %w", r.ID, err)
	}
	return nil
}

func (d *SysDictDataDAO) UpdateStatus(ctx context.Context, id int64, status int8) error {
	ctx, span := d.tracer().Start(ctx, "SysDictDataDAO.UpdateStatus")
	defer span.End()
	if err := d.DB.WithContext(ctx).Model(&model.SysDictData{}).Where("id = ?", id).Update("status_id", status).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("update dict data status id=%d: %w", id, err)
	}
	return nil
}

func (d *SysDictDataDAO) Delete(ctx context.Context, ids []int64) error {
	ctx, span := d.tracer().Start(ctx, "SysDictDataDAO.Delete")
	defer span.End()
	if len(ids) == 0 {
		return nil
	}
	if err := d.DB.WithContext(ctx).Delete(&model.SysDictData{}, ids).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete dict data: %w", err)
	}
	return nil
}
