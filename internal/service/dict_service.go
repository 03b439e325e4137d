package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/pkg/cache"
	"go-sysadmin/internal/repository/dao"
)

const dictDataCachePrefix = "sys:dict:data:"

// DictService 字典类型与字典数据维护.
// 按类型取数走缓存, 写操作按类型失效.
type DictService struct {
	typeDAO *dao.SysDictTypeDAO
	dataDAO *dao.SysDictDataDAO
	cache   cache.Cache
	logger  *logging.Logger
}

func NewDictService(typeDAO *dao.SysDictTypeDAO, dataDAO *dao.SysDictDataDAO, c cache.Cache, l *logging.Logger) *DictService {
	return &DictService{typeDAO: typeDAO, dataDAO: dataDAO, cache: c, logger: l}
}

func (s *DictService) ListTypes(ctx context.Context, name string, status *int8, pageNo, pageSize int) ([]model.SysDictType, int64, error) {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.typeDAO.List(ctx, name, status, (pageNo-1)*pageSize, pageSize)
}

func (s *DictService) SaveType(ctx context.Context, t *model.SysDictType) error {
	return s.typeDAO.Create(ctx, t)
}

func (s *DictService) UpdateType(ctx context.Context, t *model.SysDictType) error {
	if err := s.typeDAO.Update(ctx, t); err != nil {
		return err
	}
	s.invalidate(ctx, t.DictType)
	return nil
}

func (s *DictService) ChangeTypeStatus(ctx context.Context, id int64, status int8) error {
	return s.typeDAO.UpdateStatus(ctx, id, status)
}

// DeleteTypes 删除字典类型. 类型下仍有数据时拒绝.
func (s *DictService) DeleteTypes(ctx context.Context, ids []int64, dictTypes []string) error {
	if len(dictTypes) > 0 {
		n, err := s.dataDAO.CountByDictTypes(ctx, dictTypes)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrDictTypeInUse
		}
	}
	if err := s.typeDAO.Delete(ctx, ids); err != nil {
		return err
	}
	for _, t := range dictTypes {
		s.invalidate(ctx, t)
	}
	return nil
}

func (s *DictService) ListData(ctx context.Context, dictType, label string, status *int8, pageNo, pageSize int) ([]model.SysDictData, int64, error) {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.dataDAO.List(ctx, dictType, label, status, (pageNo-1)*pageSize, pageSize)
}

// DataByType 按类型取启用的字典数据, 下拉框场景, 带缓存.
func (s *DictService) DataByType(ctx context.Context, dictType string) ([]model.SysDictData, error) {
	key := dictDataCachePrefix + dictType
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil && raw != "" {
			var rows []model.SysDictData
			if err := json.Unmarshal([]byte(raw), &rows); err == nil {
				return rows, nil
			}
			_ = s.cache.Del(ctx, key)
		}
	}
	enabled := int8(1)
	rows, _, err := s.dataDAO.List(ctx, dictType, "", &enabled, 0, 500)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if raw, err := json.Marshal(rows); err == nil {
			if err := s.cache.SetEX(ctx, key, string(raw), 10*time.Minute); err != nil {
				s.logger.WithContext(ctx).Warn("字典缓存写入失败", zap.Error(err))
			}
		}
	}
	return rows, nil
}

func (s *DictService) SaveData(ctx context.Context, r *model.SysDictData) error {
	if err := s.dataDAO.Create(ctx, r); err != nil {
		return err
	}
	s.invalidate(ctx, r.DictType)
	return nil
}

func (s *DictService) UpdateData(ctx context.Context, r *model.SysDictData) error {
	if err := s.dataDAO.Update(ctx, r); err != nil {
		return err
	}
	s.invalidate(ctx, r.DictType)
	return nil
}

func (s *DictService) ChangeDataStatus(ctx context.Context, id int64, status int8) error {
	return s.dataDAO.UpdateStatus(ctx, id, status)
}

func (s *DictService) DeleteData(ctx context.Context, ids []int64, dictType string) error {
	if err := s.dataDAO.Delete(ctx, ids); err != nil {
		return err
	}
	s.invalidate(ctx, dictType)
	return nil
}

func (s *DictService) invalidate(ctx context.Context, dictType string) {
	if s.cache == nil || dictType == "" {
		return
	}
	if err := s.cache.Del(ctx, dictDataCachePrefix+dictType); err != nil {
		s.logger.WithContext(ctx).Warn("字典缓存失效失败", zap.Error(err))
	}
}
