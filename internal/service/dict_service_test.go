package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/pkg/cache"
	"go-sysadmin/internal/repository/dao"
)

func newDictFixture(t *testing.T) (*DictService, *testDeps) {
	d := newTestDeps(t)
	svc := NewDictService(
		dao.NewSysDictTypeDAO(d.db), dao.NewSysDictDataDAO(d.db),
		cache.New(time.Minute), newTestLogger(),
	)
	return svc, d
}

func seedDict(t *testing.T, svc *DictService) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.SaveType(ctx, &model.SysDictType{ID: 1, DictName: "性别", DictType: "sys_gender", StatusID: 1}))
	require.NoError(t, svc.SaveData(ctx, &model.SysDictData{DictSort: 1, DictLabel: "男", DictValue: "1", DictType: "sys_gender", StatusID: 1}))
	require.NoError(t, svc.SaveData(ctx, &model.SysDictData{DictSort: 2, DictLabel: "女", DictValue: "2", DictType: "sys_gender", StatusID: 1}))
	require.NoError(t, svc.SaveData(ctx, &model.SysDictData{DictSort: 3, DictLabel: "未知", DictValue: "3", DictType: "sys_gender", StatusID: 0}))
}

// 类型下仍有数据时拒绝删除
func TestDictDeleteTypes_InUse(t *testing.T) {
	svc, d := newDictFixture(t)
	seedDict(t, svc)

	err := svc.DeleteTypes(context.Background(), []int64{1}, []string{"sys_gender"})
	assert.ErrorIs(t, err, ErrDictTypeInUse)

	var n int64
	require.NoError(t, d.db.Model(&model.SysDictType{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestDictDeleteTypes_Empty(t *testing.T) {
	svc, _ := newDictFixture(t)
	ctx := context.Background()
	require.NoError(t, svc.SaveType(ctx, &model.SysDictType{ID: 2, DictName: "空类型", DictType: "sys_empty", StatusID: 1}))

	require.NoError(t, svc.DeleteTypes(ctx, []int64{2}, []string{"sys_empty"}))
}

// 下拉框接口只返回启用项, 第二次命中缓存
func TestDataByType_EnabledOnlyAndCached(t *testing.T) {
	svc, d := newDictFixture(t)
	seedDict(t, svc)
	ctx := context.Background()

	rows, err := svc.DataByType(ctx, "sys_gender")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "男", rows[0].DictLabel)

	// 直写库不会体现在缓存结果里
	require.NoError(t, d.db.Create(&model.SysDictData{DictLabel: "直写", DictValue: "9", DictType: "sys_gender", StatusID: 1}).Error)
	cached, err := svc.DataByType(ctx, "sys_gender")
	require.NoError(t, err)
	assert.Len(t, cached, 2)

	// 走 service 写入后缓存失效
	require.NoError(t, svc.SaveData(ctx, &model.SysDictData{DictSort: 4, DictLabel: "保密", DictValue: "4", DictType: "sys_gender", StatusID: 1}))
	fresh, err := svc.DataByType(ctx, "sys_gender")
	require.NoError(t, err)
	assert.Len(t, fresh, 4)
}
