package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/repository/dao"
)

func newDeptService(t *testing.T) (*DeptService, *testDeps) {
	d := newTestDeps(t)
	return NewDeptService(dao.NewSysDeptDAO(d.db)), d
}

func TestDeptDelete_LeafOnly(t *testing.T) {
	svc, _ := newDeptService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, &model.SysDept{ID: 1, DeptName: "总公司", StatusID: 1}))
	require.NoError(t, svc.Save(ctx, &model.SysDept{ID: 2, DeptName: "研发部", ParentID: 1, StatusID: 1}))

	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrDeptHasChildren)
	require.NoError(t, svc.Delete(ctx, 2))

	depts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, depts, 1)
	assert.Equal(t, "总公司", depts[0].DeptName)
}
