package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sysadmin/internal/domain/model"
)

func newRoleService(t *testing.T) (*RoleService, *testDeps) {
	d := newTestDeps(t)
	return NewRoleService(d.roleDAO, d.menuDAO, d.roleMenuDAO, d.userRoleDAO), d
}

// 角色 1 不可删
func TestRoleDelete_SuperRoleImmutable(t *testing.T) {
	svc, d := newRoleService(t)
	require.NoError(t, d.db.Create(&model.SysRole{ID: model.SuperAdminRoleID, RoleName: "超级管理员", StatusID: 1}).Error)

	err := svc.Delete(context.Background(), []int64{model.SuperAdminRoleID})
	assert.ErrorIs(t, err, ErrSuperRoleImmutable)
}

// 仍被用户引用的角色不可删
func TestRoleDelete_InUse(t *testing.T) {
	svc, d := newRoleService(t)
	seedUserWithRole(t, d.db, 7, 2, nil)

	err := svc.Delete(context.Background(), []int64{2})
	assert.ErrorIs(t, err, ErrRoleInUse)

	var n int64
	require.NoError(t, d.db.Model(&model.SysRole{}).Where("id = ?", 2).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

// 删除成功后连带清理菜单关联
func TestRoleDelete_CascadesRoleMenu(t *testing.T) {
	svc, d := newRoleService(t)
	seedMenus(t, d.db)
	require.NoError(t, d.db.Create(&model.SysRole{ID: 2, RoleName: "游离角色", StatusID: 1}).Error)
	require.NoError(t, svc.UpdateRoleMenu(context.Background(), 2, []int64{5, 9}))

	require.NoError(t, svc.Delete(context.Background(), []int64{2}))

	var n int64
	require.NoError(t, d.db.Model(&model.SysRoleMenu{}).Where("role_id = ?", 2).Count(&n).Error)
	assert.Zero(t, n)
}

// 超级管理员角色的菜单勾选页默认全选
func TestQueryRoleMenu_SuperRoleHasAll(t *testing.T) {
	svc, d := newRoleService(t)
	seedMenus(t, d.db)

	res, err := svc.QueryRoleMenu(context.Background(), model.SuperAdminRoleID)
	require.NoError(t, err)
	assert.Len(t, res.AllMenus, 5)
	assert.ElementsMatch(t, []int64{2, 3, 5, 8, 9}, res.RoleMenuIDs)
}

func TestQueryRoleMenu_NormalRole(t *testing.T) {
	svc, d := newRoleService(t)
	seedMenus(t, d.db)
	require.NoError(t, d.db.Create(&model.SysRole{ID: 2, RoleName: "运营", StatusID: 1}).Error)
	require.NoError(t, svc.UpdateRoleMenu(context.Background(), 2, []int64{5}))

	res, err := svc.QueryRoleMenu(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, res.AllMenus, 5)
	assert.Equal(t, []int64{5}, res.RoleMenuIDs)
}

// 整体替换覆盖旧绑定
func TestUpdateRoleMenu_Replace(t *testing.T) {
	svc, d := newRoleService(t)
	seedMenus(t, d.db)
	require.NoError(t, d.db.Create(&model.SysRole{ID: 2, RoleName: "运营", StatusID: 1}).Error)

	require.NoError(t, svc.UpdateRoleMenu(context.Background(), 2, []int64{5, 9}))
	require.NoError(t, svc.UpdateRoleMenu(context.Background(), 2, []int64{9}))

	ids, err := d.roleMenuDAO.ListMenuIDsByRole(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, ids)
}
