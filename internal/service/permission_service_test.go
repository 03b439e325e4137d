package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sysadmin/internal/domain/model"
)

func newPermissionService(t *testing.T) (*PermissionService, *testDeps) {
	d := newTestDeps(t)
	return NewPermissionService(d.userRoleDAO, d.menuDAO), d
}

// TestResolve_SuperAdmin 超级管理员取全量非空 api_url
func TestResolve_SuperAdmin(t *testing.T) {
	svc, d := newPermissionService(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 1, model.SuperAdminRoleID, nil)

	perms, err := svc.Resolve(context.Background(), 1)
	require.NoError(t, err)
	// 目录没有 api_url, 不进入权限集合
	assert.ElementsMatch(t, []string{"/api/user_list", "/api/role_list", "/api/user_save"}, perms)
}

// TestResolve_NormalUser 普通用户只拿角色关联到的菜单
func TestResolve_NormalUser(t *testing.T) {
	svc, d := newPermissionService(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, []int64{5, 8})

	perms, err := svc.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/api/user_list", "/api/user_save"}, perms)
}

// TestResolve_NoBindings 未绑定角色返回空集合, 不报错
func TestResolve_NoBindings(t *testing.T) {
	svc, d := newPermissionService(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, nil)

	perms, err := svc.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, perms)
}

// TestIsSuperAdmin 角色 1 绑定判定
func TestIsSuperAdmin(t *testing.T) {
	svc, d := newPermissionService(t)
	seedUserWithRole(t, d.db, 1, model.SuperAdminRoleID, nil)

	super, err := svc.IsSuperAdmin(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, super)

	super, err = svc.IsSuperAdmin(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, super)
}
