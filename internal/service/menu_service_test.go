package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/pkg/cache"
)

func newMenuService(t *testing.T) (*MenuService, *testDeps) {
	d := newTestDeps(t)
	perm := NewPermissionService(d.userRoleDAO, d.menuDAO)
	return NewMenuService(d.menuDAO, d.userDAO, perm, cache.New(time.Minute), newTestLogger()), d
}

// 普通用户: 角色绑定 {5, 9}, 路由菜单连带直接父级 {2, 3} 一并返回
func TestUserMenu_IncludesDirectParents(t *testing.T) {
	svc, d := newMenuService(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, []int64{5, 9})

	res, err := svc.UserMenu(context.Background(), 7)
	require.NoError(t, err)

	got := make([]int64, 0, len(res.SysMenu))
	for _, m := range res.SysMenu {
		got = append(got, m.ID)
	}
	assert.ElementsMatch(t, []int64{2, 3, 5, 9}, got)
	assert.ElementsMatch(t, []string{"/api/user_list", "/api/role_list"}, res.BtnMenu)
	assert.Equal(t, "测试用户", res.Name)
	assert.NotEmpty(t, res.Avatar)
}

// 仅绑定一个菜单时另一棵子树不出现
func TestUserMenu_ScopedToBindings(t *testing.T) {
	svc, d := newMenuService(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, []int64{5})

	res, err := svc.UserMenu(context.Background(), 7)
	require.NoError(t, err)

	got := make([]int64, 0, len(res.SysMenu))
	for _, m := range res.SysMenu {
		got = append(got, m.ID)
	}
	assert.ElementsMatch(t, []int64{2, 5}, got)
}

// 超级管理员拿全量菜单, 按钮 api_url 全部进入 btn_menu
func TestUserMenu_SuperAdmin(t *testing.T) {
	svc, d := newMenuService(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 1, model.SuperAdminRoleID, nil)

	res, err := svc.UserMenu(context.Background(), 1)
	require.NoError(t, err)

	got := make([]int64, 0, len(res.SysMenu))
	for _, m := range res.SysMenu {
		got = append(got, m.ID)
	}
	// 按钮节点不进入路由菜单
	assert.ElementsMatch(t, []int64{2, 3, 5, 9}, got)
	assert.ElementsMatch(t, []string{"/api/user_list", "/api/role_list", "/api/user_save"}, res.BtnMenu)
}

func TestUserMenu_UserNotFound(t *testing.T) {
	svc, d := newMenuService(t)
	seedMenus(t, d.db)

	_, err := svc.UserMenu(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// List 第二次命中缓存, 新增菜单后缓存失效
func TestMenuList_CacheInvalidation(t *testing.T) {
	svc, d := newMenuService(t)
	seedMenus(t, d.db)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 5)

	// 绕过 service 直接写库, 缓存未失效时仍返回旧数据
	require.NoError(t, d.db.Create(&model.SysMenu{ID: 20, MenuName: "直写菜单", MenuType: model.MenuTypeMenu, StatusID: 1}).Error)
	cached, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 5)

	// 走 service 写入会失效缓存
	require.NoError(t, svc.Save(context.Background(), &model.SysMenu{ID: 21, MenuName: "新菜单", MenuType: model.MenuTypeMenu, StatusID: 1}))
	fresh, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh, 7)
}

func TestMenuDelete_LeafOnly(t *testing.T) {
	svc, d := newMenuService(t)
	seedMenus(t, d.db)

	// 5 下挂按钮 8, 不可删
	assert.ErrorIs(t, svc.Delete(context.Background(), 5), ErrMenuHasChildren)

	// 按钮 8 是叶子, 可删
	require.NoError(t, svc.Delete(context.Background(), 8))
	var n int64
	require.NoError(t, d.db.Model(&model.SysMenu{}).Where("id = ?", 8).Count(&n).Error)
	assert.Zero(t, n)
}
