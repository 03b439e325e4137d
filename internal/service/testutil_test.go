package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/repository/dao"
)

// testDeps 聚合测试常用的 DAO, 省去每个用例重复 New
type testDeps struct {
	db          *gorm.DB
	userDAO     *dao.SysUserDAO
	roleDAO     *dao.SysRoleDAO
	menuDAO     *dao.SysMenuDAO
	userRoleDAO *dao.SysUserRoleDAO
	roleMenuDAO *dao.SysRoleMenuDAO
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	db := newTestDB(t)
	return &testDeps{
		db:          db,
		userDAO:     dao.NewSysUserDAO(db),
		roleDAO:     dao.NewSysRoleDAO(db),
		menuDAO:     dao.NewSysMenuDAO(db),
		userRoleDAO: dao.NewSysUserRoleDAO(db),
		roleMenuDAO: dao.NewSysRoleMenuDAO(db),
	}
}

// newTestDB 进程内 sqlite, 每个用例独立建表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.SysUser{},
		&model.SysRole{},
		&model.SysMenu{},
		&model.SysUserRole{},
		&model.SysRoleMenu{},
		&model.SysDictType{},
		&model.SysDictData{},
		&model.SysNotice{},
		&model.SysDept{},
		&model.SysLoginLog{},
	))
	return db
}

func newTestLogger() *logging.Logger {
	return &logging.Logger{Logger: zap.NewNop()}
}

// seedMenus 构造两级菜单树:
//
//	2 目录           3 目录
//	└ 5 菜单 (/api/user_list)   └ 9 菜单 (/api/role_list)
//	8 按钮 (/api/user_save, parent 5)
func seedMenus(t *testing.T, db *gorm.DB) {
	t.Helper()
	menus := []model.SysMenu{
		{ID: 2, MenuName: "系统管理", ParentID: 0, MenuType: model.MenuTypeDirectory, StatusID: 1, Sort: 1},
		{ID: 3, MenuName: "权限管理", ParentID: 0, MenuType: model.MenuTypeDirectory, StatusID: 1, Sort: 2},
		{ID: 5, MenuName: "用户管理", ParentID: 2, MenuType: model.MenuTypeMenu, MenuURL: "/system/user", APIURL: "/api/user_list", StatusID: 1, Sort: 1},
		{ID: 9, MenuName: "角色管理", ParentID: 3, MenuType: model.MenuTypeMenu, MenuURL: "/system/role", APIURL: "/api/role_list", StatusID: 1, Sort: 1},
		{ID: 8, MenuName: "用户新增", ParentID: 5, MenuType: model.MenuTypeButton, APIURL: "/api/user_save", StatusID: 1, Sort: 1},
	}
	require.NoError(t, db.Create(&menus).Error)
}

// seedUserWithRole 建用户 + 角色 + 绑定, 返回用户 id
func seedUserWithRole(t *testing.T, db *gorm.DB, userID, roleID int64, menuIDs []int64) {
	t.Helper()
	mobile := fmt.Sprintf("138%08d", userID)
	require.NoError(t, db.Create(&model.SysUser{ID: userID, Mobile: mobile, RealName: "测试用户", Password: "secret", StatusID: 1}).Error)
	require.NoError(t, db.Create(&model.SysRole{ID: roleID, RoleName: "测试角色", StatusID: 1}).Error)
	require.NoError(t, db.Create(&model.SysUserRole{UserID: userID, RoleID: roleID, StatusID: 1}).Error)
	for _, mid := range menuIDs {
		require.NoError(t, db.Create(&model.SysRoleMenu{RoleID: roleID, MenuID: mid, StatusID: 1}).Error)
	}
}
