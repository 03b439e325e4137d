package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/pkg/crypto"
)

func newUserService(t *testing.T) (*UserService, *testDeps) {
	d := newTestDeps(t)
	return NewUserService(d.userDAO, d.roleDAO, d.userRoleDAO), d
}

// 新建用户拿到 bcrypt 的初始口令 123456
func TestUserSave_DefaultPassword(t *testing.T) {
	svc, d := newUserService(t)

	u := &model.SysUser{Mobile: "13811112222", RealName: "新用户"}
	require.NoError(t, svc.Save(context.Background(), u))

	stored, err := d.userDAO.FindByMobile(context.Background(), "13811112222")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, crypto.IsLegacyPlain(stored.Password))
	assert.True(t, crypto.VerifyPassword(stored.Password, "123456"))
	assert.Equal(t, int8(1), stored.StatusID)
}

func TestUserList_Paging(t *testing.T) {
	svc, d := newUserService(t)
	for i := int64(1); i <= 3; i++ {
		seedUserWithRole(t, d.db, i*10, i, nil)
	}

	users, total, err := svc.List(context.Background(), "", nil, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)

	// 手机号模糊过滤
	users, total, err = svc.List(context.Background(), "13800000010", nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, int64(10), users[0].ID)
}

// 用户 1 的角色绑定不可改
func TestUpdateUserRole_SuperAdminImmutable(t *testing.T) {
	svc, d := newUserService(t)
	seedUserWithRole(t, d.db, 1, model.SuperAdminRoleID, nil)

	err := svc.UpdateUserRole(context.Background(), 1, []int64{2})
	assert.ErrorIs(t, err, ErrSuperAdminImmutable)

	// 绑定未被动过
	ids, err := d.userRoleDAO.ListRoleIDsByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{model.SuperAdminRoleID}, ids)
}

// 普通用户整体替换绑定
func TestUpdateUserRole_Replace(t *testing.T) {
	svc, d := newUserService(t)
	seedUserWithRole(t, d.db, 7, 2, nil)
	require.NoError(t, d.db.Create(&model.SysRole{ID: 3, RoleName: "运营", StatusID: 1}).Error)

	require.NoError(t, svc.UpdateUserRole(context.Background(), 7, []int64{3}))

	ids, err := d.userRoleDAO.ListRoleIDsByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)
}

func TestQueryUserRole(t *testing.T) {
	svc, d := newUserService(t)
	seedUserWithRole(t, d.db, 7, 2, nil)
	require.NoError(t, d.db.Create(&model.SysRole{ID: 3, RoleName: "运营", StatusID: 1}).Error)

	res, err := svc.QueryUserRole(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, res.AllRoles, 2)
	assert.Equal(t, []int64{2}, res.UserRoleIDs)
}
