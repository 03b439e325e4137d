package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sysadmin/internal/domain/model"
	redisrepo "go-sysadmin/internal/repository/redis"
	"go-sysadmin/internal/security/jwt"
	"go-sysadmin/pkg/crypto"
)

// capturePublisher 收集投递的登录日志, 代替 kafka
type capturePublisher struct {
	mu      sync.Mutex
	entries []model.SysLoginLog
}

func (p *capturePublisher) Publish(_ context.Context, entry model.SysLoginLog) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, entry)
}

func (p *capturePublisher) last(t *testing.T) model.SysLoginLog {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.entries)
	return p.entries[len(p.entries)-1]
}

func newAuthFixture(t *testing.T) (*AuthService, *testDeps, *jwt.Manager, *redisrepo.Client, *capturePublisher) {
	t.Helper()
	d := newTestDeps(t)
	perm := NewPermissionService(d.userRoleDAO, d.menuDAO)
	tokens := jwt.NewManager("test-secret", 3600, "sysadmin-test")

	mr := miniredis.RunT(t)
	rc := redisrepo.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	pub := &capturePublisher{}
	svc := NewAuthService(d.userDAO, perm, tokens, rc, pub, newTestLogger(), "jwt:jti:")
	return svc, d, tokens, rc, pub
}

func TestLogin_Success(t *testing.T) {
	svc, d, tokens, rc, pub := newAuthFixture(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, []int64{5})

	token, err := svc.Login(context.Background(), "13800000007", "secret", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "测试用户", claims.Username)
	assert.Equal(t, []string{"/api/user_list"}, claims.Permissions)
	require.NotEmpty(t, claims.JTI)

	// JTI 写入白名单
	assert.Equal(t, "1", rc.Get(context.Background(), "jwt:jti:"+claims.JTI))

	entry := pub.last(t)
	assert.Equal(t, int8(1), entry.StatusID)
	assert.Equal(t, "13800000007", entry.Mobile)
	assert.Equal(t, "127.0.0.1", entry.IPAddr)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, d, _, _, pub := newAuthFixture(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, []int64{5})

	_, err := svc.Login(context.Background(), "13800000007", "bad-pass", "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, int8(0), pub.last(t).StatusID)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "13899999999", "secret", "127.0.0.1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_Disabled(t *testing.T) {
	svc, d, _, _, _ := newAuthFixture(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, []int64{5})
	require.NoError(t, d.db.Model(&model.SysUser{}).Where("id = ?", 7).Update("status_id", 0).Error)

	_, err := svc.Login(context.Background(), "13800000007", "secret", "127.0.0.1")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

// 没有任何角色菜单绑定的用户拒绝登录
func TestLogin_NoPermissions(t *testing.T) {
	svc, d, _, _, _ := newAuthFixture(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, nil)

	_, err := svc.Login(context.Background(), "13800000007", "secret", "127.0.0.1")
	assert.ErrorIs(t, err, ErrNoPermissions)
}

// 明文旧口令登录成功后后台升级为 bcrypt
func TestLogin_LegacyPasswordUpgrade(t *testing.T) {
	svc, d, _, _, _ := newAuthFixture(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, []int64{5})

	_, err := svc.Login(context.Background(), "13800000007", "secret", "127.0.0.1")
	require.NoError(t, err)

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		u, err := d.userDAO.FindByMobile(context.Background(), "13800000007")
		require.NoError(t, err)
		if !crypto.IsLegacyPlain(u.Password) {
			assert.True(t, crypto.VerifyPassword(u.Password, "secret"))
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("口令未在限期内升级为 bcrypt")
}

func TestLogout_RevokesJTI(t *testing.T) {
	svc, d, tokens, rc, _ := newAuthFixture(t)
	seedMenus(t, d.db)
	seedUserWithRole(t, d.db, 7, 2, []int64{5})

	token, err := svc.Login(context.Background(), "13800000007", "secret", "127.0.0.1")
	require.NoError(t, err)
	claims, err := tokens.Parse(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims.JTI))
	assert.Empty(t, rc.Get(context.Background(), "jwt:jti:"+claims.JTI))
}
