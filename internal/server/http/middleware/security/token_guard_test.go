package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-sysadmin/internal/logging"
	redisrepo "go-sysadmin/internal/repository/redis"
	"go-sysadmin/internal/security/jwt"
)

func newGuardRouter(t *testing.T, rc *redisrepo.Client) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := jwt.NewManager("guard-test-secret", 3600, "sysadmin-test")
	lg := &logging.Logger{Logger: zap.NewNop()}

	r := gin.New()
	g := r.Group("/api", TokenGuard(m, rc, "jwt:jti:", lg))
	g.GET("/user_list", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetInt64("user_id"),
			"username": c.GetString("username"),
			"jti":      c.GetString("jti"),
		})
	})
	g.GET("/role_list", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, m
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenGuard_MissingToken(t *testing.T) {
	r, _ := newGuardRouter(t, nil)

	w := doGet(r, "/api/user_list", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "请求未携带token")
}

func TestTokenGuard_MalformedHeader(t *testing.T) {
	r, _ := newGuardRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user_list", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenGuard_InvalidToken(t *testing.T) {
	r, _ := newGuardRouter(t, nil)

	w := doGet(r, "/api/user_list", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token无效或已过期")
}

func TestTokenGuard_Forbidden(t *testing.T) {
	r, m := newGuardRouter(t, nil)

	token, err := m.Generate(7, "张三", []string{"/api/user_list"}, "jti-f")
	require.NoError(t, err)

	w := doGet(r, "/api/role_list", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "无权限访问")
}

func TestTokenGuard_AllowsAndInjectsIdentity(t *testing.T) {
	r, m := newGuardRouter(t, nil)

	token, err := m.Generate(7, "张三", []string{"/api/user_list"}, "jti-ok")
	require.NoError(t, err)

	w := doGet(r, "/api/user_list", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), "张三")
	assert.Contains(t, w.Body.String(), "jti-ok")
}

// 注销后 JTI 不在白名单, token 立即失效
func TestTokenGuard_RevokedJTI(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := redisrepo.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	r, m := newGuardRouter(t, rc)

	token, err := m.Generate(7, "张三", []string{"/api/user_list"}, "jti-rev")
	require.NoError(t, err)

	// 未写入白名单, 视同已注销
	w := doGet(r, "/api/user_list", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token已失效")

	// 写入白名单后放行
	require.NoError(t, mr.Set("jwt:jti:jti-rev", "1"))
	w = doGet(r, "/api/user_list", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
