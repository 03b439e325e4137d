package security

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/metrics"
	redisrepo "go-sysadmin/internal/repository/redis"
	"go-sysadmin/internal/security/jwt"
	"go-sysadmin/pkg/response"
)

// TokenGuard 受保护路由的统一门卫.
// 解析 Bearer token, 校验签名与 JTI 白名单, 再用 token 内嵌的
// 权限快照匹配当前路由. 认证失败 401, 无权限 403.
// 权限以登录时刻的快照为准, 改权限后需重新登录生效.
func TokenGuard(j *jwt.Manager, rc *redisrepo.Client, jtiPrefix string, lg *logging.Logger) gin.HandlerFunc {
	if jtiPrefix == "" {
		jtiPrefix = "jwt:jti:"
	}
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			metrics.GuardRejectTotal.WithLabelValues("missing_token").Inc()
			response.Unauthorized(c, "请求未携带token")
			return
		}
		token := strings.TrimSpace(auth[7:])
		claims, err := j.Parse(token)
		if err != nil {
			metrics.GuardRejectTotal.WithLabelValues("invalid_token").Inc()
			lg.WithContext(c.Request.Context()).Debug("token 校验失败", zap.Error(err))
			response.Unauthorized(c, "token无效或已过期")
			return
		}
		// 注销即删除 JTI, 白名单里查不到的 token 一律拒绝
		if rc != nil {
			if v := rc.Get(c.Request.Context(), jtiPrefix+claims.JTI); v == "" {
				metrics.GuardRejectTotal.WithLabelValues("revoked").Inc()
				response.Unauthorized(c, "token已失效,请重新登录")
				return
			}
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		allowed := false
		for _, p := range claims.Permissions {
			if p == path {
				allowed = true
				break
			}
		}
		if !allowed {
			metrics.GuardRejectTotal.WithLabelValues("forbidden").Inc()
			response.Forbidden(c, "无权限访问")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("jti", claims.JTI)
		c.Next()
	}
}
