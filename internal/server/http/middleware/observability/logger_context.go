package observability

import (
	"context"

	"github.com/gin-gonic/gin"

	"go-sysadmin/internal/logging"
)

// LoggerContext 把 trace_id / user_id 塞进请求 context,
// 下游通过 logger.WithContext 自动带出这些字段
func LoggerContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if v, ok := c.Get(TraceIDKey); ok {
			ctx = context.WithValue(ctx, logging.TraceIDContextKey, v)
		}
		if uid, ok := c.Get("user_id"); ok {
			ctx = context.WithValue(ctx, logging.UserIDContextKey, uid)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
