package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"go-sysadmin/internal/config"
	"go-sysadmin/internal/discovery/etcd"
	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/mq/kafka"
	redisrepo "go-sysadmin/internal/repository/redis"
	"go-sysadmin/internal/security/jwt"
	"go-sysadmin/internal/server/http/handler"
	"go-sysadmin/internal/server/http/middleware"
	obs "go-sysadmin/internal/server/http/middleware/observability"
	sec "go-sysadmin/internal/server/http/middleware/security"
)

// NewRouter 只负责中间件装配与路由分组, 业务在 handler 层.
// /api/login 之外的业务路由全部挂 TokenGuard.
func NewRouter(h *handler.HandlerSet, jwtm *jwt.Manager, logger *logging.Logger, producer *kafka.Producer, db *gorm.DB, redis *redisrepo.Client, etcdCli *etcd.Client, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), obs.TraceMiddleware(), obs.LoggerContext(), obs.AccessLog(logger), obs.Metrics())

	// 健康检查
	hc := NewHealthChecker(db, redis, producer, etcdCli)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, hc.Liveness()) })
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		res, code := hc.Readiness(ctx)
		c.JSON(code, res)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/login", h.Auth.Login)

	guard := api.Group("", sec.TokenGuard(jwtm, redis, cfg.Redis.JTIPrefix, logger))
	{
		guard.POST("/logout", h.Auth.Logout)
		guard.GET("/query_user_menu", h.Auth.QueryUserMenu)

		guard.POST("/user_list", h.User.List)
		guard.POST("/user_save", h.User.Save)
		guard.POST("/user_update", h.User.Update)
		guard.POST("/user_delete", h.User.Delete)
		guard.POST("/update_user_password", h.User.UpdatePassword)
		guard.POST("/update_user_status", h.User.UpdateStatus)
		guard.POST("/query_user_role", h.User.QueryUserRole)
		guard.POST("/update_user_role", h.User.UpdateUserRole)

		guard.POST("/role_list", h.Role.List)
		guard.POST("/role_save", h.Role.Save)
		guard.POST("/role_update", h.Role.Update)
		guard.POST("/role_delete", h.Role.Delete)
		guard.POST("/update_role_status", h.Role.UpdateStatus)
		guard.POST("/query_role_menu", h.Role.QueryRoleMenu)
		guard.POST("/update_role_menu", h.Role.UpdateRoleMenu)

		guard.GET("/menu_list", h.Menu.List)
		guard.POST("/menu_save", h.Menu.Save)
		guard.POST("/menu_update", h.Menu.Update)
		guard.POST("/menu_delete", h.Menu.Delete)
		guard.POST("/update_menu_status", h.Menu.UpdateStatus)

		guard.POST("/dict_type_list", h.Dict.TypeList)
		guard.POST("/dict_type_save", h.Dict.TypeSave)
		guard.POST("/dict_type_update", h.Dict.TypeUpdate)
		guard.POST("/dict_type_delete", h.Dict.TypeDelete)
		guard.POST("/update_dict_type_status", h.Dict.UpdateTypeStatus)
		guard.POST("/dict_data_list", h.Dict.DataList)
		guard.POST("/dict_data_save", h.Dict.DataSave)
		guard.POST("/dict_data_update", h.Dict.DataUpdate)
		guard.POST("/dict_data_delete", h.Dict.DataDelete)
		guard.POST("/update_dict_data_status", h.Dict.UpdateDataStatus)
		guard.POST("/query_dict_by_type", h.Dict.DataByType)

		guard.POST("/notice_list", h.Notice.List)
		guard.POST("/notice_detail", h.Notice.Detail)
		guard.POST("/notice_save", h.Notice.Save)
		guard.POST("/notice_update", h.Notice.Update)
		guard.POST("/notice_delete", h.Notice.Delete)
		guard.POST("/update_notice_status", h.Notice.UpdateStatus)

		guard.GET("/dept_list", h.Dept.List)
		guard.POST("/dept_save", h.Dept.Save)
		guard.POST("/dept_update", h.Dept.Update)
		guard.POST("/dept_delete", h.Dept.Delete)
		guard.POST("/update_dept_status", h.Dept.UpdateStatus)

		guard.POST("/login_log_list", h.LoginLog.List)
		guard.POST("/login_log_delete", h.LoginLog.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"code": 1, "msg": "接口不存在"})
	})
	return r
}
