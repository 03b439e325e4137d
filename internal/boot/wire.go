package boot

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"gorm.io/gorm"

	"go-sysadmin/internal/config"
	"go-sysadmin/internal/discovery/etcd"
	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/mq/kafka"
	"go-sysadmin/internal/pkg/cache"
	"go-sysadmin/internal/repository/dao"
	redisrepo "go-sysadmin/internal/repository/redis"
	jwtsec "go-sysadmin/internal/security/jwt"
	httpSrv "go-sysadmin/internal/server/http"
	"go-sysadmin/internal/server/http/handler"
	"go-sysadmin/internal/service"
)

// ProvideConfig wraps config.Load for wire with external path param
func ProvideConfig(path string) (*config.Config, error) { return config.Load(path) }

// ProvideLayeredCache 通用两层缓存 (L1 本地 60s, L2 Redis)
func ProvideLayeredCache(r *redisrepo.Client) cache.Cache {
	return cache.NewLayered(cache.New(60*time.Second), cache.NewRedisAdapter(r))
}

// ProvideAuthService 登录服务需要 JTI 前缀与登录日志发送端
func ProvideAuthService(u *dao.SysUserDAO, perm *service.PermissionService, j *jwtsec.Manager, r *redisrepo.Client, sender *kafka.LoginLogSender, l *logging.Logger, c *config.Config) *service.AuthService {
	return service.NewAuthService(u, perm, j, r, sender, l, c.Redis.JTIPrefix)
}

func ProvideHandlerSet(a *service.AuthService, u *service.UserService, role *service.RoleService, menu *service.MenuService, dict *service.DictService, notice *service.NoticeService, dept *service.DeptService, logSvc *service.LoginLogService, j *jwtsec.Manager, l *logging.Logger) *handler.HandlerSet {
	return handler.NewHandlerSet(handler.Dependencies{
		Auth: a, User: u, Role: role, Menu: menu, Dict: dict, Notice: notice, Dept: dept, LoginLog: logSvc,
		JWT: j, Logger: l,
	})
}

func ProvideRouter(h *handler.HandlerSet, j *jwtsec.Manager, l *logging.Logger, p *kafka.Producer, db *gorm.DB, r *redisrepo.Client, e *etcd.Client, c *config.Config) *gin.Engine {
	return httpSrv.NewRouter(h, j, l, p, db, r, e, c)
}

var ProviderSet = wire.NewSet(
	ProvideConfig,
	NewLogger,
	NewPostgres,
	NewRedis,
	NewKafkaProducer,
	NewLoginLogSender,
	NewLoginLogConsumer,
	NewEtcd,
	NewJWTManager,
	ProvideLayeredCache,
	// DAO
	dao.NewSysUserDAO,
	dao.NewSysRoleDAO,
	dao.NewSysMenuDAO,
	dao.NewSysUserRoleDAO,
	dao.NewSysRoleMenuDAO,
	dao.NewSysDictTypeDAO,
	dao.NewSysDictDataDAO,
	dao.NewSysNoticeDAO,
	dao.NewSysDeptDAO,
	dao.NewSysLoginLogDAO,
	// Service
	service.NewPermissionService,
	ProvideAuthService,
	service.NewMenuService,
	service.NewUserService,
	service.NewRoleService,
	service.NewDictService,
	service.NewNoticeService,
	service.NewDeptService,
	service.NewLoginLogService,
	// HTTP
	ProvideHandlerSet,
	ProvideRouter,
	NewApp,
)
