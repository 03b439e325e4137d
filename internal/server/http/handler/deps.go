package handler

import (
	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/security/jwt"
	"go-sysadmin/internal/service"
)

// Dependencies handler 层依赖集合, 由 boot 注入
type Dependencies struct {
	Auth     *service.AuthService
	User     *service.UserService
	Role     *service.RoleService
	Menu     *service.MenuService
	Dict     *service.DictService
	Notice   *service.NoticeService
	Dept     *service.DeptService
	LoginLog *service.LoginLogService
	JWT      *jwt.Manager
	Logger   *logging.Logger
}

// HandlerSet 聚合全部业务 handler, 供 router 使用
type HandlerSet struct {
	Auth     *AuthHandler
	User     *UserHandler
	Role     *RoleHandler
	Menu     *MenuHandler
	Dict     *DictHandler
	Notice   *NoticeHandler
	Dept     *DeptHandler
	LoginLog *LoginLogHandler
}

func NewHandlerSet(d Dependencies) *HandlerSet {
	return &HandlerSet{
		Auth:     NewAuthHandler(d),
		User:     NewUserHandler(d),
		Role:     NewRoleHandler(d),
		Menu:     NewMenuHandler(d),
		Dict:     NewDictHandler(d),
		Notice:   NewNoticeHandler(d),
		Dept:     NewDeptHandler(d),
		LoginLog: NewLoginLogHandler(d),
	}
}
