package handler

import (
	"github.com/gin-gonic/gin"

	"go-sysadmin/internal/metrics"
	"go-sysadmin/pkg/response"
)

type AuthHandler struct{ d Dependencies }

func NewAuthHandler(d Dependencies) *AuthHandler { return &AuthHandler{d: d} }

// Login 登录签发 token
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Mobile   string `json:"mobile" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	token, err := h.d.Auth.Login(c.Request.Context(), req.Mobile, req.Password, c.ClientIP())
	if err != nil {
		metrics.LoginTotal.WithLabelValues("fail").Inc()
		response.Error(c, err.Error())
		return
	}
	metrics.LoginTotal.WithLabelValues("ok").Inc()
	response.Success(c, token)
}

// Logout 注销当前 token
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	if err := h.d.Auth.Logout(c.Request.Context(), jti); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "退出成功")
}

// QueryUserMenu 登录用户的路由菜单与按钮权限
func (h *AuthHandler) QueryUserMenu(c *gin.Context) {
	uid := c.GetInt64("user_id")
	res, err := h.d.Menu.UserMenu(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.Success(c, res)
}
