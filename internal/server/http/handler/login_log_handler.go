package handler

import (
	"github.com/gin-gonic/gin"

	"go-sysadmin/pkg/response"
)

type LoginLogHandler struct{ d Dependencies }

func NewLoginLogHandler(d Dependencies) *LoginLogHandler { return &LoginLogHandler{d: d} }

func (h *LoginLogHandler) List(c *gin.Context) {
	var req struct {
		pageReq
		Mobile   string `json:"mobile"`
		StatusID *int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	req.normalize()
	list, total, err := h.d.LoginLog.List(c.Request.Context(), req.Mobile, req.StatusID, req.PageNo, req.PageSize)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessPage(c, list, uint64(total), uint64(req.PageNo), uint64(req.PageSize))
}

func (h *LoginLogHandler) Delete(c *gin.Context) {
	var req struct {
		IDs []int64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.LoginLog.Delete(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "删除成功")
}
