package handler

import (
	"github.com/gin-gonic/gin"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/pkg/response"
)

type RoleHandler struct{ d Dependencies }

func NewRoleHandler(d Dependencies) *RoleHandler { return &RoleHandler{d: d} }

func (h *RoleHandler) List(c *gin.Context) {
	var req struct {
		pageReq
		RoleName string `json:"role_name"`
		StatusID *int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	req.normalize()
	list, total, err := h.d.Role.List(c.Request.Context(), req.RoleName, req.StatusID, req.PageNo, req.PageSize)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessPage(c, list, uint64(total), uint64(req.PageNo), uint64(req.PageSize))
}

func (h *RoleHandler) Save(c *gin.Context) {
	var req struct {
		RoleName string `json:"role_name" binding:"required"`
		StatusID int8   `json:"status_id"`
		Sort     int    `json:"sort"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	r := &model.SysRole{RoleName: req.RoleName, StatusID: req.StatusID, Sort: req.Sort, Remark: req.Remark}
	if err := h.d.Role.Save(c.Request.Context(), r); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "添加成功")
}

func (h *RoleHandler) Update(c *gin.Context) {
	var req struct {
		ID       int64  `json:"id" binding:"required"`
		RoleName string `json:"role_name" binding:"required"`
		StatusID int8   `json:"status_id"`
		Sort     int    `json:"sort"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	r := &model.SysRole{ID: req.ID, RoleName: req.RoleName, StatusID: req.StatusID, Sort: req.Sort, Remark: req.Remark}
	if err := h.d.Role.Update(c.Request.Context(), r); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *RoleHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		ID       int64 `json:"id" binding:"required"`
		StatusID int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Role.ChangeStatus(c.Request.Context(), req.ID, req.StatusID); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *RoleHandler) Delete(c *gin.Context) {
	var req struct {
		IDs []int64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Role.Delete(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "删除成功")
}

// QueryRoleMenu 角色菜单勾选页数据
func (h *RoleHandler) QueryRoleMenu(c *gin.Context) {
	var req struct {
		RoleID int64 `json:"role_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	res, err := h.d.Role.QueryRoleMenu(c.Request.Context(), req.RoleID)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.Success(c, res)
}

// UpdateRoleMenu 整体替换角色菜单绑定
func (h *RoleHandler) UpdateRoleMenu(c *gin.Context) {
	var req struct {
		RoleID  int64   `json:"role_id" binding:"required"`
		MenuIDs []int64 `json:"menu_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Role.UpdateRoleMenu(c.Request.Context(), req.RoleID, req.MenuIDs); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}
