package handler

import (
	"github.com/gin-gonic/gin"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/pkg/response"
)

type UserHandler struct{ d Dependencies }

func NewUserHandler(d Dependencies) *UserHandler { return &UserHandler{d: d} }

func (h *UserHandler) List(c *gin.Context) {
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
	list, total, err := h.d.User.List(c.Request.Context(), req.Mobile, req.StatusID, req.PageNo, req.PageSize)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessPage(c, list, uint64(total), uint64(req.PageNo), uint64(req.PageSize))
}

func (h *UserHandler) Save(c *gin.Context) {
	var req struct {
		Mobile   string `json:"mobile" binding:"required"`
		RealName string `json:"real_name" binding:"required"`
		StatusID int8   `json:"status_id"`
		Sort     int    `json:"sort"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	u := &model.SysUser{Mobile: req.Mobile, RealName: req.RealName, StatusID: req.StatusID, Sort: req.Sort, Remark: req.Remark}
	if err := h.d.User.Save(c.Request.Context(), u); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "添加成功")
}

func (h *UserHandler) Update(c *gin.Context) {
	var req struct {
		ID       int64  `json:"id" binding:"required"`
		Mobile   string `json:"mobile" binding:"required"`
		RealName string `json:"real_name" binding:"required"`
		StatusID int8   `json:"status_id"`
		Sort     int    `json:"sort"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	u := &model.SysUser{ID: req.ID, Mobile: req.Mobile, RealName: req.RealName, StatusID: req.StatusID, Sort: req.Sort, Remark: req.Remark}
	if err := h.d.User.Update(c.Request.Context(), u); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *UserHandler) Delete(c *gin.Context) {
	var req struct {
		IDs []int64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.User.Delete(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "删除成功")
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req struct {
		ID       int64  `json:"id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.User.UpdatePassword(c.Request.Context(), req.ID, req.Password); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "修改成功")
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		ID       int64 `json:"id" binding:"required"`
		StatusID int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.User.ChangeStatus(c.Request.Context(), req.ID, req.StatusID); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

// QueryUserRole 用户角色勾选页数据
func (h *UserHandler) QueryUserRole(c *gin.Context) {
	var req struct {
		UserID int64 `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	res, err := h.d.User.QueryUserRole(c.Request.Context(), req.UserID)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.Success(c, res)
}

// UpdateUserRole 整体替换用户角色绑定
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req struct {
		UserID  int64   `json:"user_id" binding:"required"`
		RoleIDs []int64 `json:"role_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.User.UpdateUserRole(c.Request.Context(), req.UserID, req.RoleIDs); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}
