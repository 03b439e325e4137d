package handler

import (
	"github.com/gin-gonic/gin"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/pkg/response"
)

type MenuHandler struct{ d Dependencies }

func NewMenuHandler(d Dependencies) *MenuHandler { return &MenuHandler{d: d} }

func (h *MenuHandler) List(c *gin.Context) {
	list, err := h.d.Menu.List(c.Request.Context())
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.Success(c, list)
}

func (h *MenuHandler) Save(c *gin.Context) {
	var req struct {
		MenuName string `json:"menu_name" binding:"required"`
		ParentID int64  `json:"parent_id"`
		MenuType int8   `json:"menu_type" binding:"required"`
		MenuURL  string `json:"menu_url"`
		APIURL   string `json:"api_url"`
		MenuIcon string `json:"menu_icon"`
		StatusID int8   `json:"status_id"`
		Sort     int    `json:"sort"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	m := &model.SysMenu{
		MenuName: req.MenuName, ParentID: req.ParentID, MenuType: req.MenuType,
		MenuURL: req.MenuURL, APIURL: req.APIURL, MenuIcon: req.MenuIcon,
		StatusID: req.StatusID, Sort: req.Sort, Remark: req.Remark,
	}
	if err := h.d.Menu.Save(c.Request.Context(), m); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "添加成功")
}

func (h *MenuHandler) Update(c *gin.Context) {
	var req struct {
		ID       int64  `json:"id" binding:"required"`
		MenuName string `json:"menu_name" binding:"required"`
		ParentID int64  `json:"parent_id"`
		MenuType int8   `json:"menu_type" binding:"required"`
		MenuURL  string `json:"menu_url"`
		APIURL   string `json:"api_url"`
		MenuIcon string `json:"menu_icon"`
		StatusID int8   `json:"status_id"`
		Sort     int    `json:"sort"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	m := &model.SysMenu{
		ID: req.ID, MenuName: req.MenuName, ParentID: req.ParentID, MenuType: req.MenuType,
		MenuURL: req.MenuURL, APIURL: req.APIURL, MenuIcon: req.MenuIcon,
		StatusID: req.StatusID, Sort: req.Sort, Remark: req.Remark,
	}
	if err := h.d.Menu.Update(c.Request.Context(), m); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *MenuHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		ID       int64 `json:"id" binding:"required"`
		StatusID int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Menu.ChangeStatus(c.Request.Context(), req.ID, req.StatusID); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *MenuHandler) Delete(c *gin.Context) {
	var req struct {
		ID int64 `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Menu.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "删除成功")
}
