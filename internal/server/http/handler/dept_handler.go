package handler

import (
	"github.com/gin-gonic/gin"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/pkg/response"
)

type DeptHandler struct{ d Dependencies }

func NewDeptHandler(d Dependencies) *DeptHandler { return &DeptHandler{d: d} }

func (h *DeptHandler) List(c *gin.Context) {
	list, err := h.d.Dept.List(c.Request.Context())
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.Success(c, list)
}

func (h *DeptHandler) Save(c *gin.Context) {
	var req struct {
		DeptName string `json:"dept_name" binding:"required"`
		ParentID int64  `json:"parent_id"`
		Leader   string `json:"leader"`
		Phone    string `json:"phone"`
		StatusID int8   `json:"status_id"`
		Sort     int    `json:"sort"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	d := &model.SysDept{DeptName: req.DeptName, ParentID: req.ParentID, Leader: req.Leader, Phone: req.Phone, StatusID: req.StatusID, Sort: req.Sort, Remark: req.Remark}
	if err := h.d.Dept.Save(c.Request.Context(), d); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "添加成功")
}

func (h *DeptHandler) Update(c *gin.Context) {
	var req struct {
		ID       int64  `json:"id" binding:"required"`
		DeptName string `json:"dept_name" binding:"required"`
		ParentID int64  `json:"parent_id"`
		Leader   string `json:"leader"`
		Phone    string `json:"phone"`
		StatusID int8   `json:"status_id"`
		Sort     int    `json:"sort"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	d := &model.SysDept{ID: req.ID, DeptName: req.DeptName, ParentID: req.ParentID, Leader: req.Leader, Phone: req.Phone, StatusID: req.StatusID, Sort: req.Sort, Remark: req.Remark}
	if err := h.d.Dept.Update(c.Request.Context(), d); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *DeptHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		ID       int64 `json:"id" binding:"required"`
		StatusID int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Dept.ChangeStatus(c.Request.Context(), req.ID, req.StatusID); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *DeptHandler) Delete(c *gin.Context) {
	var req struct {
		ID int64 `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Dept.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "删除成功")
}
