package handler

import (
	"github.com/gin-gonic/gin"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/pkg/response"
)

type NoticeHandler struct{ d Dependencies }

func NewNoticeHandler(d Dependencies) *NoticeHandler { return &NoticeHandler{d: d} }

func (h *NoticeHandler) List(c *gin.Context) {
	var req struct {
		pageReq
		NoticeTitle string `json:"notice_title"`
		NoticeType  *int8  `json:"notice_type"`
		StatusID    *int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	req.normalize()
	list, total, err := h.d.Notice.List(c.Request.Context(), req.NoticeTitle, req.NoticeType, req.StatusID, req.PageNo, req.PageSize)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessPage(c, list, uint64(total), uint64(req.PageNo), uint64(req.PageSize))
}

func (h *NoticeHandler) Detail(c *gin.Context) {
	var req struct {
		ID int64 `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	n, err := h.d.Notice.Detail(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	if n == nil {
		response.Error(c, "公告不存在")
		return
	}
	response.Success(c, n)
}

func (h *NoticeHandler) Save(c *gin.Context) {
	var req struct {
		NoticeTitle   string `json:"notice_title" binding:"required"`
		NoticeType    int8   `json:"notice_type"`
		NoticeContent string `json:"notice_content"`
		StatusID      int8   `json:"status_id"`
		Remark        string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	n := &model.SysNotice{NoticeTitle: req.NoticeTitle, NoticeType: req.NoticeType, NoticeContent: req.NoticeContent, StatusID: req.StatusID, Remark: req.Remark}
	if err := h.d.Notice.Save(c.Request.Context(), n); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "添加成功")
}

func (h *NoticeHandler) Update(c *gin.Context) {
	var req struct {
		ID            int64  `json:"id" binding:"required"`
		NoticeTitle   string `json:"notice_title" binding:"required"`
		NoticeType    int8   `json:"notice_type"`
		NoticeContent string `json:"notice_content"`
		StatusID      int8   `json:"status_id"`
		Remark        string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	n := &model.SysNotice{ID: req.ID, NoticeTitle: req.NoticeTitle, NoticeType: req.NoticeType, NoticeContent: req.NoticeContent, StatusID: req.StatusID, Remark: req.Remark}
	if err := h.d.Notice.Update(c.Request.Context(), n); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *NoticeHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		ID       int64 `json:"id" binding:"required"`
		StatusID int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Notice.ChangeStatus(c.Request.Context(), req.ID, req.StatusID); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	var req struct {
		IDs []int64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Notice.Delete(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "删除成功")
}
