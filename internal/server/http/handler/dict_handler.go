package handler

import (
	"github.com/gin-gonic/gin"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/pkg/response"
)

type DictHandler struct{ d Dependencies }

func NewDictHandler(d Dependencies) *DictHandler { return &DictHandler{d: d} }

func (h *DictHandler) TypeList(c *gin.Context) {
	var req struct {
		pageReq
		DictName string `json:"dict_name"`
		StatusID *int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	req.normalize()
	list, total, err := h.d.Dict.ListTypes(c.Request.Context(), req.DictName, req.StatusID, req.PageNo, req.PageSize)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessPage(c, list, uint64(total), uint64(req.PageNo), uint64(req.PageSize))
}

func (h *DictHandler) TypeSave(c *gin.Context) {
	var req struct {
		DictName string `json:"dict_name" binding:"required"`
		DictType string `json:"dict_type" binding:"required"`
		StatusID int8   `json:"status_id"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	t := &model.SysDictType{DictName: req.DictName, DictType: req.DictType, StatusID: req.StatusID, Remark: req.Remark}
	if err := h.d.Dict.SaveType(c.Request.Context(), t); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "添加成功")
}

func (h *DictHandler) TypeUpdate(c *gin.Context) {
	var req struct {
		ID       int64  `json:"id" binding:"required"`
		DictName string `json:"dict_name" binding:"required"`
		DictType string `json:"dict_type" binding:"required"`
		StatusID int8   `json:"status_id"`
		Remark   string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	t := &model.SysDictType{ID: req.ID, DictName: req.DictName, DictType: req.DictType, StatusID: req.StatusID, Remark: req.Remark}
	if err := h.d.Dict.UpdateType(c.Request.Context(), t); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *DictHandler) UpdateTypeStatus(c *gin.Context) {
	var req struct {
		ID       int64 `json:"id" binding:"required"`
		StatusID int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Dict.ChangeTypeStatus(c.Request.Context(), req.ID, req.StatusID); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *DictHandler) TypeDelete(c *gin.Context) {
	var req struct {
		IDs       []int64  `json:"ids" binding:"required"`
		DictTypes []string `json:"dict_types"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Dict.DeleteTypes(c.Request.Context(), req.IDs, req.DictTypes); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "删除成功")
}

func (h *DictHandler) DataList(c *gin.Context) {
	var req struct {
		pageReq
		DictType  string `json:"dict_type"`
		DictLabel string `json:"dict_label"`
		StatusID  *int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	req.normalize()
	list, total, err := h.d.Dict.ListData(c.Request.Context(), req.DictType, req.DictLabel, req.StatusID, req.PageNo, req.PageSize)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessPage(c, list, uint64(total), uint64(req.PageNo), uint64(req.PageSize))
}

// DataByType 下拉框按类型取启用数据, 走缓存
func (h *DictHandler) DataByType(c *gin.Context) {
	var req struct {
		DictType string `json:"dict_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	list, err := h.d.Dict.DataByType(c.Request.Context(), req.DictType)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.Success(c, list)
}

func (h *DictHandler) DataSave(c *gin.Context) {
	var req struct {
		DictType  string `json:"dict_type" binding:"required"`
		DictLabel string `json:"dict_label" binding:"required"`
		DictValue string `json:"dict_value" binding:"required"`
		StatusID  int8   `json:"status_id"`
		Sort      int    `json:"sort"`
		Remark    string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	r := &model.SysDictData{DictType: req.DictType, DictLabel: req.DictLabel, DictValue: req.DictValue, StatusID: req.StatusID, DictSort: req.Sort, Remark: req.Remark}
	if err := h.d.Dict.SaveData(c.Request.Context(), r); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "添加成功")
}

func (h *DictHandler) DataUpdate(c *gin.Context) {
	var req struct {
		ID        int64  `json:"id" binding:"required"`
		DictType  string `json:"dict_type" binding:"required"`
		DictLabel string `json:"dict_label" binding:"required"`
		DictValue string `json:"dict_value" binding:"required"`
		StatusID  int8   `json:"status_id"`
		Sort      int    `json:"sort"`
		Remark    string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	r := &model.SysDictData{ID: req.ID, DictType: req.DictType, DictLabel: req.DictLabel, DictValue: req.DictValue, StatusID: req.StatusID, DictSort: req.Sort, Remark: req.Remark}
	if err := h.d.Dict.UpdateData(c.Request.Context(), r); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *DictHandler) UpdateDataStatus(c *gin.Context) {
	var req struct {
		ID       int64 `json:"id" binding:"required"`
		StatusID int8  `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Dict.ChangeDataStatus(c.Request.Context(), req.ID, req.StatusID); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "更新成功")
}

func (h *DictHandler) DataDelete(c *gin.Context) {
	var req struct {
		IDs      []int64 `json:"ids" binding:"required"`
		DictType string  `json:"dict_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数解析失败")
		return
	}
	if err := h.d.Dict.DeleteData(c.Request.Context(), req.IDs, req.DictType); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.SuccessMsg(c, "删除成功")
}
