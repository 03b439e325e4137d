package response

import (
	"net/http"

	"go-sysadmin/internal/util/retcode"

	"github.com/gin-gonic/gin"
)

type Body struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// PageBody 分页响应，扁平结构与旧前端对齐
type PageBody struct {
	Code     int         `json:"code"`
	Msg      string      `json:"msg"`
	Total    uint64      `json:"total"`
	PageNo   uint64      `json:"page_no"`
	PageSize uint64      `json:"page_size"`
	Success  bool        `json:"success"`
	Data     interface{} `json:"data"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Code: retcode.SUCCESS, Msg: "successful", Data: data})
}

func SuccessMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Body{Code: retcode.SUCCESS, Msg: msg})
}

func SuccessPage(c *gin.Context, list interface{}, total, pageNo, pageSize uint64) {
	c.JSON(http.StatusOK, PageBody{Code: retcode.SUCCESS, Msg: "successful", Total: total, PageNo: pageNo, PageSize: pageSize, Success: true, Data: list})
}

// Error 业务失败：HTTP 200 + 非零业务码
func Error(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Body{Code: retcode.FAIL, Msg: msg})
}

// Unauthorized 认证失败：缺失/非法/过期令牌
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Body{Code: retcode.UNAUTHORIZED, Msg: msg})
}

// Forbidden 令牌有效但无当前路径权限
func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Body{Code: retcode.FORBIDDEN, Msg: msg})
}
