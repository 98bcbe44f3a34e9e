package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// pathID 解析路径中的正整数ID
// 解析失败时已写入422响应,调用方直接return
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || id == 0 {
		response.Error(c, apperrors.WithCode(err, apperrors.ErrCodeInvalidParams,
			name+" must be a positive integer, got '"+raw+"'"))
		return 0, false
	}
	return uint(id), true
}

// bindJSON 绑定并校验请求体
// 失败时已写入422响应,调用方直接return
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperrors.WithCode(err, apperrors.ErrCodeBindError, "invalid request body: "+err.Error()))
		return false
	}
	return true
}
