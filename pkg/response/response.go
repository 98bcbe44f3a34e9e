package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// Response 错误响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. 成功响应直接返回资源本身，不再套一层
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Notification 删除成功等操作的通知消息
type Notification struct {
	Notification string `json:"notification"`
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Notify 返回通知消息
func Notify(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Notification{Notification: message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	author, err := h.repo.GetByID(ctx, sess, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
//
// 原始错误通过c.Error挂到上下文，由日志中间件统一记录
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := apperrors.HTTPStatus(appErr)

	_ = c.Error(err)

	// 5xx不向客户端暴露内部信息
	if status >= http.StatusInternalServerError {
		c.JSON(status, Response{
			Code:    apperrors.ErrCodeInternal,
			Message: apperrors.ErrInternal.Message,
		})
		return
	}

	c.JSON(status, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, status, code int, message string) {
	c.JSON(status, Response{
		Code:    code,
		Message: message,
	})
}
