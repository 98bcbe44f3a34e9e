package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// Recovery panic恢复中间件
// 记录panic和堆栈,返回与其他5xx相同的响应体
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("请求处理panic",
					zap.String("request_id", GetRequestID(c)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				_ = c.Error(fmt.Errorf("panic: %v", r))
				response.ErrorWithCode(c, http.StatusInternalServerError, apperrors.ErrCodeInternal, apperrors.ErrInternal.Message)
				c.Abort()
			}
		}()
		c.Next()
	}
}
