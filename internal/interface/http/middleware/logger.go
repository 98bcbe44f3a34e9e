package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/pkg/logger"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	slowThreshold   = 3 * time.Second
)

// Logger 请求日志中间件
//
// 1. 生成请求ID(上游已带X-Request-ID时沿用)
// 2. 记录方法、路由、状态码、耗时、客户端IP、trace_id
// 3. 处理器通过response.Error挂到c.Errors的错误在这里统一输出,5xx带上内部原因
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		reqLog := logger.WithTrace(c.Request.Context(), log)
		switch {
		case status >= http.StatusInternalServerError:
			reqLog.Error("请求失败", fields...)
		case status >= http.StatusBadRequest:
			reqLog.Warn("请求异常", fields...)
		case latency > slowThreshold:
			reqLog.Warn("慢请求", fields...)
		default:
			reqLog.Info("请求完成", fields...)
		}
	}
}

// GetRequestID 获取请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
