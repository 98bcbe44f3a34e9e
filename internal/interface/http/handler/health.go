package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger 存储可用性检查
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Ping 存活检查
// @Summary  存活检查
// @Tags     系统
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health 就绪检查,数据库不可用时返回503
// @Summary  就绪检查
// @Tags     系统
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "down",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "up",
	})
}
