package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// unmatchedRoute 未匹配路由的path标签,防止任意URL撑爆标签基数
const unmatchedRoute = "unmatched"

// Metrics HTTP指标中间件
// path标签使用路由模板(/api/authors/:id)而不是实际URL
func Metrics() gin.HandlerFunc {
	metrics.InitMetrics()

	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		start := time.Now()

		defer func() {
			metrics.DecGauge(metrics.HTTPRequestsInProgress)

			path := c.FullPath()
			if path == "" {
				path = unmatchedRoute
			}
			metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
				"method": c.Request.Method,
				"path":   path,
				"status": strconv.Itoa(c.Writer.Status()),
			})
			metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
				"method": c.Request.Method,
				"path":   path,
			}, time.Since(start).Seconds())
		}()

		c.Next()
	}
}
