// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分类
//
//   - HTTP层：请求总数、耗时、正在处理的请求数（由中间件记录）
//   - 存储层：仓储操作次数与耗时（按entity/operation/result区分）
//   - 会话：当前占用的数据库会话数、会话获取失败次数
//
// # 命名规范
//
//  1. Counter以`_total`结尾，如`repository_operations_total`
//  2. Histogram以单位结尾，如`http_request_duration_seconds`
//  3. 标签只使用有限取值（method、路由模板、状态码），不要用作者名或ID
//
// # 使用示例
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.ObserveRepositoryOperation("author", "create", err, time.Since(start))
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 仓储操作结果标签
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板，如/api/authors/:id）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 存储层指标

	// RepositoryOperationsTotal 仓储操作总数（Counter）
	// 标签：entity（author/book）、operation（create/list/get_by_id/...）、result（success/not_found/error）
	RepositoryOperationsTotal *prometheus.CounterVec

	// RepositoryOperationDuration 仓储操作耗时（Histogram）
	RepositoryOperationDuration *prometheus.HistogramVec

	// DBSessionsInUse 当前被请求占用的数据库会话数（Gauge）
	DBSessionsInUse prometheus.Gauge

	// DBSessionAcquireFailures 数据库会话获取失败次数（Counter）
	DBSessionAcquireFailures prometheus.Counter
)

// InitMetrics 初始化所有Prometheus指标
//
// 使用promauto注册到默认Registry，重复调用是安全的
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		RepositoryOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "repository_operations_total",
				Help: "仓储操作总数",
			},
			[]string{"entity", "operation", "result"},
		)

		RepositoryOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "repository_operation_duration_seconds",
				Help: "仓储操作耗时（秒）",
				// 单条SQL为主，桶比HTTP更细
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"entity", "operation"},
		)

		DBSessionsInUse = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_sessions_in_use",
				Help: "当前被请求占用的数据库会话数",
			},
		)

		DBSessionAcquireFailures = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "db_session_acquire_failures_total",
				Help: "数据库会话获取失败次数",
			},
		)
	})
}

// Enabled 指标是否已初始化
// 未初始化时所有记录函数都是空操作，方便单元测试直接使用仓储
func Enabled() bool {
	return HTTPRequestsTotal != nil
}

// ObserveRepositoryOperation 记录一次仓储操作
func ObserveRepositoryOperation(entity, operation, result string, elapsed time.Duration) {
	if !Enabled() {
		return
	}
	IncCounterVec(RepositoryOperationsTotal, map[string]string{
		"entity":    entity,
		"operation": operation,
		"result":    result,
	})
	ObserveHistogramVec(RepositoryOperationDuration, map[string]string{
		"entity":    entity,
		"operation": operation,
	}, elapsed.Seconds())
}

// SessionAcquired 会话获取成功
func SessionAcquired() {
	if Enabled() {
		IncGauge(DBSessionsInUse)
	}
}

// SessionReleased 会话已释放
func SessionReleased() {
	if Enabled() {
		DecGauge(DBSessionsInUse)
	}
}

// SessionAcquireFailed 会话获取失败
func SessionAcquireFailed() {
	if Enabled() {
		IncCounter(DBSessionAcquireFailures)
	}
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
