package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const httpTracerName = "bookshelf/http"

// Tracing 链路追踪中间件
//
// 1. 从请求头(traceparent)提取上游上下文
// 2. 为每个请求创建Server Span,后续仓储Span挂在它下面
// 3. 5xx标记Span为Error
func Tracing(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		ctx, span := tracing.StartSpan(ctx, httpTracerName, fmt.Sprintf("HTTP %s %s", c.Request.Method, route),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.ServiceName(serviceName),
				semconv.HTTPRequestMethodKey.String(c.Request.Method),
				semconv.HTTPRoute(route),
				semconv.URLPath(c.Request.URL.Path),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(semconv.HTTPResponseStatusCode(status))
		if rid := GetRequestID(c); rid != "" {
			span.SetAttributes(attribute.String("request_id", rid))
		}
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
			if len(c.Errors) > 0 {
				span.RecordError(c.Errors.Last().Err)
			}
		}
	}
}
