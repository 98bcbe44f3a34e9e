package gormdb

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const tracerName = "bookshelf/gormdb"

const (
	entityAuthor = "author"
	entityBook   = "book"
)

// instrument 为一次仓储操作创建子Span,返回的done在操作结束时调用
// NotFound按正常结果处理,不标记Span错误
func instrument(ctx context.Context, entity, operation string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, entity+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.entity", entity),
			attribute.String("db.operation", operation),
		),
	)

	return ctx, func(err error) {
		result := metrics.ResultSuccess
		switch {
		case err == nil:
		case apperrors.IsNotFound(err):
			result = metrics.ResultNotFound
		default:
			result = metrics.ResultError
			tracing.RecordError(span, err)
		}
		metrics.ObserveRepositoryOperation(entity, operation, result, time.Since(start))
		span.End()
	}
}
