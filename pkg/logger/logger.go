package logger

import (
	"context"
	"fmt"
	"strings"

	"github.com/xiebiao/bookshelf/pkg/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志配置
type Options struct {
	ServiceName  string
	Level        string // debug, info, warn, error
	Format       string // json, console
	Output       string // stdout, stderr, 或文件路径
	EnableCaller bool
}

// New 创建结构化日志
// 所有日志都带上service字段，Error级别以上附带堆栈
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	config.Level = zap.NewAtomicLevelAt(level)

	if opts.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.CallerKey = "caller"

	output := opts.Output
	if output == "" {
		output = "stdout"
	}
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableCaller = !opts.EnableCaller

	if opts.ServiceName != "" {
		config.InitialFields = map[string]interface{}{
			"service": opts.ServiceName,
		}
	}

	return config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// parseLevel 解析日志级别，空字符串按info处理
func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("未知的日志级别: %s", s)
	}
}

// WithTrace 为日志附加当前Span的trace_id和span_id
func WithTrace(ctx context.Context, log *zap.Logger) *zap.Logger {
	traceID := tracing.ExtractTraceID(ctx)
	if traceID == "" {
		return log
	}
	return log.With(
		zap.String("trace_id", traceID),
		zap.String("span_id", tracing.ExtractSpanID(ctx)),
	)
}
