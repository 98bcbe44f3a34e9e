package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// @title        Bookshelf API
// @version      1.0
// @description  作者与图书管理REST API
// @host         localhost:8080
// @BasePath     /api
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zlog, err := logger.New(logger.Options{
		ServiceName:  cfg.Tracing.ServiceName,
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	zlog.Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("driver", cfg.Database.Driver),
	)

	// 3. 链路追踪（未开启时使用noop Provider）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			zlog.Fatal("初始化链路追踪失败", zap.Error(err))
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				zlog.Warn("关闭链路追踪失败", zap.Error(err))
			}
		}()
		zlog.Info("链路追踪已开启", zap.String("endpoint", cfg.Tracing.Endpoint))
	}

	// 4. 依赖注入（wire_gen.go）
	engine, cleanup, err := InitializeApp(cfg, zlog)
	if err != nil {
		zlog.Fatal("初始化应用失败", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 5. 启动服务
	go func() {
		zlog.Info("服务启动成功", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 6. 优雅关闭：等待信号，处理完进行中的请求
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("服务关闭超时", zap.Error(err))
		return
	}
	zlog.Info("服务已关闭")
}
