//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 生成方式: wire gen ./cmd/api
// 生成的wire_gen.go包含完整的依赖创建代码，main.go调用其中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
// 包含：数据库连接、请求级会话管理器
var infrastructureSet = wire.NewSet(
	gormdb.NewDB,             // 创建数据库连接（返回cleanup）
	gormdb.NewSessionManager, // 会话管理器
	wire.Bind(new(middleware.SessionOpener), new(*gormdb.SessionManager)),
	wire.Bind(new(handler.Pinger), new(*gormdb.SessionManager)),
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	gormdb.NewAuthorRepository, // 作者仓储
	gormdb.NewBookRepository,   // 图书仓储
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler, // 作者处理器
	handler.NewBookHandler,   // 图书处理器
	handler.NewHealthHandler, // 健康检查
)

// InitializeApp 初始化整个应用
// 返回：配置好的Gin引擎，以及关闭数据库连接的cleanup
//
// 依赖链：
// *gin.Engine 需要 → *handler.AuthorHandler
// *handler.AuthorHandler 需要 → author.Repository
// router.New 需要 → middleware.SessionOpener（*gormdb.SessionManager）
// *gormdb.SessionManager 需要 → *gorm.DB
// *gorm.DB 需要 → *config.Config、*zap.Logger
func InitializeApp(cfg *config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		handlerSet,
		router.New,
	)
	return nil, nil, nil
}
