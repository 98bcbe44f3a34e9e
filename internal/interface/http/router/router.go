package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookshelf/docs" // 注册swagger文档
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
)

// New 创建并配置Gin引擎
//
// 中间件顺序：Logger → Recovery → Tracing → Metrics
// Logger在最外层，panic被Recovery转成500后仍会记录访问日志
//
// 路由：
//
//	GET  /ping              存活检查
//	GET  /health            就绪检查（ping数据库）
//	GET  /metrics           Prometheus指标
//	GET  /swagger/*any      API文档（release模式关闭）
//	     /api/authors/...   作者CRUD
//	     /api/books/...     图书CRUD
func New(
	cfg *config.Config,
	log *zap.Logger,
	opener middleware.SessionOpener,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.Tracing(cfg.Tracing.ServiceName),
	)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.GET("/ping", healthHandler.Ping)
	r.GET("/health", healthHandler.Health)

	// 生产环境不暴露API文档
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.Use(middleware.Session(opener, log))
	{
		authors := api.Group("/authors")
		{
			authors.POST("", authorHandler.Create)
			authors.GET("", authorHandler.List)
			authors.GET("/by-name/:name", authorHandler.GetByName)
			authors.GET("/:id", authorHandler.Get)
			authors.PATCH("/:id", authorHandler.Update)
			authors.DELETE("/:id", authorHandler.Delete)
		}

		books := api.Group("/books")
		{
			books.POST("", bookHandler.Create)
			books.GET("", bookHandler.List)
			books.GET("/by-name/:name", bookHandler.GetByName)
			books.GET("/by-author/:author_id", bookHandler.GetByAuthor)
			books.GET("/:id", bookHandler.Get)
			books.PATCH("/:id", bookHandler.Update)
			books.DELETE("/:id", bookHandler.Delete)
		}
	}

	return r
}
