package gormdb

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，按配置选择mysql/postgres/sqlite驱动
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 开启TranslateError，唯一约束/外键冲突统一翻译成gorm错误
// 5. 返回的cleanup在程序退出时关闭连接池
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 最大打开连接数（同时也是并发请求会话数的上限）
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info("数据库连接成功", zap.String("driver", cfg.Database.Driver))

	// 注意：生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
	if cfg.Database.AutoMigrate {
		if err := autoMigrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("关闭数据库连接失败", zap.Error(err))
			return
		}
		log.Info("数据库连接已关闭")
	}

	return db, cleanup, nil
}

// openDialector 根据驱动名选择GORM Dialector
func openDialector(d config.DatabaseConfig) (gorm.Dialector, error) {
	switch d.Driver {
	case config.DriverMySQL:
		return mysql.Open(d.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(d.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(withForeignKeys(d.DSN())), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", d.Driver)
	}
}

// withForeignKeys sqlite默认不检查外键，需要在DSN中为每个连接开启
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&BookModel{},
	)
}
