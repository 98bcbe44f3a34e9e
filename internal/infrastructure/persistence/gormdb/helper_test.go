package gormdb

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// memoryDSN 每个测试独立的共享缓存内存库
func memoryDSN() string {
	return fmt.Sprintf("file:gormdb_test_%d?mode=memory&cache=shared&_foreign_keys=1", dbSeq.Add(1))
}

// newTestDB 创建已迁移的sqlite内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(memoryDSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库在最后一个连接关闭时销毁,保留空闲连接
	sqlDB.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, autoMigrate(db))
	return db
}

// newTestSession 获取会话,测试结束时释放
func newTestSession(t *testing.T, db *gorm.DB) *Session {
	t.Helper()

	manager, err := NewSessionManager(db)
	require.NoError(t, err)

	sess, err := manager.Acquire(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Release() })
	return sess
}

func strPtr(s string) *string {
	return &s
}
