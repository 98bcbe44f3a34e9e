package gormdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_DedicatedConnection(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sess := newTestSession(t, db)

	// sqlite的临时表只对创建它的连接可见
	require.NoError(t, sess.DB(ctx).Exec("CREATE TEMP TABLE scratch (x INTEGER)").Error)
	require.NoError(t, sess.DB(ctx).Exec("INSERT INTO scratch VALUES (1)").Error)

	var count int64
	require.NoError(t, sess.DB(ctx).Raw("SELECT COUNT(*) FROM scratch").Scan(&count).Error)
	assert.EqualValues(t, 1, count)

	// 连接池里的其他连接看不到
	assert.Error(t, db.Exec("INSERT INTO scratch VALUES (2)").Error)

	t.Log("✅ 会话内所有查询使用同一个连接")
}

func TestSession_Release(t *testing.T) {
	db := newTestDB(t)
	manager, err := NewSessionManager(db)
	require.NoError(t, err)

	sess, err := manager.Acquire(context.Background())
	require.NoError(t, err)

	assert.NoError(t, sess.Release())
	// 重复释放返回相同结果
	assert.NoError(t, sess.Release())

	// 释放后连接已关闭
	assert.Error(t, sess.DB(context.Background()).Exec("SELECT 1").Error)
}

func TestSessionManager_Ping(t *testing.T) {
	manager, err := NewSessionManager(newTestDB(t))
	require.NoError(t, err)

	assert.NoError(t, manager.Ping(context.Background()))
}

func TestSessionManager_AcquireCanceled(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	manager, err := NewSessionManager(db)
	require.NoError(t, err)

	held, err := manager.Acquire(context.Background())
	require.NoError(t, err)
	defer func() { _ = held.Release() }()

	// 连接池耗尽时等待到ctx结束
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = manager.Acquire(ctx)
	assert.Error(t, err)
}
