package gormdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/session"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// errUnsupportedSession 传入了非gormdb创建的会话
var errUnsupportedSession = errors.New("unsupported session type")

// Session 请求级数据库会话
// 设计说明:
// 1. 独占连接池中的一个连接(*sql.Conn),GORM的ConnPool指向该连接
// 2. 同一会话内的查询和事务都走同一个连接
// 3. Release把连接还给连接池,可重复调用
type Session struct {
	db   *gorm.DB
	conn *sql.Conn

	once       sync.Once
	releaseErr error
}

var _ session.Session = (*Session)(nil)

// DB 返回绑定到本会话连接的GORM句柄
func (s *Session) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Now 当前时间,与GORM写入created_at使用同一个时钟
func (s *Session) Now() time.Time {
	return s.db.NowFunc()
}

// Release 归还连接
func (s *Session) Release() error {
	s.once.Do(func() {
		s.releaseErr = s.conn.Close()
		metrics.SessionReleased()
	})
	return s.releaseErr
}

// SessionManager 会话管理器,从连接池获取请求级会话
type SessionManager struct {
	db   *gorm.DB
	pool *sql.DB
}

// NewSessionManager 创建会话管理器
func NewSessionManager(db *gorm.DB) (*SessionManager, error) {
	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	return &SessionManager{db: db, pool: pool}, nil
}

// Acquire 获取一个会话
// 连接池耗尽时阻塞,直到有连接归还或ctx结束
func (m *SessionManager) Acquire(ctx context.Context) (*Session, error) {
	conn, err := m.pool.Conn(ctx)
	if err != nil {
		metrics.SessionAcquireFailed()
		return nil, apperrors.WithCode(err, apperrors.ErrCodeDatabaseError, "获取数据库连接失败")
	}

	tx := m.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	tx.Statement.ConnPool = conn

	metrics.SessionAcquired()
	return &Session{db: tx, conn: conn}, nil
}

// Open 获取会话,供HTTP中间件使用
func (m *SessionManager) Open(ctx context.Context) (session.Session, error) {
	sess, err := m.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Ping 检查数据库是否可用
func (m *SessionManager) Ping(ctx context.Context) error {
	return m.pool.PingContext(ctx)
}

// gormSession 取出gormdb会话
func gormSession(sess session.Session) (*Session, error) {
	s, ok := sess.(*Session)
	if !ok || s == nil {
		return nil, apperrors.Wrapf(errUnsupportedSession, "不支持的会话类型: %T", sess)
	}
	return s, nil
}
