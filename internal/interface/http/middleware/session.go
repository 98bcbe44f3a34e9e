package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/session"
	"github.com/xiebiao/bookshelf/pkg/response"
)

const sessionKey = "db_session"

// SessionOpener 请求级会话的来源
type SessionOpener interface {
	Open(ctx context.Context) (session.Session, error)
}

// Session 请求级数据库会话中间件
//
// 1. 请求开始时获取会话并放入gin.Context
// 2. 处理器通过MustGetSession取出,传给仓储
// 3. defer释放会话,正常返回、错误返回、panic都会执行
func Session(opener SessionOpener, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := opener.Open(c.Request.Context())
		if err != nil {
			log.Error("获取数据库会话失败", zap.Error(err))
			response.Error(c, err)
			c.Abort()
			return
		}
		defer func() {
			if err := sess.Release(); err != nil {
				log.Warn("释放数据库会话失败", zap.Error(err))
			}
		}()

		SetSession(c, sess)
		c.Next()
	}
}

// SetSession 把会话放入Context
func SetSession(c *gin.Context, sess session.Session) {
	c.Set(sessionKey, sess)
}

// GetSession 从Context获取会话
func GetSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// MustGetSession 获取会话(必须挂载Session中间件)
// 如果不存在会panic,由Recovery中间件兜底
func MustGetSession(c *gin.Context) session.Session {
	sess, ok := GetSession(c)
	if !ok {
		panic("db session not found in context, Session middleware missing")
	}
	return sess
}
