package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/session"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 每个方法显式接收请求级会话
// 3. Create不校验作者是否存在,外键冲突作为存储错误返回
type Repository interface {
	// Create 创建图书,书名或作者重复返回ErrBookAlreadyExists
	Create(ctx context.Context, sess session.Session, name string, authorID uint) (*Book, error)

	// List 按创建顺序返回全部图书,没有数据时返回空切片
	List(ctx context.Context, sess session.Session) ([]*Book, error)

	// GetByID 根据ID查找图书
	GetByID(ctx context.Context, sess session.Session, id uint) (*Book, error)

	// GetByName 根据书名查找图书
	GetByName(ctx context.Context, sess session.Session, name string) (*Book, error)

	// GetByAuthorID 查找作者的图书
	GetByAuthorID(ctx context.Context, sess session.Session, authorID uint) (*Book, error)

	// UpdateByID 部分更新图书,AuthorID无条件写入
	UpdateByID(ctx context.Context, sess session.Session, id uint, update Update) (*Book, error)

	// DeleteByID 删除图书,返回确认信息
	DeleteByID(ctx context.Context, sess session.Session, id uint) (string, error)
}
