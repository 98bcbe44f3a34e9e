package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/session"
)

// Repository 作者仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 每个方法显式接收请求级会话,同一请求内的调用共用一个连接
// 3. 不存在时返回NotFound类错误,其他存储错误原样包装后返回
type Repository interface {
	// Create 创建作者,名字重复返回ErrAuthorAlreadyExists
	Create(ctx context.Context, sess session.Session, name string) (*Author, error)

	// List 按创建顺序返回全部作者,没有数据时返回空切片
	List(ctx context.Context, sess session.Session) ([]*Author, error)

	// GetByID 根据ID查找作者
	GetByID(ctx context.Context, sess session.Session, id uint) (*Author, error)

	// GetByName 根据名字查找作者
	GetByName(ctx context.Context, sess session.Session, name string) (*Author, error)

	// UpdateByID 部分更新作者,并刷新updated_at
	UpdateByID(ctx context.Context, sess session.Session, id uint, update Update) (*Author, error)

	// DeleteByID 删除作者,返回确认信息
	DeleteByID(ctx context.Context, sess session.Session, id uint) (string, error)
}
