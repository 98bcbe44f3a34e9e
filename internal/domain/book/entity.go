package book

import (
	"time"
)

// Book 图书实体
// 每本书属于一个作者,author_id唯一,即一个作者最多一本书
type Book struct {
	ID        uint
	Name      string // 唯一,最长64
	AuthorID  uint
	CreatedAt time.Time
	UpdatedAt *time.Time // 只在部分更新时写入,创建后为nil
}

// Update 图书部分更新
// 规则不对称:
// 1. Name为nil或空字符串时保持原值
// 2. AuthorID总是写入,调用方必须传入目标作者ID
type Update struct {
	Name     *string
	AuthorID uint
}

// HasName 是否需要更新书名
func (u Update) HasName() bool {
	return u.Name != nil && *u.Name != ""
}
