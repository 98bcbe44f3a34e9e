package gormdb

import (
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// AuthorModel GORM作者模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/author/entity.go是领域实体，不依赖GORM
// 3. UpdatedAt关闭自动维护，只在部分更新时由仓储显式写入
type AuthorModel struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"uniqueIndex;size:64;not null;comment:作者名"`
	CreatedAt time.Time  `gorm:"not null;comment:创建时间"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false;comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "author"
}

// BookModel GORM图书模型
// 设计说明：
// 1. AuthorID唯一，一个作者最多一本书
// 2. 外键ON DELETE RESTRICT，作者还有图书时删除作者会被数据库拒绝
// 3. Author只用于声明外键，不做关联读写
type BookModel struct {
	ID        uint         `gorm:"primaryKey"`
	Name      string       `gorm:"uniqueIndex;size:64;not null;comment:书名"`
	AuthorID  uint         `gorm:"uniqueIndex;not null;comment:作者ID"`
	Author    *AuthorModel `gorm:"foreignKey:AuthorID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	CreatedAt time.Time    `gorm:"not null;comment:创建时间"`
	UpdatedAt *time.Time   `gorm:"autoUpdateTime:false;comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "book"
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(m *AuthorModel) *author.Author {
	return &author.Author{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:        m.ID,
		Name:      m.Name,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
