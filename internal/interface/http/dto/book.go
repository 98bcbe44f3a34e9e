package dto

import "github.com/xiebiao/bookshelf/internal/domain/book"

// CreateBookRequest HTTP创建图书请求
type CreateBookRequest struct {
	Name     string `json:"name" binding:"required,max=64" example:"Book 1"`
	AuthorID uint   `json:"author_id" binding:"required" example:"1"`
}

// UpdateBookRequest HTTP部分更新图书请求
// name缺省或为空字符串时保持原值;author_id必填且总是写入
type UpdateBookRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=64" example:"Book 2"`
	AuthorID uint    `json:"author_id" binding:"required" example:"1"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID       uint   `json:"id" example:"1"`
	Name     string `json:"name" example:"Book 1"`
	AuthorID uint   `json:"author_id" example:"1"`
}

// NewBookResponse 领域实体 → 响应
func NewBookResponse(b *book.Book) BookResponse {
	return BookResponse{
		ID:       b.ID,
		Name:     b.Name,
		AuthorID: b.AuthorID,
	}
}

// NewBookListResponse 列表响应,没有数据时返回空数组而不是null
func NewBookListResponse(books []*book.Book) []BookResponse {
	list := make([]BookResponse, 0, len(books))
	for _, b := range books {
		list = append(list, NewBookResponse(b))
	}
	return list
}
