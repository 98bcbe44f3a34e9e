package dto

import "github.com/xiebiao/bookshelf/internal/domain/author"

// CreateAuthorRequest HTTP创建作者请求
type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required,max=64" example:"Author 1"`
}

// UpdateAuthorRequest HTTP部分更新作者请求
// name缺省或为空字符串时保持原值
type UpdateAuthorRequest struct {
	Name *string `json:"name" binding:"omitempty,max=64" example:"Author 2"`
}

// AuthorResponse HTTP作者响应
type AuthorResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Author 1"`
}

// NewAuthorResponse 领域实体 → 响应
func NewAuthorResponse(a *author.Author) AuthorResponse {
	return AuthorResponse{
		ID:   a.ID,
		Name: a.Name,
	}
}

// NewAuthorListResponse 列表响应,没有数据时返回空数组而不是null
func NewAuthorListResponse(authors []*author.Author) []AuthorResponse {
	list := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		list = append(list, NewAuthorResponse(a))
	}
	return list
}
