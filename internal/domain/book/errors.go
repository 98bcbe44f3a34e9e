package book

import (
	"fmt"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookAlreadyExists 书名已存在或该作者已有图书
	ErrBookAlreadyExists = apperrors.New(apperrors.ErrCodeDuplicateEntry, "Book with this name or author already exists")
)

// NotFoundByID 指定ID的图书不存在
func NotFoundByID(id uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeBookNotFound, "Book with id `%d` does not exist!", id)
}

// NotFoundByName 指定书名的图书不存在
func NotFoundByName(name string) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeBookNotFound, "Book with name `%s` does not exist!", name)
}

// NotFoundByAuthorID 该作者没有图书
func NotFoundByAuthorID(authorID uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeBookNotFound, "Book with author_id `%d` does not exist!", authorID)
}

// DeletedMessage 删除成功的确认信息
func DeletedMessage(id uint) string {
	return fmt.Sprintf("Book with id '%d' is successfully deleted!", id)
}
