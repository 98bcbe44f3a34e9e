package author

import (
	"fmt"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorAlreadyExists 作者名已存在
	ErrAuthorAlreadyExists = apperrors.New(apperrors.ErrCodeDuplicateEntry, "Author with this name already exists")
)

// NotFoundByID 指定ID的作者不存在
func NotFoundByID(id uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeAuthorNotFound, "Author with id `%d` does not exist!", id)
}

// NotFoundByName 指定名字的作者不存在
func NotFoundByName(name string) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeAuthorNotFound, "Author with name `%s` does not exist!", name)
}

// DeletedMessage 删除成功的确认信息
func DeletedMessage(id uint) string {
	return fmt.Sprintf("Author with id '%d' is successfully deleted!", id)
}
