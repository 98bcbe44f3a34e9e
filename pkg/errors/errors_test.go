package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Run("无内部错误", func(t *testing.T) {
		err := New(ErrCodeAuthorNotFound, "Author with id `1` does not exist!")
		assert.Equal(t, "[40401] Author with id `1` does not exist!", err.Error())
	})

	t.Run("包含内部错误", func(t *testing.T) {
		err := Wrap(errors.New("connection refused"), "创建作者失败")
		assert.Equal(t, "[50000] 创建作者失败: connection refused", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("repo: %w", Wrap(cause, "查询失败"))

	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsAppError(err))
	assert.Equal(t, ErrCodeInternal, GetAppError(err).Code)
}

func TestGetAppError_PlainError(t *testing.T) {
	appErr := GetAppError(errors.New("plain"))

	assert.Equal(t, ErrCodeInternal, appErr.Code)
	assert.EqualError(t, appErr.Err, "plain")
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"作者不存在", New(ErrCodeAuthorNotFound, "x"), KindNotFound},
		{"图书不存在", New(ErrCodeBookNotFound, "x"), KindNotFound},
		{"通用不存在", New(ErrCodeNotFound, "x"), KindNotFound},
		{"重复记录", New(ErrCodeDuplicateEntry, "x"), KindAlreadyExists},
		{"参数错误", ErrInvalidParams, KindInvalidParams},
		{"绑定失败", ErrBindError, KindInvalidParams},
		{"数据库错误", ErrDatabaseError, KindInternal},
		{"普通错误", errors.New("x"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(New(ErrCodeBookNotFound, "x")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(ErrBindError))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(New(ErrCodeDuplicateEntry, "x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("x")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", New(ErrCodeAuthorNotFound, "x"))))
	assert.False(t, IsNotFound(ErrInternal))
	assert.False(t, IsNotFound(nil))
}
