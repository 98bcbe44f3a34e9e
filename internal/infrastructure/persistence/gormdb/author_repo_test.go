package gormdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

type fakeSession struct{}

func (fakeSession) Release() error { return nil }

func TestAuthorRepository_Create(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, newTestDB(t))
	repo := NewAuthorRepository()

	t.Run("创建成功", func(t *testing.T) {
		a, err := repo.Create(ctx, sess, "Author 1")
		require.NoError(t, err)

		assert.NotZero(t, a.ID)
		assert.Equal(t, "Author 1", a.Name)
		assert.False(t, a.CreatedAt.IsZero())
		assert.Nil(t, a.UpdatedAt)
	})

	t.Run("名字重复", func(t *testing.T) {
		_, err := repo.Create(ctx, sess, "Author 1")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindAlreadyExists, apperrors.KindOf(err))
	})

	t.Run("会话类型不匹配", func(t *testing.T) {
		_, err := repo.Create(ctx, fakeSession{}, "Author 2")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	})
}

func TestAuthorRepository_Get(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, newTestDB(t))
	repo := NewAuthorRepository()

	created, err := repo.Create(ctx, sess, "Author 1")
	require.NoError(t, err)

	t.Run("按ID查询与创建结果一致", func(t *testing.T) {
		got, err := repo.GetByID(ctx, sess, created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Name, got.Name)
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("按ID查询不存在", func(t *testing.T) {
		_, err := repo.GetByID(ctx, sess, 999)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Equal(t, "Author with id `999` does not exist!", apperrors.GetAppError(err).Message)
	})

	t.Run("按名字查询", func(t *testing.T) {
		got, err := repo.GetByName(ctx, sess, "Author 1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = repo.GetByName(ctx, sess, "Nobody")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestAuthorRepository_List(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, newTestDB(t))
	repo := NewAuthorRepository()

	t.Run("空表返回空切片", func(t *testing.T) {
		authors, err := repo.List(ctx, sess)
		require.NoError(t, err)
		assert.NotNil(t, authors)
		assert.Empty(t, authors)
	})

	t.Run("按插入顺序返回", func(t *testing.T) {
		for _, name := range []string{"C", "A", "B"} {
			_, err := repo.Create(ctx, sess, name)
			require.NoError(t, err)
		}

		authors, err := repo.List(ctx, sess)
		require.NoError(t, err)
		require.Len(t, authors, 3)
		assert.Equal(t, "C", authors[0].Name)
		assert.Equal(t, "A", authors[1].Name)
		assert.Equal(t, "B", authors[2].Name)
	})
}

func TestAuthorRepository_UpdateByID(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, newTestDB(t))
	repo := NewAuthorRepository()

	created, err := repo.Create(ctx, sess, "Author 1")
	require.NoError(t, err)

	t.Run("更新名字并刷新updated_at", func(t *testing.T) {
		updated, err := repo.UpdateByID(ctx, sess, created.ID, author.Update{Name: strPtr("Author 2")})
		require.NoError(t, err)

		assert.Equal(t, "Author 2", updated.Name)
		require.NotNil(t, updated.UpdatedAt)

		got, err := repo.GetByID(ctx, sess, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Author 2", got.Name)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("空名字保持原值", func(t *testing.T) {
		updated, err := repo.UpdateByID(ctx, sess, created.ID, author.Update{Name: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "Author 2", updated.Name)

		updated, err = repo.UpdateByID(ctx, sess, created.ID, author.Update{})
		require.NoError(t, err)
		assert.Equal(t, "Author 2", updated.Name)
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := repo.UpdateByID(ctx, sess, 999, author.Update{Name: strPtr("x")})
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("改成已存在的名字", func(t *testing.T) {
		_, err := repo.Create(ctx, sess, "Author 3")
		require.NoError(t, err)

		_, err = repo.UpdateByID(ctx, sess, created.ID, author.Update{Name: strPtr("Author 3")})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindAlreadyExists, apperrors.KindOf(err))
	})
}

func TestAuthorRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, newTestDB(t))
	repo := NewAuthorRepository()

	created, err := repo.Create(ctx, sess, "Author 1")
	require.NoError(t, err)

	msg, err := repo.DeleteByID(ctx, sess, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Author with id '1' is successfully deleted!", msg)

	_, err = repo.GetByID(ctx, sess, created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = repo.DeleteByID(ctx, sess, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAuthorRepository_DeleteWithBook(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, newTestDB(t))
	authors := NewAuthorRepository()
	books := NewBookRepository()

	a, err := authors.Create(ctx, sess, "Author 1")
	require.NoError(t, err)
	_, err = books.Create(ctx, sess, "Book 1", a.ID)
	require.NoError(t, err)

	_, err = authors.DeleteByID(ctx, sess, a.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))

	// 作者仍然存在
	_, err = authors.GetByID(ctx, sess, a.ID)
	assert.NoError(t, err)
}
