package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func TestUpdate_HasName(t *testing.T) {
	empty, name := "", "Book 2"

	assert.False(t, Update{AuthorID: 1}.HasName())
	assert.False(t, Update{Name: &empty, AuthorID: 1}.HasName())
	assert.True(t, Update{Name: &name}.HasName())
}

func TestErrors(t *testing.T) {
	assert.Equal(t, apperrors.ErrCodeBookNotFound, NotFoundByAuthorID(3).Code)
	assert.Equal(t, "Book with id `2` does not exist!", NotFoundByID(2).Message)
	assert.Equal(t, "Book with id '1' is successfully deleted!", DeletedMessage(1))
}
