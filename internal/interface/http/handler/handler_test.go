package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/session"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSession struct{}

func (fakeSession) Release() error { return nil }

// fakeAuthorRepo 内存作者仓储
type fakeAuthorRepo struct {
	authors map[uint]*author.Author
	nextID  uint
	err     error // 非nil时所有操作返回该错误
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: map[uint]*author.Author{}, nextID: 1}
}

func (r *fakeAuthorRepo) Create(_ context.Context, _ session.Session, name string) (*author.Author, error) {
	if r.err != nil {
		return nil, r.err
	}
	a := &author.Author{ID: r.nextID, Name: name, CreatedAt: time.Now()}
	r.authors[a.ID] = a
	r.nextID++
	return a, nil
}

func (r *fakeAuthorRepo) List(_ context.Context, _ session.Session) ([]*author.Author, error) {
	if r.err != nil {
		return nil, r.err
	}
	list := make([]*author.Author, 0, len(r.authors))
	for id := uint(1); id < r.nextID; id++ {
		if a, ok := r.authors[id]; ok {
			list = append(list, a)
		}
	}
	return list, nil
}

func (r *fakeAuthorRepo) GetByID(_ context.Context, _ session.Session, id uint) (*author.Author, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.authors[id]
	if !ok {
		return nil, author.NotFoundByID(id)
	}
	return a, nil
}

func (r *fakeAuthorRepo) GetByName(_ context.Context, _ session.Session, name string) (*author.Author, error) {
	for _, a := range r.authors {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, author.NotFoundByName(name)
}

func (r *fakeAuthorRepo) UpdateByID(ctx context.Context, sess session.Session, id uint, update author.Update) (*author.Author, error) {
	a, err := r.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if update.HasName() {
		a.Name = *update.Name
	}
	return a, nil
}

func (r *fakeAuthorRepo) DeleteByID(_ context.Context, _ session.Session, id uint) (string, error) {
	if _, ok := r.authors[id]; !ok {
		return "", author.NotFoundByID(id)
	}
	delete(r.authors, id)
	return author.DeletedMessage(id), nil
}

// fakeBookRepo 内存图书仓储
type fakeBookRepo struct {
	books  map[uint]*book.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[uint]*book.Book{}, nextID: 1}
}

func (r *fakeBookRepo) Create(_ context.Context, _ session.Session, name string, authorID uint) (*book.Book, error) {
	b := &book.Book{ID: r.nextID, Name: name, AuthorID: authorID, CreatedAt: time.Now()}
	r.books[b.ID] = b
	r.nextID++
	return b, nil
}

func (r *fakeBookRepo) List(_ context.Context, _ session.Session) ([]*book.Book, error) {
	list := make([]*book.Book, 0, len(r.books))
	for id := uint(1); id < r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			list = append(list, b)
		}
	}
	return list, nil
}

func (r *fakeBookRepo) GetByID(_ context.Context, _ session.Session, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.NotFoundByID(id)
	}
	return b, nil
}

func (r *fakeBookRepo) GetByName(_ context.Context, _ session.Session, name string) (*book.Book, error) {
	for _, b := range r.books {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, book.NotFoundByName(name)
}

func (r *fakeBookRepo) GetByAuthorID(_ context.Context, _ session.Session, authorID uint) (*book.Book, error) {
	for _, b := range r.books {
		if b.AuthorID == authorID {
			return b, nil
		}
	}
	return nil, book.NotFoundByAuthorID(authorID)
}

func (r *fakeBookRepo) UpdateByID(ctx context.Context, sess session.Session, id uint, update book.Update) (*book.Book, error) {
	b, err := r.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if update.HasName() {
		b.Name = *update.Name
	}
	b.AuthorID = update.AuthorID
	return b, nil
}

func (r *fakeBookRepo) DeleteByID(_ context.Context, _ session.Session, id uint) (string, error) {
	if _, ok := r.books[id]; !ok {
		return "", book.NotFoundByID(id)
	}
	delete(r.books, id)
	return book.DeletedMessage(id), nil
}

// newTestEngine 注册处理器,用假会话代替Session中间件
func newTestEngine(authors author.Repository, books book.Repository) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, fakeSession{})
		c.Next()
	})

	ah := NewAuthorHandler(authors)
	r.POST("/authors", ah.Create)
	r.GET("/authors", ah.List)
	r.GET("/authors/:id", ah.Get)
	r.GET("/authors/by-name/:name", ah.GetByName)
	r.PATCH("/authors/:id", ah.Update)
	r.DELETE("/authors/:id", ah.Delete)

	bh := NewBookHandler(books)
	r.POST("/books", bh.Create)
	r.GET("/books", bh.List)
	r.GET("/books/:id", bh.Get)
	r.GET("/books/by-name/:name", bh.GetByName)
	r.GET("/books/by-author/:author_id", bh.GetByAuthor)
	r.PATCH("/books/:id", bh.Update)
	r.DELETE("/books/:id", bh.Delete)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestAuthorHandler(t *testing.T) {
	repo := newFakeAuthorRepo()
	r := newTestEngine(repo, newFakeBookRepo())

	t.Run("创建", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodPost, "/authors", `{"name":"Author 1"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "Author 1", body["name"])
	})

	t.Run("缺少name返回422", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodPost, "/authors", `{}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, float64(apperrors.ErrCodeBindError), body["code"])
	})

	t.Run("非法JSON返回422", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/authors", `{"name":`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("查询", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodGet, "/authors/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Author 1", body["name"])
	})

	t.Run("按名字查询", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodGet, "/authors/by-name/Author%201", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), body["id"])
	})

	t.Run("不存在返回404", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodGet, "/authors/7", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, float64(apperrors.ErrCodeAuthorNotFound), body["code"])
		assert.Equal(t, "Author with id `7` does not exist!", body["message"])
	})

	t.Run("非法ID返回422", func(t *testing.T) {
		for _, path := range []string{"/authors/abc", "/authors/0", "/authors/-1"} {
			w, body := doRequest(t, r, http.MethodGet, path, "")
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, path)
			assert.Equal(t, float64(apperrors.ErrCodeInvalidParams), body["code"], path)
		}
	})

	t.Run("空name更新保持原值", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodPatch, "/authors/1", `{"name":""}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Author 1", body["name"])

		w, body = doRequest(t, r, http.MethodPatch, "/authors/1", `{}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Author 1", body["name"])
	})

	t.Run("更新", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodPatch, "/authors/1", `{"name":"Author 2"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Author 2", body["name"])
	})

	t.Run("删除", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodDelete, "/authors/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Author with id '1' is successfully deleted!", body["notification"])

		w, _ = doRequest(t, r, http.MethodDelete, "/authors/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("空列表返回[]", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodGet, "/authors", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestAuthorHandler_InternalError(t *testing.T) {
	repo := newFakeAuthorRepo()
	repo.err = apperrors.Wrap(errors.New("UNIQUE constraint failed: author.name"), "创建作者失败")
	r := newTestEngine(repo, newFakeBookRepo())

	w, body := doRequest(t, r, http.MethodPost, "/authors", `{"name":"Author 1"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, float64(apperrors.ErrCodeInternal), body["code"])
	assert.Equal(t, "internal server error", body["message"])
	assert.NotContains(t, w.Body.String(), "UNIQUE")

	// 重复名字同样不暴露细节
	repo.err = author.ErrAuthorAlreadyExists
	w, body = doRequest(t, r, http.MethodPost, "/authors", `{"name":"Author 1"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", body["message"])
}

func TestBookHandler(t *testing.T) {
	repo := newFakeBookRepo()
	r := newTestEngine(newFakeAuthorRepo(), repo)

	t.Run("创建", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodPost, "/books", `{"name":"Book 1","author_id":1}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "Book 1", body["name"])
		assert.Equal(t, float64(1), body["author_id"])
	})

	t.Run("缺少author_id返回422", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/books", `{"name":"Book 2"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("按作者查询", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodGet, "/books/by-author/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Book 1", body["name"])

		w, body = doRequest(t, r, http.MethodGet, "/books/by-author/9", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, float64(apperrors.ErrCodeBookNotFound), body["code"])
	})

	t.Run("按书名查询", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodGet, "/books/by-name/Book%201", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), body["id"])
	})

	t.Run("更新必须带author_id", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPatch, "/books/1", `{"name":"Book 2"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("空name只更新author_id", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodPatch, "/books/1", `{"name":"","author_id":2}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Book 1", body["name"])
		assert.Equal(t, float64(2), body["author_id"])
	})

	t.Run("删除后查询返回404", func(t *testing.T) {
		w, body := doRequest(t, r, http.MethodDelete, "/books/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Book with id '1' is successfully deleted!", body["notification"])

		w, body = doRequest(t, r, http.MethodGet, "/books/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book with id `1` does not exist!", body["message"])
	})
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"数据库正常", nil, http.StatusOK},
		{"数据库不可用", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			h := NewHealthHandler(fakePinger{err: tt.err})
			r.GET("/health", h.Health)
			r.GET("/ping", h.Ping)

			w, _ := doRequest(t, r, http.MethodGet, "/health", "")
			assert.Equal(t, tt.status, w.Code)

			w, body := doRequest(t, r, http.MethodGet, "/ping", "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "pong", body["message"])
		})
	}
}
