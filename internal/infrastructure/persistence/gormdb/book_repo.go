package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/session"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 图书仓储实现
type bookRepository struct {
	crud CRUD[BookModel]
}

// NewBookRepository 创建图书仓储
func NewBookRepository() book.Repository {
	return &bookRepository{}
}

// Create 创建图书
// 不预先校验作者是否存在,外键冲突作为存储错误返回
func (r *bookRepository) Create(ctx context.Context, sess session.Session, name string, authorID uint) (_ *book.Book, err error) {
	ctx, done := instrument(ctx, entityBook, "create")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	model := &BookModel{Name: name, AuthorID: authorID}
	if err := r.crud.Create(ctx, s, model); err != nil {
		switch {
		case isDuplicateError(err):
			return nil, book.ErrBookAlreadyExists
		case isForeignKeyError(err):
			return nil, apperrors.Wrapf(err, "作者%d不存在", authorID)
		}
		return nil, apperrors.Wrap(err, "创建图书失败")
	}

	return toBookEntity(model), nil
}

// List 查询全部图书
func (r *bookRepository) List(ctx context.Context, sess session.Session) (_ []*book.Book, err error) {
	ctx, done := instrument(ctx, entityBook, "list")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	models, err := r.crud.List(ctx, s)
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookEntity(&models[i]))
	}
	return books, nil
}

// GetByID 根据ID查找图书
func (r *bookRepository) GetByID(ctx context.Context, sess session.Session, id uint) (_ *book.Book, err error) {
	ctx, done := instrument(ctx, entityBook, "get_by_id")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	model, err := r.crud.FirstByID(ctx, s, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.NotFoundByID(id)
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(model), nil
}

// GetByName 根据书名查找图书
func (r *bookRepository) GetByName(ctx context.Context, sess session.Session, name string) (_ *book.Book, err error) {
	ctx, done := instrument(ctx, entityBook, "get_by_name")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	model, err := r.crud.First(ctx, s, "name = ?", name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.NotFoundByName(name)
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(model), nil
}

// GetByAuthorID 查找作者的图书
func (r *bookRepository) GetByAuthorID(ctx context.Context, sess session.Session, authorID uint) (_ *book.Book, err error) {
	ctx, done := instrument(ctx, entityBook, "get_by_author_id")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	model, err := r.crud.First(ctx, s, "author_id = ?", authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.NotFoundByAuthorID(authorID)
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(model), nil
}

// UpdateByID 部分更新图书
// name为空时保持原值;author_id无条件写入;updated_at总是刷新
func (r *bookRepository) UpdateByID(ctx context.Context, sess session.Session, id uint, update book.Update) (_ *book.Book, err error) {
	ctx, done := instrument(ctx, entityBook, "update_by_id")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"author_id":  update.AuthorID,
		"updated_at": s.Now(),
	}
	if update.HasName() {
		updates["name"] = *update.Name
	}

	model, err := r.crud.UpdateByID(ctx, s, id, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, book.NotFoundByID(id)
		case isDuplicateError(err):
			return nil, book.ErrBookAlreadyExists
		case isForeignKeyError(err):
			return nil, apperrors.Wrapf(err, "作者%d不存在", update.AuthorID)
		}
		return nil, apperrors.Wrap(err, "更新图书失败")
	}

	return toBookEntity(model), nil
}

// DeleteByID 删除图书
func (r *bookRepository) DeleteByID(ctx context.Context, sess session.Session, id uint) (_ string, err error) {
	ctx, done := instrument(ctx, entityBook, "delete_by_id")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return "", err
	}

	deleted, err := r.crud.DeleteByID(ctx, s, id)
	if err != nil {
		return "", apperrors.Wrap(err, "删除图书失败")
	}
	if !deleted {
		return "", book.NotFoundByID(id)
	}

	return book.DeletedMessage(id), nil
}
