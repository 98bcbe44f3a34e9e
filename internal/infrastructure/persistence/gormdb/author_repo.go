package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/session"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// authorRepository 作者仓储实现
// 设计说明:
// 1. 实现domain/author/repository.go定义的接口
// 2. 通用增删改查委托给CRUD[AuthorModel]
// 3. 负责GORM模型与领域实体的转换,以及gorm错误到领域错误的翻译
type authorRepository struct {
	crud CRUD[AuthorModel]
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository() author.Repository {
	return &authorRepository{}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, sess session.Session, name string) (_ *author.Author, err error) {
	ctx, done := instrument(ctx, entityAuthor, "create")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	model := &AuthorModel{Name: name}
	if err := r.crud.Create(ctx, s, model); err != nil {
		if isDuplicateError(err) {
			return nil, author.ErrAuthorAlreadyExists
		}
		return nil, apperrors.Wrap(err, "创建作者失败")
	}

	return toAuthorEntity(model), nil
}

// List 查询全部作者
func (r *authorRepository) List(ctx context.Context, sess session.Session) (_ []*author.Author, err error) {
	ctx, done := instrument(ctx, entityAuthor, "list")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	models, err := r.crud.List(ctx, s)
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, 0, len(models))
	for i := range models {
		authors = append(authors, toAuthorEntity(&models[i]))
	}
	return authors, nil
}

// GetByID 根据ID查找作者
func (r *authorRepository) GetByID(ctx context.Context, sess session.Session, id uint) (_ *author.Author, err error) {
	ctx, done := instrument(ctx, entityAuthor, "get_by_id")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	model, err := r.crud.FirstByID(ctx, s, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.NotFoundByID(id)
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(model), nil
}

// GetByName 根据名字查找作者
func (r *authorRepository) GetByName(ctx context.Context, sess session.Session, name string) (_ *author.Author, err error) {
	ctx, done := instrument(ctx, entityAuthor, "get_by_name")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	model, err := r.crud.First(ctx, s, "name = ?", name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.NotFoundByName(name)
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(model), nil
}

// UpdateByID 部分更新作者
// name为空时保持原值,updated_at总是刷新
func (r *authorRepository) UpdateByID(ctx context.Context, sess session.Session, id uint, update author.Update) (_ *author.Author, err error) {
	ctx, done := instrument(ctx, entityAuthor, "update_by_id")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": s.Now(),
	}
	if update.HasName() {
		updates["name"] = *update.Name
	}

	model, err := r.crud.UpdateByID(ctx, s, id, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, author.NotFoundByID(id)
		case isDuplicateError(err):
			return nil, author.ErrAuthorAlreadyExists
		}
		return nil, apperrors.Wrap(err, "更新作者失败")
	}

	return toAuthorEntity(model), nil
}

// DeleteByID 删除作者
// 作者仍有图书时被外键拒绝,按存储错误返回
func (r *authorRepository) DeleteByID(ctx context.Context, sess session.Session, id uint) (_ string, err error) {
	ctx, done := instrument(ctx, entityAuthor, "delete_by_id")
	defer func() { done(err) }()

	s, err := gormSession(sess)
	if err != nil {
		return "", err
	}

	deleted, err := r.crud.DeleteByID(ctx, s, id)
	if err != nil {
		if isForeignKeyError(err) {
			return "", apperrors.Wrapf(err, "作者%d仍有关联图书", id)
		}
		return "", apperrors.Wrap(err, "删除作者失败")
	}
	if !deleted {
		return "", author.NotFoundByID(id)
	}

	return author.DeletedMessage(id), nil
}
