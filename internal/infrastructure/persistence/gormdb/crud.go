package gormdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CRUD 按GORM模型参数化的通用数据访问
// 各实体仓储组合它来实现增删改查,再把gorm错误翻译成领域错误
type CRUD[M any] struct{}

// byPrimaryKey 按主键升序,即插入顺序
var byPrimaryKey = clause.OrderByColumn{
	Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey},
}

// Create 插入并从数据库重新读取,回填自增ID和created_at
func (CRUD[M]) Create(ctx context.Context, s *Session, model *M) error {
	db := s.DB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}
	return db.First(model).Error
}

// List 返回全部记录,按主键排序
func (CRUD[M]) List(ctx context.Context, s *Session) ([]M, error) {
	models := make([]M, 0)
	if err := s.DB(ctx).Order(byPrimaryKey).Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// FirstByID 按主键查找,不存在返回gorm.ErrRecordNotFound
func (CRUD[M]) FirstByID(ctx context.Context, s *Session, id uint) (*M, error) {
	var model M
	if err := s.DB(ctx).First(&model, id).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

// First 按条件查找第一条,不存在返回gorm.ErrRecordNotFound
func (CRUD[M]) First(ctx context.Context, s *Session, query interface{}, args ...interface{}) (*M, error) {
	var model M
	if err := s.DB(ctx).Where(query, args...).First(&model).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

// UpdateByID 部分更新并返回更新后的记录
// 在会话上开启事务:锁行(SELECT ... FOR UPDATE) → 更新 → 重新读取
// 检查存在和写入之间不会插入并发的删除;sqlite方言会忽略FOR UPDATE,由库级写锁保证
// 不依赖RowsAffected判断存在,mysql对值未变化的行返回0
func (CRUD[M]) UpdateByID(ctx context.Context, s *Session, id uint, updates map[string]interface{}) (*M, error) {
	var updated M
	err := s.DB(ctx).Transaction(func(tx *gorm.DB) error {
		var current M
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&current).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID 单条DELETE,没有匹配的行返回false
func (CRUD[M]) DeleteByID(ctx context.Context, s *Session, id uint) (bool, error) {
	result := s.DB(ctx).Delete(new(M), id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
