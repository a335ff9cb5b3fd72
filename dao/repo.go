package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO，按表内嵌到具体 DAO 中
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

func (r Repo[T]) FindByWhere(ctx context.Context, query string, args ...any) (*T, error) {
	var m T
	if err := r.Db.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r Repo[T]) FindAllByWhere(ctx context.Context, query string, args ...any) ([]T, error) {
	var ms []T
	err := r.Db.WithContext(ctx).Where(query, args...).Find(&ms).Error
	return ms, err
}

func (r Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	var m T
	err := r.Db.WithContext(ctx).Model(&m).Where(query, args...).Count(&count).Error
	return count > 0, err
}
