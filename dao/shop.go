package dao

import (
	"context"

	"Greenway/models"

	"gorm.io/gorm"
)

type Shops struct {
	Repo[models.Shop]
}

func NewShops(db *gorm.DB) *Shops {
	return &Shops{
		Repo: NewRepo[models.Shop](db),
	}
}

func (s *Shops) FindBySID(ctx context.Context, sid string) (*models.Shop, error) {
	return s.Repo.FindByWhere(ctx, "sid = ?", sid)
}

func (s *Shops) IsSIDExist(ctx context.Context, sid string) bool {
	exist, _ := s.Repo.IsExist(ctx, "sid = ?", sid)
	return exist
}
