package dao

import (
	"context"

	"Greenway/models"

	"gorm.io/gorm"
)

type GoodsRequests struct {
	Repo[models.GoodsRequest]
}

func NewGoodsRequests(db *gorm.DB) *GoodsRequests {
	return &GoodsRequests{
		Repo: NewRepo[models.GoodsRequest](db),
	}
}

// ListPending 待审批申请，按提交顺序
func (r *GoodsRequests) ListPending(ctx context.Context) ([]models.GoodsRequest, error) {
	var rows []models.GoodsRequest
	err := r.Db.WithContext(ctx).
		Where("status = ?", models.RequestStatusPending).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
