package dao

import (
	"context"

	"Greenway/models"

	"gorm.io/gorm"
)

type Point struct {
	Repo[models.PointsLedger]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.PointsLedger](db),
	}
}

// ListRecent 最近的流水，最新在前
func (p *Point) ListRecent(ctx context.Context, uid string, limit int) ([]models.PointsLedger, error) {
	var rows []models.PointsLedger
	err := p.Db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("date_time DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
