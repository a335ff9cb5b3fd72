package dao

import (
	"context"

	"Greenway/models"

	"gorm.io/gorm"
)

type Goods struct {
	Repo[models.Goods]
}

func NewGoods(db *gorm.DB) *Goods {
	return &Goods{
		Repo: NewRepo[models.Goods](db),
	}
}

func (g *Goods) FindByGID(ctx context.Context, gid int) (*models.Goods, error) {
	return g.Repo.FindByWhere(ctx, "gid = ?", gid)
}

func (g *Goods) FindByName(ctx context.Context, gname string) (*models.Goods, error) {
	return g.Repo.FindByWhere(ctx, "gname = ?", gname)
}

// ListAll 全量商品目录
func (g *Goods) ListAll(ctx context.Context) ([]models.Goods, error) {
	var rows []models.Goods
	err := g.Db.WithContext(ctx).Order("gid ASC").Find(&rows).Error
	return rows, err
}

// ListByShop 商家自己的在售商品
func (g *Goods) ListByShop(ctx context.Context, sid string) ([]models.Goods, error) {
	var rows []models.Goods
	err := g.Db.WithContext(ctx).Where("sid = ?", sid).Order("gid ASC").Find(&rows).Error
	return rows, err
}
