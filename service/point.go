package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"Greenway/config"
	"Greenway/dao"
	"Greenway/models"
	"Greenway/pkg/response"
	"Greenway/types"

	"gorm.io/gorm"
)

// 出行方式与积分倍率（与前端保持一致）；ev 记为公交出行
var rateByMode = map[string]float64{
	"bike":  3,
	"walk":  3,
	"bus":   1.5,
	"metro": 1.5,
	"ev":    1,
}

var movementByMode = map[string]string{
	"bike":  models.MovementCycling,
	"walk":  models.MovementWalking,
	"bus":   models.MovementBus,
	"metro": models.MovementSubway,
	"ev":    models.MovementBus,
}

const historyLimit = 200

type PointService struct {
	Config   *config.Config
	DB       *gorm.DB
	UserDAO  *dao.Users
	PointDAO *dao.Point
	GoodsDAO *dao.Goods
}

var _ IPointService = (*PointService)(nil)

type IPointService interface {
	SubmitTrip(ctx context.Context, uid, mode string, distance float64) (*types.TripResponse, error)
	Redeem(ctx context.Context, uid string, req *types.RedeemRequest) (*types.RedeemResponse, error)
	History(ctx context.Context, uid string) (*types.PointsHistoryResponse, error)
}

// SubmitTrip 记一条流水并同步累计总分，二者在同一事务里
func (p *PointService) SubmitTrip(ctx context.Context, uid, mode string, distance float64) (*types.TripResponse, error) {
	rate, ok := rateByMode[mode]
	if !ok || distance <= 0 {
		return nil, response.NewError(http.StatusBadRequest, "参数不合法")
	}
	// .5 取整到偶数，metro 3 公里是 4 分不是 5 分
	earned := int(math.RoundToEven(distance * rate))

	var total int
	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.Users
		if err := tx.Where("uid = ?", uid).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewError(http.StatusNotFound, "用户不存在")
			}
			return err
		}

		entry := &models.PointsLedger{
			UID:      uid,
			DateTime: time.Now(),
			Movement: movementByMode[mode],
			Distance: distance,
			Delta:    earned,
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Users{}).Where("uid = ?", uid).
			Update("total_points", gorm.Expr("total_points + ?", earned)).Error; err != nil {
			return err
		}

		// 读回事务内的最新总分
		if err := tx.Select("total_points").Where("uid = ?", uid).Take(&user).Error; err != nil {
			return err
		}
		total = user.TotalPoints
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.TripResponse{
		Earned: earned,
		User:   types.UserInfo{Username: uid, Points: total},
	}, nil
}

// Redeem 兑换必须命中目录里的真实商品，成本一律以目录 value 为准
func (p *PointService) Redeem(ctx context.Context, uid string, req *types.RedeemRequest) (*types.RedeemResponse, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return nil, response.NewError(http.StatusBadRequest, "参数不合法")
	}

	var total int
	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.Users
		if err := tx.Where("uid = ?", uid).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewError(http.StatusNotFound, "用户不存在")
			}
			return err
		}

		var item models.Goods
		if err := tx.Where("gname = ?", name).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewError(http.StatusNotFound, "商品不存在")
			}
			return err
		}
		if item.Count <= 0 {
			return response.NewError(http.StatusBadRequest, "该商品库存不足")
		}

		cost := item.Value
		if user.TotalPoints < cost {
			return response.NewError(http.StatusBadRequest,
				fmt.Sprintf("积分不足，还需 %d 积分", cost-user.TotalPoints))
		}

		entry := &models.PointsLedger{
			UID:      uid,
			DateTime: time.Now(),
			Movement: models.MovementRedemption,
			Distance: 0,
			Delta:    -cost,
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		// 扣分同样带条件，并发下余额读旧了也不会扣成负数
		res := tx.Model(&models.Users{}).
			Where("uid = ? AND total_points >= ?", uid, cost).
			Update("total_points", gorm.Expr("total_points - ?", cost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.NewError(http.StatusBadRequest, "积分不足")
		}

		// 条件扣减库存，并发下第二个兑换会在这里失败回滚
		res = tx.Model(&models.Goods{}).
			Where("gid = ? AND count > 0", item.GID).
			Update("count", gorm.Expr("count - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.NewError(http.StatusBadRequest, "该商品库存不足")
		}

		if err := tx.Select("total_points").Where("uid = ?", uid).Take(&user).Error; err != nil {
			return err
		}
		total = user.TotalPoints
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.RedeemResponse{
		Success: true,
		Product: name,
		User:    types.UserInfo{Username: uid, Points: total},
	}, nil
}

// History 最近 200 条流水，最新在前，附当前总分
func (p *PointService) History(ctx context.Context, uid string) (*types.PointsHistoryResponse, error) {
	user, err := p.UserDAO.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "用户不存在")
		}
		return nil, err
	}

	rows, err := p.PointDAO.ListRecent(ctx, uid, historyLimit)
	if err != nil {
		return nil, err
	}

	records := make([]types.LedgerRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, types.LedgerRecord{
			ID:       r.ID,
			Movement: r.Movement,
			Distance: r.Distance,
			Delta:    r.Delta,
			DateTime: r.DateTime.Format("2006-01-02 15:04:05"),
		})
	}
	return &types.PointsHistoryResponse{
		Points:  user.TotalPoints,
		Records: records,
	}, nil
}
