package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"Greenway/config"
	"Greenway/dao"
	"Greenway/models"
	"Greenway/pkg/response"
	"Greenway/types"

	"gorm.io/gorm"
)

type GoodsService struct {
	Config     *config.Config
	DB         *gorm.DB
	GoodsDAO   *dao.Goods
	RequestDAO *dao.GoodsRequests
}

var _ IGoodsService = (*GoodsService)(nil)

type IGoodsService interface {
	ListCatalog(ctx context.Context) (*types.GoodsListResponse, error)
	ListShopGoods(ctx context.Context, sid string) (*types.GoodsListResponse, error)

	SubmitAdd(ctx context.Context, sid string, req *types.SubmitGoodsRequest) (*types.SubmitRequestResponse, error)
	SubmitOffline(ctx context.Context, sid string, gid int) (*types.SubmitRequestResponse, error)

	ListPending(ctx context.Context) (*types.PendingRequestsResponse, error)
	Approve(ctx context.Context, requestID uint64) (*types.DecisionResponse, error)
	Reject(ctx context.Context, requestID uint64) (*types.DecisionResponse, error)
}

func (g *GoodsService) ListCatalog(ctx context.Context) (*types.GoodsListResponse, error) {
	rows, err := g.GoodsDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return goodsListResponse(rows), nil
}

func (g *GoodsService) ListShopGoods(ctx context.Context, sid string) (*types.GoodsListResponse, error) {
	rows, err := g.GoodsDAO.ListByShop(ctx, sid)
	if err != nil {
		return nil, err
	}
	return goodsListResponse(rows), nil
}

func goodsListResponse(rows []models.Goods) *types.GoodsListResponse {
	items := make([]types.GoodsItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, types.GoodsItem{
			GID:   r.GID,
			GName: r.GName,
			SID:   r.SID,
			Count: r.Count,
			Value: r.Value,
		})
	}
	return &types.GoodsListResponse{Goods: items}
}

// SubmitAdd 商家提交上架申请，目录不动，等管理员审批
func (g *GoodsService) SubmitAdd(ctx context.Context, sid string, req *types.SubmitGoodsRequest) (*types.SubmitRequestResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Count <= 0 || req.Value <= 0 {
		return nil, response.NewError(http.StatusBadRequest, "参数不合法")
	}

	r := &models.GoodsRequest{
		SID:    sid,
		GName:  name,
		Count:  req.Count,
		Value:  req.Value,
		Action: models.RequestActionAdd,
		Status: models.RequestStatusPending,
	}
	if err := g.RequestDAO.Create(ctx, r); err != nil {
		return nil, err
	}
	return &types.SubmitRequestResponse{Success: true, Request: r.ID}, nil
}

// SubmitOffline 商家申请下架自己的商品，申请里快照商品当前内容
func (g *GoodsService) SubmitOffline(ctx context.Context, sid string, gid int) (*types.SubmitRequestResponse, error) {
	if gid <= 0 {
		return nil, response.NewError(http.StatusBadRequest, "参数不合法")
	}
	item, err := g.GoodsDAO.FindByGID(ctx, gid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "商品不存在")
		}
		return nil, err
	}
	if item.SID != sid {
		return nil, response.NewError(http.StatusNotFound, "商品不存在")
	}

	r := &models.GoodsRequest{
		SID:       sid,
		GName:     item.GName,
		Count:     item.Count,
		Value:     item.Value,
		Action:    models.RequestActionOffline,
		TargetGID: item.GID,
		Status:    models.RequestStatusPending,
	}
	if err := g.RequestDAO.Create(ctx, r); err != nil {
		return nil, err
	}
	return &types.SubmitRequestResponse{Success: true, Request: r.ID}, nil
}

func (g *GoodsService) ListPending(ctx context.Context) (*types.PendingRequestsResponse, error) {
	rows, err := g.RequestDAO.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]types.RequestItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, types.RequestItem{
			ID:        r.ID,
			SID:       r.SID,
			GName:     r.GName,
			Count:     r.Count,
			Value:     r.Value,
			Action:    r.Action,
			TargetGID: r.TargetGID,
			Status:    r.Status,
			ResultGID: r.ResultGID,
			CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return &types.PendingRequestsResponse{Requests: items}, nil
}

// Approve 先做目录变更，再用条件更新把申请从 pending 置为 approved。
// 条件更新影响 0 行说明别人先裁决了，整个事务回滚。
func (g *GoodsService) Approve(ctx context.Context, requestID uint64) (*types.DecisionResponse, error) {
	var resultGID int
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req models.GoodsRequest
		if err := tx.Where("id = ?", requestID).First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewError(http.StatusNotFound, "申请不存在或已处理")
			}
			return err
		}
		if req.Status != models.RequestStatusPending {
			return response.NewError(http.StatusNotFound, "申请不存在或已处理")
		}

		switch req.Action {
		case models.RequestActionAdd:
			var maxGID int
			if err := tx.Model(&models.Goods{}).
				Select("COALESCE(MAX(gid), 0)").Scan(&maxGID).Error; err != nil {
				return err
			}
			resultGID = maxGID + 1
			item := &models.Goods{
				GID:   resultGID,
				GName: req.GName,
				SID:   req.SID,
				Count: req.Count,
				Value: req.Value,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		case models.RequestActionOffline:
			resultGID = req.TargetGID
			res := tx.Where("gid = ?", req.TargetGID).Delete(&models.Goods{})
			if res.Error != nil {
				return res.Error
			}
			// 目标商品已经没了就不能把申请置为 approved
			if res.RowsAffected == 0 {
				return response.NewError(http.StatusNotFound, "商品不存在")
			}
		default:
			return fmt.Errorf("unknown request action %q", req.Action)
		}

		res := tx.Model(&models.GoodsRequest{}).
			Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
			Updates(map[string]any{
				"status":     models.RequestStatusApproved,
				"result_gid": resultGID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.NewError(http.StatusNotFound, "申请不存在或已处理")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.DecisionResponse{
		Success: true,
		Status:  models.RequestStatusApproved,
		GID:     resultGID,
	}, nil
}

// Reject 单条条件更新即可，不碰目录
func (g *GoodsService) Reject(ctx context.Context, requestID uint64) (*types.DecisionResponse, error) {
	res := g.DB.WithContext(ctx).Model(&models.GoodsRequest{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
		Update("status", models.RequestStatusRejected)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, response.NewError(http.StatusNotFound, "申请不存在或已处理")
	}
	return &types.DecisionResponse{
		Success: true,
		Status:  models.RequestStatusRejected,
	}, nil
}
