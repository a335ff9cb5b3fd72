package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"Greenway/dao"
	"Greenway/models"
	"Greenway/pkg/database"
	"Greenway/pkg/response"
	"Greenway/types"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	// 每个测试用独立的内存库，避免相互干扰
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newPointService(db *gorm.DB) *PointService {
	return &PointService{
		DB:       db,
		UserDAO:  dao.NewUsers(db),
		PointDAO: dao.NewPoint(db),
		GoodsDAO: dao.NewGoods(db),
	}
}

func seedUser(t *testing.T, db *gorm.DB, uid string, points int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Users{UID: uid, Password: "x", TotalPoints: points}).Error)
}

func bizError(t *testing.T, err error) *response.BizError {
	t.Helper()
	var be *response.BizError
	require.True(t, errors.As(err, &be), "expected BizError, got %v", err)
	return be
}

func TestSubmitTripAccrual(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)
	ctx := context.Background()

	cases := []struct {
		mode     string
		distance float64
		earned   int
		movement string
	}{
		{"bike", 10, 30, models.MovementCycling},
		{"walk", 2.5, 8, models.MovementWalking}, // 7.5 进到偶数 8
		{"bus", 10, 15, models.MovementBus},
		{"metro", 3, 4, models.MovementSubway}, // 4.5 舍到偶数 4
		{"bus", 5, 8, models.MovementBus},      // 7.5 进到偶数 8
		{"ev", 10, 10, models.MovementBus},
	}

	total := 0
	seedUser(t, db, "alice", 0)
	for _, tc := range cases {
		resp, err := svc.SubmitTrip(ctx, "alice", tc.mode, tc.distance)
		require.NoError(t, err, "mode %s", tc.mode)
		require.Equal(t, tc.earned, resp.Earned, "mode %s", tc.mode)
		total += tc.earned
		require.Equal(t, total, resp.User.Points, "mode %s", tc.mode)
	}

	// 每次上报恰好追加一条流水，delta 与 earned 一致
	var rows []models.PointsLedger
	require.NoError(t, db.Where("uid = ?", "alice").Order("id ASC").Find(&rows).Error)
	require.Len(t, rows, len(cases))
	for i, tc := range cases {
		require.Equal(t, tc.earned, rows[i].Delta)
		require.Equal(t, tc.movement, rows[i].Movement)
		require.Equal(t, tc.distance, rows[i].Distance)
	}
}

func TestSubmitTripRejectsBadInput(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)
	ctx := context.Background()
	seedUser(t, db, "alice", 0)

	_, err := svc.SubmitTrip(ctx, "alice", "car", 10)
	require.Equal(t, 400, bizError(t, err).Code)

	_, err = svc.SubmitTrip(ctx, "alice", "bike", 0)
	require.Equal(t, 400, bizError(t, err).Code)

	_, err = svc.SubmitTrip(ctx, "alice", "bike", -3)
	require.Equal(t, 400, bizError(t, err).Code)

	var count int64
	require.NoError(t, db.Model(&models.PointsLedger{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSubmitTripUnknownUser(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)

	_, err := svc.SubmitTrip(context.Background(), "ghost", "bike", 10)
	require.Equal(t, 404, bizError(t, err).Code)
}

func TestRedeemSuccess(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)
	ctx := context.Background()

	seedUser(t, db, "alice", 30)
	require.NoError(t, db.Create(&models.Goods{GID: 1, GName: "Umbrella", SID: "shop1", Count: 3, Value: 20}).Error)

	resp, err := svc.Redeem(ctx, "alice", &types.RedeemRequest{ProductName: "Umbrella", RequiredPoints: 5})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, 10, resp.User.Points) // 成本以目录 value 为准，客户端报价被忽略

	var item models.Goods
	require.NoError(t, db.First(&item, "gid = ?", 1).Error)
	require.Equal(t, 2, item.Count)

	var rows []models.PointsLedger
	require.NoError(t, db.Where("uid = ?", "alice").Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, -20, rows[0].Delta)
	require.Equal(t, models.MovementRedemption, rows[0].Movement)
}

func TestRedeemExactBalance(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)
	ctx := context.Background()

	// 余额恰好等于成本时必须能兑换，扣到 0
	seedUser(t, db, "alice", 20)
	require.NoError(t, db.Create(&models.Goods{GID: 1, GName: "Umbrella", SID: "shop1", Count: 1, Value: 20}).Error)

	resp, err := svc.Redeem(ctx, "alice", &types.RedeemRequest{ProductName: "Umbrella"})
	require.NoError(t, err)
	require.Zero(t, resp.User.Points)

	var user models.Users
	require.NoError(t, db.First(&user, "uid = ?", "alice").Error)
	require.Zero(t, user.TotalPoints)
}

func TestRedeemInsufficientPoints(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)
	ctx := context.Background()

	seedUser(t, db, "alice", 20)
	require.NoError(t, db.Create(&models.Goods{GID: 1, GName: "Umbrella", SID: "shop1", Count: 3, Value: 25}).Error)

	_, err := svc.Redeem(ctx, "alice", &types.RedeemRequest{ProductName: "Umbrella"})
	be := bizError(t, err)
	require.Equal(t, 400, be.Code)
	require.Contains(t, be.Msg, "5") // 差额精确到分值

	// 无任何写入
	assertNoMutation(t, db, "alice", 20, 1, 3)
}

func TestRedeemZeroStock(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)
	ctx := context.Background()

	seedUser(t, db, "alice", 100)
	require.NoError(t, db.Create(&models.Goods{GID: 1, GName: "Umbrella", SID: "shop1", Count: 0, Value: 20}).Error)

	_, err := svc.Redeem(ctx, "alice", &types.RedeemRequest{ProductName: "Umbrella"})
	require.Equal(t, 400, bizError(t, err).Code)

	assertNoMutation(t, db, "alice", 100, 1, 0)
}

func TestRedeemUnknownProduct(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)
	ctx := context.Background()

	seedUser(t, db, "alice", 100)

	_, err := svc.Redeem(ctx, "alice", &types.RedeemRequest{ProductName: "Unicorn", RequiredPoints: 1})
	require.Equal(t, 404, bizError(t, err).Code)

	var total int64
	require.NoError(t, db.Model(&models.PointsLedger{}).Count(&total).Error)
	require.Zero(t, total)
}

func assertNoMutation(t *testing.T, db *gorm.DB, uid string, points, gid, stock int) {
	t.Helper()
	var user models.Users
	require.NoError(t, db.First(&user, "uid = ?", uid).Error)
	require.Equal(t, points, user.TotalPoints)

	var item models.Goods
	require.NoError(t, db.First(&item, "gid = ?", gid).Error)
	require.Equal(t, stock, item.Count)

	var count int64
	require.NoError(t, db.Model(&models.PointsLedger{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestHistoryCappedNewestFirst(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)
	ctx := context.Background()

	seedUser(t, db, "alice", 205)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 205; i++ {
		require.NoError(t, db.Create(&models.PointsLedger{
			UID:      "alice",
			DateTime: base.Add(time.Duration(i) * time.Second),
			Movement: models.MovementWalking,
			Distance: 1,
			Delta:    1,
		}).Error)
	}

	resp, err := svc.History(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 205, resp.Points)
	require.Len(t, resp.Records, 200)
	// 最新在前
	require.Greater(t, resp.Records[0].ID, resp.Records[199].ID)
}

func TestHistoryUnknownUser(t *testing.T) {
	db := setupDB(t)
	svc := newPointService(db)

	_, err := svc.History(context.Background(), "ghost")
	require.Equal(t, 404, bizError(t, err).Code)
}
