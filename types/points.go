package types

type TripRequest struct {
	Mode     string  `json:"mode" binding:"required"`
	Distance float64 `json:"distance" binding:"required"`
}

// TripResponse 上报出行后的响应，earned 为本次获得积分
type TripResponse struct {
	Earned int      `json:"earned"`
	User   UserInfo `json:"user"`
}

type RedeemRequest struct {
	ProductName string `json:"productName" binding:"required"`
	// 客户端自报的成本只作展示用途，真实成本永远以目录里的 value 为准
	RequiredPoints int `json:"requiredPoints"`
}

type RedeemResponse struct {
	Success bool     `json:"success"`
	Product string   `json:"product"`
	User    UserInfo `json:"user"`
}

// LedgerRecord 单条积分流水
type LedgerRecord struct {
	ID       uint64  `json:"id"`
	Movement string  `json:"movement"`
	Distance float64 `json:"distance"`
	Delta    int     `json:"delta"`
	DateTime string  `json:"date_time"`
}

// PointsHistoryResponse 流水列表（最多 200 条，最新在前）加当前总分
type PointsHistoryResponse struct {
	Points  int            `json:"points"`
	Records []LedgerRecord `json:"records"`
}
