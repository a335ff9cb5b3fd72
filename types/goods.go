package types

// GoodsItem 商品目录条目
type GoodsItem struct {
	GID   int    `json:"gid"`
	GName string `json:"gname"`
	SID   string `json:"sid"`
	Count int    `json:"count"`
	Value int    `json:"value"`
}

type GoodsListResponse struct {
	Goods []GoodsItem `json:"goods"`
}

type SubmitGoodsRequest struct {
	Name  string `json:"name" binding:"required"`
	Count int    `json:"count" binding:"required"`
	Value int    `json:"value" binding:"required"`
}

type OfflineGoodsRequest struct {
	GID int `json:"gid" binding:"required"`
}

// RequestItem 商家申请的展示结构
type RequestItem struct {
	ID        uint64 `json:"id"`
	SID       string `json:"sid"`
	GName     string `json:"gname"`
	Count     int    `json:"count"`
	Value     int    `json:"value"`
	Action    string `json:"action"`
	TargetGID int    `json:"target_gid,omitempty"`
	Status    string `json:"status"`
	ResultGID int    `json:"result_gid,omitempty"`
	CreatedAt string `json:"created_at"`
}

type SubmitRequestResponse struct {
	Success bool   `json:"success"`
	Request uint64 `json:"request_id"`
}

type PendingRequestsResponse struct {
	Requests []RequestItem `json:"requests"`
}

type DecisionRequest struct {
	RequestID uint64 `json:"requestId" binding:"required"`
}

// DecisionResponse 审批结果；approve add 时 gid 为新商品编号，
// approve offline 时为被下架商品编号
type DecisionResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	GID     int    `json:"gid,omitempty"`
}
