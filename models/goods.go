package models

import "time"

// Goods 对应数据库中的 goods 表。gid 由审批流程按 max(gid)+1 分配，
// 不是自增列。
type Goods struct {
	GID   int    `gorm:"primaryKey;autoIncrement:false;column:gid" json:"gid"`
	GName string `gorm:"column:gname;size:50;not null" json:"gname"`
	SID   string `gorm:"column:sid;size:10;not null;index:idx_goods_sid" json:"sid"`
	Count int    `gorm:"column:count;not null" json:"count"`
	Value int    `gorm:"column:value;not null" json:"value"`

	Shop Shop `gorm:"foreignKey:SID;references:SID" json:"-"`
}

func (Goods) TableName() string {
	return "goods"
}

// 商品申请的动作与状态
const (
	RequestActionAdd     = "add"
	RequestActionOffline = "offline"

	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// GoodsRequest 对应 goods_requests 表。pending -> approved/rejected，
// 只允许被裁决一次。
type GoodsRequest struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SID       string    `gorm:"column:sid;size:10;not null;index:idx_req_sid" json:"sid"`
	GName     string    `gorm:"column:gname;size:50" json:"gname"`
	Count     int       `gorm:"column:count" json:"count"`
	Value     int       `gorm:"column:value" json:"value"`
	Action    string    `gorm:"column:action;size:10;not null" json:"action"`
	TargetGID int       `gorm:"column:target_gid" json:"target_gid"` // 仅 offline 使用
	Status    string    `gorm:"column:status;size:10;not null;default:pending;index:idx_req_status" json:"status"`
	ResultGID int       `gorm:"column:result_gid" json:"result_gid"` // 审批通过后回填
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Shop Shop `gorm:"foreignKey:SID;references:SID" json:"-"`
}

func (GoodsRequest) TableName() string {
	return "goods_requests"
}
