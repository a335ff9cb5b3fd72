package models

import "time"

// 积分流水 movement 的封闭枚举
const (
	MovementCycling    = "cycling"
	MovementSubway     = "subway"
	MovementBus        = "bus"
	MovementWalking    = "walking"
	MovementRedemption = "redemption"
)

// PointsLedger 对应数据库中的 points 表。只追加，不修改。
type PointsLedger struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UID      string    `gorm:"column:uid;size:10;not null;index:idx_uid_time,priority:1" json:"uid"`
	DateTime time.Time `gorm:"column:date_time;autoCreateTime;index:idx_uid_time,priority:2" json:"date_time"`
	Movement string    `gorm:"column:movement;size:20;not null" json:"movement"`
	Distance float64   `gorm:"column:distance" json:"distance"` // 兑换记录为 0
	Delta    int       `gorm:"column:delta;not null" json:"delta"`

	User Users `gorm:"foreignKey:UID;references:UID" json:"-"`
}

func (PointsLedger) TableName() string {
	return "points"
}
