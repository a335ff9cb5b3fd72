package models

// Users 对应数据库中的 user 表
type Users struct {
	UID         string `gorm:"primaryKey;column:uid;size:10" json:"uid"`
	Password    string `gorm:"column:password;size:60" json:"-"` // bcrypt 哈希
	Phone       string `gorm:"column:phone_num;size:20" json:"phone"`
	TotalPoints int    `gorm:"column:total_points;default:0;not null" json:"points"` // 累计积分，与流水增量之和保持一致
}

func (Users) TableName() string {
	return "user"
}
