package models

// Shop 对应数据库中的 shop 表（商家）
type Shop struct {
	SID      string `gorm:"primaryKey;column:sid;size:10" json:"sid"`
	SName    string `gorm:"column:sname;size:50" json:"sname"`
	Password string `gorm:"column:password;size:60" json:"-"`
	Phone    string `gorm:"column:phone_num;size:20" json:"phone"`
}

func (Shop) TableName() string {
	return "shop"
}
