package dao

import (
	"context"

	"Greenway/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByUID 按用户名查询
func (u *Users) FindByUID(ctx context.Context, uid string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "uid = ?", uid)
}

// IsUIDExist 判断用户名是否已注册
func (u *Users) IsUIDExist(ctx context.Context, uid string) bool {
	exist, _ := u.Repo.IsExist(ctx, "uid = ?", uid)
	return exist
}
