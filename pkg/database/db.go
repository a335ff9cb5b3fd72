package database

import (
	"Greenway/config"
	"Greenway/models"
	"Greenway/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接并确保五张表存在
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	if err := Migrate(db); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// Migrate 幂等建表，与原系统启动时的 CREATE TABLE IF NOT EXISTS 等价
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Users{},
		&models.Shop{},
		&models.PointsLedger{},
		&models.Goods{},
		&models.GoodsRequest{},
	)
}
