package client

import (
	"context"
	"fmt"

	"Greenway/config"
	"Greenway/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port),
		Password:    conf.Redis.Password,
		Username:    conf.Redis.Username,
		DB:          conf.Redis.Database,
		ReadTimeout: 0,
	})
	// 只有会话真正落在 redis 上才要求连通
	if conf.Session != nil && conf.Session.Driver == "redis" {
		if _, err := client.Ping(context.TODO()).Result(); err != nil {
			log.L.Fatal("connect redis error", zap.Error(err))
		}
		log.L.Info("redis client success")
	}
	return client
}
