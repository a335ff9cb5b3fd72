//go:build wireinject
// +build wireinject

package main

import (
	"Greenway/config"
	"Greenway/dao"
	"Greenway/handler"
	"Greenway/pkg/client"
	"Greenway/pkg/database"
	"Greenway/pkg/server"
	"Greenway/pkg/session"
	"Greenway/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		session.NewStore,
		server.NewGinEngine,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Merchant), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
