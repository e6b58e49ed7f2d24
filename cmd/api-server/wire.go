//go:build wireinject
// +build wireinject

package main

import (
	"Pinboard/config"
	"Pinboard/dao"
	"Pinboard/dao/cache"
	"Pinboard/handler"
	"Pinboard/pkg/client"
	"Pinboard/pkg/database"
	"Pinboard/pkg/email"
	"Pinboard/pkg/oss"
	"Pinboard/pkg/server"
	"Pinboard/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		oss.NewOssClient,
		email.NewSender,
		server.NewGinEngine,
		cache.NewNotifyBadgeStorage,
		wire.Bind(new(service.BadgeStore), new(*cache.NotifyBadgeStorage)),

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Pin), "*"),
		wire.Struct(new(handler.Board), "*"),
		wire.Struct(new(handler.Conversation), "*"),
		wire.Struct(new(handler.Notification), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
