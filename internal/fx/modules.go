package fx

import (
	"lol-tracker/internal/config"
	"lol-tracker/internal/logger"
	"lol-tracker/internal/riot"
	"lol-tracker/internal/server"
	"lol-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideRiotAPI(client *riot.Client) service.RiotAPI {
	return client
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// upstream client
	fx.Provide(riot.NewClient),
	fx.Provide(ProvideRiotAPI),
	// svc
	fx.Provide(service.NewProfileService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewRankService),
	// server
	fx.Provide(server.NewServer),
)
