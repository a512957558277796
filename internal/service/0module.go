package service

import (
	"go.uber.org/fx"

	"github.com/wishtally/backend/internal/client/gachalog"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewStore,
		NewSyncer,
		NewReport,
		NewAccount,
		NewUpdate,
		gachalog.NewClient,
		func(c *gachalog.Client) PageFetcher { return c },
	))
}
