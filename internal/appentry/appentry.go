package appentry

import (
	"go.uber.org/fx"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/controller"
	"github.com/wishtally/backend/internal/pkg/logger"
	"github.com/wishtally/backend/internal/repo"
	"github.com/wishtally/backend/internal/server/httpserver"
	"github.com/wishtally/backend/internal/server/svr"
	"github.com/wishtally/backend/internal/service"
	"github.com/wishtally/backend/internal/workers/taskwkr"
)

func ProvideOptions() []fx.Option {
	opts := []fx.Option{
		fx.Provide(appconfig.Parse),
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups),
		fx.Provide(taskwkr.New),
		fx.Invoke(logger.Configure),
		fx.WithLogger(logger.Fx),

		repo.Module(),
		service.Module(),
		controller.Module(),

		fx.Invoke(service.Boot),
	}

	return opts
}
