package controller

import (
	"go.uber.org/fx"

	v1 "github.com/wishtally/backend/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		v1.Module(),
	)
}
