package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/wishtally/backend/cmd/app/server"
	"github.com/wishtally/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "wishtally",
		Description: "Gacha pull ledger and pity statistics backend. Built with Go, fiber and go.uber.org/fx. Keeps a deduplicated per-banner pull history, synchronizes it incrementally from the game's gacha log API and serves pity reports.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
