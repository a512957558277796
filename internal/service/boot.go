package service

import (
	"github.com/rs/zerolog/log"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/model"
)

// Boot loads the configured game's persisted state into the store. Load
// failures are reported but never prevent startup; whatever failed to load
// starts empty.
func Boot(conf *appconfig.Config, store *Store) {
	game := model.Game(conf.Game)
	if !game.Valid() {
		log.Warn().
			Str("evt.name", "store.boot").
			Str("game", conf.Game).
			Msg("unknown game in config, falling back to hsr")
		game = model.GameHSR
	}
	if err := store.Load(game); err != nil {
		log.Warn().
			Err(err).
			Str("evt.name", "store.boot").
			Str("game", string(game)).
			Msg("some persisted state failed to load")
	}
}
