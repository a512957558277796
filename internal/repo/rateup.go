package repo

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/model"
)

var eventFiles = map[model.BannerKind]string{
	model.BannerCharacter: "CharacterEvents.json",
	model.BannerWeapon:    "WeaponEvents.json",
}

// RateUp loads rate-up event schedules. Only the character and weapon banners
// carry schedules; the standard banner has no promotion concept and always
// yields an empty one.
type RateUp struct {
	eventDir string
}

func NewRateUp(conf *appconfig.Config) *RateUp {
	return &RateUp{eventDir: conf.EventDir}
}

func (r *RateUp) Load(game model.Game, kind model.BannerKind) (model.RateUpSchedule, error) {
	file, ok := eventFiles[kind]
	if !ok {
		return model.RateUpSchedule{}, nil
	}

	var schedule model.RateUpSchedule
	path := filepath.Join(r.eventDir, game.DirName(), file)
	existed, err := readJSON(path, &schedule)
	if err != nil {
		return model.RateUpSchedule{}, err
	}
	if !existed {
		log.Info().
			Str("evt.name", "rateup.load").
			Str("game", string(game)).
			Str("banner", string(kind)).
			Msg("no rate-up schedule, every pull will classify as promoted")
		return model.RateUpSchedule{}, nil
	}

	schedule.Sort()
	log.Info().
		Str("evt.name", "rateup.load").
		Str("game", string(game)).
		Str("banner", string(kind)).
		Int("windows", len(schedule)).
		Msg("loaded rate-up schedule")
	return schedule, nil
}
