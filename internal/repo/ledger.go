package repo

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/model"
)

var historyFiles = map[model.BannerKind]string{
	model.BannerStandard:  "StandardHistory.json",
	model.BannerCharacter: "CharacterHistory.json",
	model.BannerWeapon:    "WeaponHistory.json",
}

// Ledger persists per-banner pull ledgers, one JSON file per banner kind
// under the game's data directory, each independently loadable and savable.
type Ledger struct {
	dataDir string
}

func NewLedger(conf *appconfig.Config) *Ledger {
	return &Ledger{dataDir: conf.DataDir}
}

func (r *Ledger) path(game model.Game, kind model.BannerKind) string {
	return filepath.Join(r.dataDir, game.DirName(), historyFiles[kind])
}

// Load reads the persisted ledger for the given banner kind. A missing file
// yields an empty ledger with no error.
func (r *Ledger) Load(game model.Game, kind model.BannerKind) (*model.Ledger, error) {
	ledger := model.NewLedger(kind)
	existed, err := readJSON(r.path(game, kind), ledger)
	if err != nil {
		return model.NewLedger(kind), err
	}
	if !existed {
		log.Info().
			Str("evt.name", "ledger.load").
			Str("game", string(game)).
			Str("banner", string(kind)).
			Msg("no persisted history, starting empty")
		return ledger, nil
	}
	log.Info().
		Str("evt.name", "ledger.load").
		Str("game", string(game)).
		Str("banner", string(kind)).
		Int("records", ledger.Size()).
		Msg("loaded pull history")
	return ledger, nil
}

func (r *Ledger) Save(game model.Game, kind model.BannerKind, ledger *model.Ledger) error {
	if err := writeJSON(r.path(game, kind), ledger); err != nil {
		return err
	}
	log.Debug().
		Str("evt.name", "ledger.save").
		Str("game", string(game)).
		Str("banner", string(kind)).
		Int("records", ledger.Size()).
		Msg("saved pull history")
	return nil
}
