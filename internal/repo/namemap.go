package repo

import (
	"path/filepath"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/model"
)

const nameMapFile = "NameMap.json"

// NameMap persists the UID to display-name mapping per game.
type NameMap struct {
	dataDir string
}

func NewNameMap(conf *appconfig.Config) *NameMap {
	return &NameMap{dataDir: conf.DataDir}
}

func (r *NameMap) path(game model.Game) string {
	return filepath.Join(r.dataDir, game.DirName(), nameMapFile)
}

func (r *NameMap) Load(game model.Game) (map[uint64]string, error) {
	names := map[uint64]string{}
	if _, err := readJSON(r.path(game), &names); err != nil {
		return map[uint64]string{}, err
	}
	return names, nil
}

func (r *NameMap) Save(game model.Game, names map[uint64]string) error {
	return writeJSON(r.path(game), names)
}
