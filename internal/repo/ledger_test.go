package repo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/model"
)

func testConfig(t *testing.T) *appconfig.Config {
	t.Helper()
	dir := t.TempDir()
	conf := &appconfig.Config{}
	conf.DataDir = filepath.Join(dir, "user_data")
	conf.EventDir = filepath.Join(dir, "events")
	return conf
}

func TestLedgerRoundTrip(t *testing.T) {
	conf := testConfig(t)
	r := NewLedger(conf)

	ledger := model.NewLedger(model.BannerCharacter)
	ledger.Add(model.PullRecord{
		UID: 7, ID: 1001, Banner: model.BannerCharacter,
		ItemID: 1102, Name: "Seele", Category: model.CategoryCharacter,
		Rarity: 5, Time: time.Date(2023, 6, 10, 3, 4, 5, 0, time.UTC),
	})
	ledger.Add(model.PullRecord{
		UID: 7, ID: 1002, Banner: model.BannerCharacter,
		ItemID: 1001, Name: "March 7th", Category: model.CategoryCharacter,
		Rarity: 4, Time: time.Date(2023, 6, 10, 3, 4, 6, 0, time.UTC),
	})

	require.NoError(t, r.Save(model.GameHSR, model.BannerCharacter, ledger))

	loaded, err := r.Load(model.GameHSR, model.BannerCharacter)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Size())
	assert.Equal(t, model.BannerCharacter, loaded.Banner())
}

func TestLedgerLoadMissingFileIsEmpty(t *testing.T) {
	r := NewLedger(testConfig(t))

	loaded, err := r.Load(model.GameGenshin, model.BannerWeapon)
	require.NoError(t, err, "a missing persisted file is not an error")
	assert.Equal(t, 0, loaded.Size())
	assert.Equal(t, model.BannerWeapon, loaded.Banner())
}

func TestLedgerLoadCorruptFile(t *testing.T) {
	conf := testConfig(t)
	r := NewLedger(conf)

	path := filepath.Join(conf.DataDir, model.GameHSR.DirName(), "StandardHistory.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loaded, err := r.Load(model.GameHSR, model.BannerStandard)
	assert.Error(t, err)
	assert.Equal(t, 0, loaded.Size(), "corrupt file still yields a usable empty ledger")
}

func TestRateUpLoad(t *testing.T) {
	conf := testConfig(t)
	r := NewRateUp(conf)

	// standard banner never has a schedule
	sched, err := r.Load(model.GameHSR, model.BannerStandard)
	require.NoError(t, err)
	assert.Empty(t, sched)

	// missing file yields an empty schedule
	sched, err = r.Load(model.GameHSR, model.BannerCharacter)
	require.NoError(t, err)
	assert.Empty(t, sched)

	path := filepath.Join(conf.EventDir, model.GameHSR.DirName(), "CharacterEvents.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	body := `[{"start":"2023-06-01T00:00:00Z","end":"2023-06-21T00:00:00Z","rateUps":["Seele"]}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	sched, err = r.Load(model.GameHSR, model.BannerCharacter)
	require.NoError(t, err)
	require.Len(t, sched, 1)
	assert.True(t, sched.IsRateUp("Seele", time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, sched.IsRateUp("Bronya", time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)))
}

func TestNameMapRoundTrip(t *testing.T) {
	r := NewNameMap(testConfig(t))

	names, err := r.Load(model.GameHSR)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, r.Save(model.GameHSR, map[uint64]string{700001: "main", 700002: "alt"}))

	names, err = r.Load(model.GameHSR)
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{700001: "main", 700002: "alt"}, names)
}
