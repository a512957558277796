package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishtally/backend/internal/model"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)
	seedLedgers(store)
	store.SetName(1, "main")

	require.NoError(t, store.SaveAll())

	reloaded := testStore(t, conf)
	require.NoError(t, reloaded.Load(model.GameHSR))

	assert.Equal(t, 1, reloaded.Size(model.BannerStandard))
	assert.Equal(t, 2, reloaded.Size(model.BannerCharacter))
	assert.Equal(t, 1, reloaded.Size(model.BannerWeapon))
	assert.Equal(t, map[uint64]string{1: "main"}, reloaded.Names())
}

func TestStoreLoadReplacesState(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)
	seedLedgers(store)
	store.SetExcluded([]uint64{2})

	// Nothing persisted for genshin: the switch lands on empty state.
	require.NoError(t, store.Load(model.GameGenshin))

	assert.Equal(t, model.GameGenshin, store.Game())
	for _, kind := range model.BannerKinds {
		assert.Equal(t, 0, store.Size(kind))
	}
	assert.Empty(t, store.Excluded())
}

func TestStoreGenerationBumpsOnMutation(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)

	before := store.Generation()
	store.Add(model.BannerCharacter, pullAt(1, 10, "Pela", 4, 0))
	afterAdd := store.Generation()
	assert.Greater(t, afterAdd, before)

	// A duplicate add mutates nothing.
	store.Add(model.BannerCharacter, pullAt(1, 10, "Pela", 4, 0))
	assert.Equal(t, afterAdd, store.Generation())

	store.SetExcluded([]uint64{1})
	assert.Greater(t, store.Generation(), afterAdd)
}

func TestStoreResetLedger(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)
	seedLedgers(store)

	replacement := model.NewLedger(model.BannerCharacter)
	replacement.Add(pullAt(9, 900, "Herta", 4, 0))

	size := store.ResetLedger(model.BannerCharacter, replacement)
	assert.Equal(t, 1, size)
	assert.Equal(t, 1, store.Size(model.BannerCharacter))
	// Other ledgers untouched.
	assert.Equal(t, 1, store.Size(model.BannerStandard))
}

func TestAccountListAndUpdate(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)
	seedLedgers(store)

	account := NewAccount(store)
	account.Update(2, "alt", true)

	entries := account.List()
	require.Len(t, entries, 2)
	assert.Equal(t, AccountEntry{UID: 1}, entries[0])
	assert.Equal(t, AccountEntry{UID: 2, Name: "alt", Excluded: true}, entries[1])

	// Clearing the name and the flag leaves the account listed via its pulls.
	account.Update(2, "", false)
	entries = account.List()
	require.Len(t, entries, 2)
	assert.Equal(t, AccountEntry{UID: 2}, entries[1])
}
