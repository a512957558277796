package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishtally/backend/internal/model"
)

func seedLedgers(store *Store) {
	// 1 standard 5-star at pity 1, 2 character pulls ending in a 5-star,
	// 1 weapon 5-star at pity 1.
	store.Add(model.BannerStandard, model.PullRecord{
		UID: 1, ID: 10, Banner: model.BannerStandard,
		Name: "Bailu", Category: model.CategoryCharacter, Rarity: 5, Time: countBase,
	})
	store.Add(model.BannerCharacter, pullAt(1, 20, "Pela", 4, 1))
	store.Add(model.BannerCharacter, pullAt(1, 21, "Seele", 5, 2))
	store.Add(model.BannerWeapon, model.PullRecord{
		UID: 2, ID: 30, Banner: model.BannerWeapon,
		Name: "Sleep Like the Dead", Category: model.CategoryWeapon, Rarity: 5, Time: countBase,
	})
}

func TestRecountAggregation(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)
	seedLedgers(store)

	r := NewReport(conf, store)
	report, err := r.Recount(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Len(t, report.UIDs, 2)

	// Standard and character 5-star histograms merge; weapon stays apart.
	assert.Equal(t, model.FreqMap{1: 1, 2: 1}, report.Pity5Standard[1])
	assert.NotContains(t, report.Pity5Standard, uint64(2))
	assert.Equal(t, model.FreqMap{1: 1}, report.Pity5Weapon[2])

	assert.Equal(t, model.FreqMap{1: 1}, report.Pity4[1])
}

func TestRecountExclusion(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)
	seedLedgers(store)

	r := NewReport(conf, store)
	report, err := r.Recount(context.Background(), map[uint64]struct{}{2: {}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.NotContains(t, report.UIDs, uint64(2))
	assert.Empty(t, report.Pity5Weapon)
}

func TestRecountCachesUntilLedgersChange(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)
	seedLedgers(store)

	r := NewReport(conf, store)
	first, err := r.Recount(context.Background(), nil, nil)
	require.NoError(t, err)

	again, err := r.Recount(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Same(t, first, again)

	store.Add(model.BannerCharacter, pullAt(1, 22, "Lynx", 4, 3))
	fresh, err := r.Recount(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.NotSame(t, first, fresh)
	assert.Equal(t, first.Total+1, fresh.Total)
}

func TestRecountDistinctExclusionSetsCacheSeparately(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)
	seedLedgers(store)

	r := NewReport(conf, store)
	all, err := r.Recount(context.Background(), nil, nil)
	require.NoError(t, err)

	filtered, err := r.Recount(context.Background(), map[uint64]struct{}{1: {}}, nil)
	require.NoError(t, err)
	assert.NotSame(t, all, filtered)
	assert.Equal(t, 1, filtered.Total)
}

func TestRecountCancelled(t *testing.T) {
	conf := testConfig(t)
	store := testStore(t, conf)
	seedLedgers(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewReport(conf, store)
	_, err := r.Recount(ctx, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, r.Last())
}

func TestLastBeforeFirstCount(t *testing.T) {
	conf := testConfig(t)
	r := NewReport(conf, testStore(t, conf))
	assert.Nil(t, r.Last())
}
