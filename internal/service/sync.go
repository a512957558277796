package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/client/gachalog"
	"github.com/wishtally/backend/internal/model"
)

// PageFetcher retrieves one remote gacha log page, ordered newest to oldest.
type PageFetcher interface {
	FetchPage(ctx context.Context, params gachalog.FetchParams, kind model.BannerKind, page, size int, endID uint64) ([]model.PullRecord, error)
}

// Syncer paginates backward through the remote gacha log and merges new pulls
// into the store's ledgers. Between pages it sleeps a randomized backoff to
// stay under the remote rate limit; the sleep runs in small ticks so a cancel
// takes effect within one tick.
type Syncer struct {
	store   *Store
	fetcher PageFetcher

	pageSize    int
	baseDelay   time.Duration
	delayJitter time.Duration
	sleepTick   time.Duration
}

func NewSyncer(conf *appconfig.Config, store *Store, fetcher PageFetcher) *Syncer {
	return &Syncer{
		store:       store,
		fetcher:     fetcher,
		pageSize:    conf.SyncPageSize,
		baseDelay:   conf.SyncBaseDelay,
		delayJitter: conf.SyncDelayJitter,
		sleepTick:   conf.SyncSleepTick,
	}
}

// SyncBanner pulls pages for one banner kind until it catches up. A page
// record whose identity is already in the ledger stops the scan of that page;
// a page contributing fewer than pageSize new records ends the run. Both the
// genuine end of remote history and the dedup boundary hit this same
// termination test, so a short remote page is treated as completion even if
// older unsynced history were to exist behind it.
func (s *Syncer) SyncBanner(ctx context.Context, params gachalog.FetchParams, kind model.BannerKind, progress model.ProgressFunc) (int, error) {
	if progress == nil {
		progress = model.NopProgress
	}

	added := 0
	endID := uint64(0)
	for page := 1; ; page++ {
		progress(fmt.Sprintf("syncing %s: page %d (%d new)", kind, page, added), model.ProgressIndeterminate)

		records, err := s.fetcher.FetchPage(ctx, params, kind, page, s.pageSize, endID)
		if err != nil {
			return added, err
		}

		addedInPage := 0
		for _, rec := range records {
			if !s.store.Add(kind, rec) {
				break
			}
			addedInPage++
		}
		added += addedInPage

		if addedInPage < s.pageSize {
			break
		}

		endID = records[len(records)-1].ID
		if err := s.backoff(ctx, progress); err != nil {
			return added, err
		}
	}

	log.Info().
		Str("evt.name", "sync.banner").
		Str("banner", string(kind)).
		Int("added", added).
		Msg("banner synchronized")
	return added, nil
}

// SyncAll runs the three banner kinds in order. An error aborts the run;
// records merged by earlier kinds and earlier pages stay in the ledgers.
func (s *Syncer) SyncAll(ctx context.Context, params gachalog.FetchParams, progress model.ProgressFunc) (map[model.BannerKind]int, error) {
	counts := map[model.BannerKind]int{}
	for _, kind := range model.BannerKinds {
		added, err := s.SyncBanner(ctx, params, kind, progress)
		counts[kind] = added
		if err != nil {
			return counts, err
		}
	}
	return counts, nil
}

func (s *Syncer) backoff(ctx context.Context, progress model.ProgressFunc) error {
	delay := s.baseDelay
	if s.delayJitter > 0 {
		delay += time.Duration(rand.Int63n(int64(s.delayJitter)))
	}

	deadline := time.Now().Add(delay)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil
		}
		tick := s.sleepTick
		if tick <= 0 || tick > remaining {
			tick = remaining
		}
		progress(fmt.Sprintf("rate limit: waiting %.1fs", remaining.Seconds()), model.ProgressIndeterminate)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(tick):
		}
	}
}
