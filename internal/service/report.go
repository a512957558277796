package service

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/model"
)

// Report runs counting passes over the store's ledgers and aggregates the
// three banner reports into one. Results are cached until the ledgers or the
// exclusion set change.
type Report struct {
	store *Store
	cache *cache.Cache

	mu   sync.RWMutex
	last *model.OverallReport
}

func NewReport(conf *appconfig.Config, store *Store) *Report {
	return &Report{
		store: store,
		cache: cache.New(conf.ReportCacheTTL, conf.ReportCacheTTL*2),
	}
}

// Recount counts all three banners against the given exclusion set and merges
// the results. Cancellation is observed between banners; a cancelled run
// produces no report.
func (r *Report) Recount(ctx context.Context, excluded map[uint64]struct{}, progress model.ProgressFunc) (*model.OverallReport, error) {
	if progress == nil {
		progress = model.NopProgress
	}

	key := r.cacheKey(excluded)
	if cached, ok := r.cache.Get(key); ok {
		report := cached.(*model.OverallReport)
		r.setLast(report)
		return report, nil
	}

	reports := map[model.BannerKind]*model.BannerReport{}
	for _, kind := range model.BannerKinds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		task := CounterTask{
			Banner:   kind,
			Records:  r.store.Records(kind),
			Schedule: r.store.Schedule(kind),
			Excluded: excluded,
		}
		reports[kind] = task.Count(progress)
	}

	report := model.NewOverallReport(
		r.store.Game(),
		reports[model.BannerStandard],
		reports[model.BannerCharacter],
		reports[model.BannerWeapon],
	)
	r.cache.SetDefault(key, report)
	r.setLast(report)

	log.Info().
		Str("evt.name", "report.recount").
		Int("total", report.Total).
		Int("accounts", len(report.UIDs)).
		Msg("recounted ledgers")
	return report, nil
}

// Last returns the most recently computed report, or nil before the first
// count.
func (r *Report) Last() *model.OverallReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

func (r *Report) setLast(report *model.OverallReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = report
}

// cacheKey hashes the sorted exclusion set together with the store's mutation
// generation, so any ledger change invalidates every cached report.
func (r *Report) cacheKey(excluded map[uint64]struct{}) string {
	uids := make([]uint64, 0, len(excluded))
	for uid := range excluded {
		uids = append(uids, uid)
	}
	sort.Slice(uids, func(i, j int) bool { return uids[i] < uids[j] })

	h := xxh3.New()
	var buf [8]byte
	for _, uid := range uids {
		binary.LittleEndian.PutUint64(buf[:], uid)
		_, _ = h.Write(buf[:])
	}
	return fmt.Sprintf("%d:%x", r.store.Generation(), h.Sum64())
}
