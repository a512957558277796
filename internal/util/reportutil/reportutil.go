// Package reportutil derives display-only views from finished reports.
// Nothing here is ever persisted: everything is recomputable from a report.
package reportutil

import (
	"time"

	"github.com/ahmetb/go-linq/v3"

	"github.com/wishtally/backend/internal/model"
)

// Superseded points a losing 5-star pull at the later winning rate-up 5-star
// of the same account that "made up" for it.
type Superseded struct {
	By model.PullKey `json:"by"`
	At time.Time     `json:"at"`
}

// fiveStars flattens a report's item groups into its 5-star pulls.
func fiveStars(report *model.BannerReport) []model.ProcessedPull {
	var pulls []model.ProcessedPull
	linq.From(report.Items.Items()).
		WhereT(func(item model.Item) bool { return item.Rarity == 5 }).
		SelectManyT(func(item model.Item) linq.Query {
			return linq.From(report.Items.Pulls(item))
		}).
		OrderByT(func(p model.ProcessedPull) int64 { return p.Time.UnixNano() }).
		ThenByT(func(p model.ProcessedPull) uint64 { return p.ID }).
		ThenByT(func(p model.ProcessedPull) string { return p.Name }).
		ToSlice(&pulls)
	return pulls
}

// SupersededLookup maps each non-rate-up 5-star pull to the next rate-up
// 5-star of the same account, when one exists.
func SupersededLookup(report *model.BannerReport) map[model.PullKey]Superseded {
	out := map[model.PullKey]Superseded{}

	pending := map[uint64][]model.PullKey{}
	for _, pull := range fiveStars(report) {
		if !pull.IsRateUp {
			pending[pull.UID] = append(pending[pull.UID], pull.Key())
			continue
		}
		for _, key := range pending[pull.UID] {
			out[key] = Superseded{By: pull.Key(), At: pull.Time}
		}
		pending[pull.UID] = nil
	}
	return out
}

// RateUpWinRate reports, per account, how many of its classified 5-star
// draws won their promotion roll.
func RateUpWinRate(report *model.BannerReport) map[uint64]float64 {
	won := map[uint64]int{}
	total := map[uint64]int{}
	for _, pull := range fiveStars(report) {
		total[pull.UID]++
		if pull.RateUpWon {
			won[pull.UID]++
		}
	}

	out := make(map[uint64]float64, len(total))
	for uid, n := range total {
		out[uid] = float64(won[uid]) / float64(n)
	}
	return out
}
