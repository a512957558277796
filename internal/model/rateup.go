package model

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"
)

// RateUpWindow is one rate-up event: a time range during which the named
// items are promoted. A nil Start or End leaves that bound open.
type RateUpWindow struct {
	Start   *time.Time  `json:"start"`
	End     *time.Time  `json:"end"`
	Label   null.String `json:"label,omitempty"`
	RateUps []string    `json:"rateUps"`
}

// Includes reports whether t falls within the window, bounds inclusive.
func (w *RateUpWindow) Includes(t time.Time) bool {
	if w.Start != nil && w.Start.After(t) {
		return false
	}
	if w.End != nil && w.End.Before(t) {
		return false
	}
	return true
}

// IsRateUp reports whether the named item is promoted by this window.
func (w *RateUpWindow) IsRateUp(name string) bool {
	return lo.Contains(w.RateUps, name)
}

// RateUpSchedule is the ordered list of rate-up windows of one banner kind.
// Windows may overlap; classification is a pure existential check, so their
// order never changes the result.
type RateUpSchedule []*RateUpWindow

// Sort orders windows by (start, end), open starts first.
func (s RateUpSchedule) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return lessWindow(s[i], s[j])
	})
}

func lessWindow(a, b *RateUpWindow) bool {
	at, bt := startOf(a), startOf(b)
	if !at.Equal(bt) {
		return at.Before(bt)
	}
	// An open end spans forward indefinitely, so it sorts after any
	// finite end with the same start.
	if (a.End == nil) != (b.End == nil) {
		return a.End != nil
	}
	if a.End == nil {
		return false
	}
	return a.End.Before(*b.End)
}

func startOf(w *RateUpWindow) time.Time {
	if w.Start == nil {
		return time.Time{}
	}
	return *w.Start
}

// IsRateUp reports whether the named item was promoted at time t. An empty
// schedule has no promotion concept: every pull counts as promoted, so that
// banners without configured windows never track spurious losses.
func (s RateUpSchedule) IsRateUp(name string, t time.Time) bool {
	if len(s) == 0 {
		return true
	}
	for _, w := range s {
		if w.Includes(t) && w.IsRateUp(name) {
			return true
		}
	}
	return false
}
