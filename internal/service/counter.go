package service

import (
	"fmt"

	"github.com/wishtally/backend/internal/model"
)

// CounterTask is one counting pass over one banner's records. The pass is a
// pure function of its inputs: it never touches the store.
type CounterTask struct {
	Banner   model.BannerKind
	Records  []model.PullRecord
	Schedule model.RateUpSchedule
	Excluded map[uint64]struct{}
}

type accountState struct {
	since4 int
	since5 int

	// last4RateUp/last5RateUp start true so an account's first rare draw is
	// never flagged as a lost roll.
	last4RateUp bool
	last5RateUp bool
}

// Count walks the banner's records in natural order and derives per-pull pity
// and rate-up metadata. Every draw advances both pity clocks; a 5-star draw
// resets both counters, a 4-star draw resets only the 4-star counter.
func (t CounterTask) Count(progress model.ProgressFunc) *model.BannerReport {
	if progress == nil {
		progress = model.NopProgress
	}

	records := make([]model.PullRecord, 0, len(t.Records))
	for _, rec := range t.Records {
		if _, skip := t.Excluded[rec.UID]; skip {
			continue
		}
		records = append(records, rec)
	}
	model.SortPulls(records)

	report := &model.BannerReport{
		Banner:      t.Banner,
		UIDs:        map[uint64]struct{}{},
		PullsSince4: map[uint64]int{},
		PullsSince5: map[uint64]int{},
		Last4RateUp: map[uint64]bool{},
		Last5RateUp: map[uint64]bool{},
		Total:       len(records),
		Items:       model.NewItemMap(),
		Pity5:       model.AccPityFreqMap{},
		Pity4:       model.AccPityFreqMap{},
	}

	states := map[uint64]*accountState{}
	for i, rec := range records {
		state, ok := states[rec.UID]
		if !ok {
			state = &accountState{last4RateUp: true, last5RateUp: true}
			states[rec.UID] = state
		}
		report.UIDs[rec.UID] = struct{}{}

		state.since4++
		state.since5++

		isRateUp := t.Schedule.IsRateUp(rec.Name, rec.Time)
		pull := model.ProcessedPull{PullRecord: rec, IsRateUp: isRateUp}

		switch rec.Rarity {
		case 5:
			pull.PityCount = state.since5
			pull.RateUpWon = state.last5RateUp
			report.Pity5.Add(rec.UID, state.since5)
			state.since4, state.since5 = 0, 0
			state.last4RateUp, state.last5RateUp = isRateUp, isRateUp
		case 4:
			pull.PityCount = state.since4
			pull.RateUpWon = state.last4RateUp
			report.Pity4.Add(rec.UID, state.since4)
			state.since4 = 0
			state.last4RateUp = isRateUp
		}

		report.Items.Add(pull)

		if i%200 == 0 {
			progress(fmt.Sprintf("counting %s", t.Banner), float64(i+1)/float64(len(records)))
		}
	}

	for uid, state := range states {
		report.PullsSince4[uid] = state.since4
		report.PullsSince5[uid] = state.since5
		report.Last4RateUp[uid] = state.last4RateUp
		report.Last5RateUp[uid] = state.last5RateUp
	}

	progress(fmt.Sprintf("counted %s", t.Banner), 1)
	return report
}
