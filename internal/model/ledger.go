package model

import (
	"github.com/goccy/go-json"
)

// Ledger is the deduplicated pull history of one banner kind. It exposes no
// ordering; order-sensitive logic sorts explicitly. A Ledger is not safe for
// concurrent use on its own, the owning store serializes access.
type Ledger struct {
	banner  BannerKind
	records map[PullKey]PullRecord
}

func NewLedger(banner BannerKind) *Ledger {
	return &Ledger{
		banner:  banner,
		records: map[PullKey]PullRecord{},
	}
}

func (l *Ledger) Banner() BannerKind {
	return l.banner
}

// Add inserts the record unless its identity key is already present.
// It reports whether the record was new.
func (l *Ledger) Add(rec PullRecord) bool {
	key := rec.Key()
	if _, ok := l.records[key]; ok {
		return false
	}
	l.records[key] = rec
	return true
}

func (l *Ledger) Contains(rec PullRecord) bool {
	_, ok := l.records[rec.Key()]
	return ok
}

// Merge adds every record of other not yet present and returns the number of
// newly added records. Merging a ledger into itself adds nothing.
func (l *Ledger) Merge(other *Ledger) int {
	added := 0
	for _, rec := range other.records {
		if l.Add(rec) {
			added++
		}
	}
	return added
}

// Reset atomically replaces all contents with those of other and returns the
// new size.
func (l *Ledger) Reset(other *Ledger) int {
	l.records = make(map[PullKey]PullRecord, len(other.records))
	for k, rec := range other.records {
		l.records[k] = rec
	}
	return len(l.records)
}

func (l *Ledger) Size() int {
	return len(l.records)
}

// Records returns an unordered copy of all records.
func (l *Ledger) Records() []PullRecord {
	out := make([]PullRecord, 0, len(l.records))
	for _, rec := range l.records {
		out = append(out, rec)
	}
	return out
}

// Filter returns a new ledger holding the records satisfying pred.
func (l *Ledger) Filter(pred func(PullRecord) bool) *Ledger {
	out := NewLedger(l.banner)
	for _, rec := range l.records {
		if pred(rec) {
			out.Add(rec)
		}
	}
	return out
}

type ledgerJSON struct {
	Banner  BannerKind   `json:"banner"`
	Records []PullRecord `json:"records"`
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	records := l.Records()
	SortPulls(records)
	return json.Marshal(ledgerJSON{
		Banner:  l.banner,
		Records: records,
	})
}

func (l *Ledger) UnmarshalJSON(data []byte) error {
	var raw ledgerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.banner = raw.Banner
	l.records = make(map[PullKey]PullRecord, len(raw.Records))
	for _, rec := range raw.Records {
		l.records[rec.Key()] = rec
	}
	return nil
}
