package model

import (
	"sort"
	"time"
)

// ItemCategory is the broad class of a drawn item.
type ItemCategory string

const (
	CategoryCharacter ItemCategory = "character"
	CategoryWeapon    ItemCategory = "weapon"
)

// PullRecord is one gacha draw as stored in a ledger. Two records are the
// same pull iff they share (ID, Name); the remaining fields are incidental
// and do not participate in identity.
type PullRecord struct {
	UID      uint64       `json:"uid"`
	ID       uint64       `json:"id"`
	Banner   BannerKind   `json:"banner"`
	GachaID  uint32       `json:"gachaId"`
	ItemID   uint32       `json:"itemId"`
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
	Rarity   int          `json:"rarity"`
	Time     time.Time    `json:"time"`
}

// PullKey is the dedup identity of a PullRecord.
type PullKey struct {
	ID   uint64
	Name string
}

func (r PullRecord) Key() PullKey {
	return PullKey{ID: r.ID, Name: r.Name}
}

// Less orders records by draw time, then draw id, then item name.
func (r PullRecord) Less(other PullRecord) bool {
	if !r.Time.Equal(other.Time) {
		return r.Time.Before(other.Time)
	}
	if r.ID != other.ID {
		return r.ID < other.ID
	}
	return r.Name < other.Name
}

// SortPulls sorts records in natural order, in place.
func SortPulls(records []PullRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Less(records[j])
	})
}

// ProcessedPull is a PullRecord augmented with the pity metadata derived by
// the counting pass. Immutable once produced.
type ProcessedPull struct {
	PullRecord

	// PityCount is how many draws the account had made since its previous
	// draw of this record's rarity tier, this draw included.
	PityCount int `json:"pityCount"`

	// IsRateUp reports whether the item was promoted at the draw time.
	IsRateUp bool `json:"isRateUp"`

	// RateUpWon reports whether the account's previous draw of this tier
	// yielded a promoted item. True for an account's first draw of a tier.
	RateUpWon bool `json:"rateUpWon"`
}
