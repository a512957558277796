package model

// BannerReport is the outcome of one counting pass over one banner's ledger.
// Accounts without entries in the counter maps have drawn nothing; consumers
// default their counters to 0 and their last-rate-up flags to true.
type BannerReport struct {
	Banner BannerKind          `json:"banner"`
	UIDs   map[uint64]struct{} `json:"-"`

	// PullsSince4/PullsSince5 are the running pity counters at the end of
	// the pass: draws made since each account's last 4-star or 5-star.
	PullsSince4 map[uint64]int `json:"pullsSince4"`
	PullsSince5 map[uint64]int `json:"pullsSince5"`

	// Last4RateUp/Last5RateUp report whether each account's most recent
	// 4-star or 5-star draw yielded a promoted item.
	Last4RateUp map[uint64]bool `json:"last4RateUp"`
	Last5RateUp map[uint64]bool `json:"last5RateUp"`

	Total int      `json:"total"`
	Items *ItemMap `json:"items"`

	Pity5 AccPityFreqMap `json:"pity5"`
	Pity4 AccPityFreqMap `json:"pity4"`
}

// OverallReport merges the three banner reports. The weapon banner's 5-star
// histogram stays separate from the standard+character merge because its
// pity ceiling differs (80 versus 90 draws).
type OverallReport struct {
	Game Game                `json:"game"`
	UIDs map[uint64]struct{} `json:"-"`

	Standard  *BannerReport `json:"standard"`
	Character *BannerReport `json:"character"`
	Weapon    *BannerReport `json:"weapon"`

	Total int      `json:"total"`
	Items *ItemMap `json:"items"`

	Pity5Standard AccPityFreqMap `json:"pity5Standard"`
	Pity5Weapon   AccPityFreqMap `json:"pity5Weapon"`
	Pity4         AccPityFreqMap `json:"pity4"`
}

// NewOverallReport aggregates three completed banner reports. The merge is
// pure: account sets are unioned, totals summed, item groupings union-merged
// and histograms merged without re-deriving anything.
func NewOverallReport(game Game, standard, character, weapon *BannerReport) *OverallReport {
	uids := map[uint64]struct{}{}
	for _, r := range []*BannerReport{standard, character, weapon} {
		for uid := range r.UIDs {
			uids[uid] = struct{}{}
		}
	}

	return &OverallReport{
		Game:          game,
		UIDs:          uids,
		Standard:      standard,
		Character:     character,
		Weapon:        weapon,
		Total:         standard.Total + character.Total + weapon.Total,
		Items:         standard.Items.Merge(character.Items).Merge(weapon.Items),
		Pity5Standard: standard.Pity5.Merge(character.Pity5),
		Pity5Weapon:   weapon.Pity5.Clone(),
		Pity4:         standard.Pity4.Merge(character.Pity4).Merge(weapon.Pity4),
	}
}
