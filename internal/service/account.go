package service

import (
	"sort"

	"github.com/wishtally/backend/internal/model"
)

// AccountEntry is one known account with its display name and exclusion flag.
type AccountEntry struct {
	UID      uint64 `json:"uid"`
	Name     string `json:"name,omitempty"`
	Excluded bool   `json:"excluded"`
}

// Account exposes the display-name map and exclusion set over the store.
type Account struct {
	store *Store
}

func NewAccount(store *Store) *Account {
	return &Account{store: store}
}

// List returns every account seen in any ledger or named in the name map,
// sorted by UID.
func (a *Account) List() []AccountEntry {
	names := a.store.Names()
	excluded := a.store.Excluded()

	uids := map[uint64]struct{}{}
	for uid := range names {
		uids[uid] = struct{}{}
	}
	for _, kind := range model.BannerKinds {
		for _, rec := range a.store.Records(kind) {
			uids[rec.UID] = struct{}{}
		}
	}

	entries := make([]AccountEntry, 0, len(uids))
	for uid := range uids {
		_, isExcluded := excluded[uid]
		entries = append(entries, AccountEntry{
			UID:      uid,
			Name:     names[uid],
			Excluded: isExcluded,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].UID < entries[j].UID })
	return entries
}

// SetName records or clears an account's display name. An empty name removes
// the entry.
func (a *Account) SetName(uid uint64, name string) {
	a.store.SetName(uid, name)
}

// SetExcluded replaces the exclusion set.
func (a *Account) SetExcluded(uids []uint64) {
	a.store.SetExcluded(uids)
}

// Update sets one account's display name and exclusion flag.
func (a *Account) Update(uid uint64, name string, excluded bool) {
	a.store.SetName(uid, name)

	set := a.store.Excluded()
	if excluded {
		set[uid] = struct{}{}
	} else {
		delete(set, uid)
	}
	uids := make([]uint64, 0, len(set))
	for u := range set {
		uids = append(uids, u)
	}
	a.store.SetExcluded(uids)
}
