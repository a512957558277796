package service

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/model"
	"github.com/wishtally/backend/internal/pkg/async"
	"github.com/wishtally/backend/internal/repo"
)

// Store owns the in-memory gacha state of the active game profile: the three
// pull ledgers, the rate-up schedules, the account name map and the account
// exclusion set. Readers take snapshots under a shared lock; mutations are
// exclusive. The worker serializes long-running mutators, the lock guards
// against concurrent readers observing a mutation mid-flight.
type Store struct {
	mu sync.RWMutex

	ledgerRepo  *repo.Ledger
	rateUpRepo  *repo.RateUp
	nameMapRepo *repo.NameMap

	game      model.Game
	ledgers   map[model.BannerKind]*model.Ledger
	schedules map[model.BannerKind]model.RateUpSchedule
	names     map[uint64]string
	excluded  map[uint64]struct{}

	// gen increments on every mutation; report caching keys off it.
	gen uint64
}

func NewStore(conf *appconfig.Config, ledgerRepo *repo.Ledger, rateUpRepo *repo.RateUp, nameMapRepo *repo.NameMap) *Store {
	s := &Store{
		ledgerRepo:  ledgerRepo,
		rateUpRepo:  rateUpRepo,
		nameMapRepo: nameMapRepo,
		game:        model.Game(conf.Game),
		ledgers:     map[model.BannerKind]*model.Ledger{},
		schedules:   map[model.BannerKind]model.RateUpSchedule{},
		names:       map[uint64]string{},
		excluded:    map[uint64]struct{}{},
	}
	for _, kind := range model.BannerKinds {
		s.ledgers[kind] = model.NewLedger(kind)
		s.schedules[kind] = model.RateUpSchedule{}
	}
	return s
}

// Load replaces all state with the given game's persisted state. Load errors
// are collected, not fatal: whatever loaded stays authoritative and the rest
// starts empty.
func (s *Store) Load(game model.Game) error {
	var errs async.Errors

	ledgers := map[model.BannerKind]*model.Ledger{}
	schedules := map[model.BannerKind]model.RateUpSchedule{}
	for _, kind := range model.BannerKinds {
		ledger, err := s.ledgerRepo.Load(game, kind)
		errs.Push(err)
		ledgers[kind] = ledger

		schedule, err := s.rateUpRepo.Load(game, kind)
		errs.Push(err)
		schedules[kind] = schedule
	}
	names, err := s.nameMapRepo.Load(game)
	errs.Push(err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = game
	s.ledgers = ledgers
	s.schedules = schedules
	s.names = names
	s.excluded = map[uint64]struct{}{}
	s.gen++

	log.Info().
		Str("evt.name", "store.load").
		Str("game", string(game)).
		Int("errors", len(errs.E)).
		Msg("loaded game profile")
	return errs.Wrapped()
}

// SaveAll persists every ledger and the name map, concurrently. Failures are
// collected per file; a partial save leaves the other files intact.
func (s *Store) SaveAll() error {
	s.mu.RLock()
	game := s.game
	ledgers := make(map[model.BannerKind]*model.Ledger, len(s.ledgers))
	for kind, l := range s.ledgers {
		copied := model.NewLedger(kind)
		copied.Merge(l)
		ledgers[kind] = copied
	}
	names := lo.Assign(map[uint64]string{}, s.names)
	s.mu.RUnlock()

	_, err := async.Map(model.BannerKinds, len(model.BannerKinds), func(kind model.BannerKind) (struct{}, error) {
		return struct{}{}, s.ledgerRepo.Save(game, kind, ledgers[kind])
	})

	var errs async.Errors
	if collected, ok := err.(async.Errors); ok {
		errs.E = append(errs.E, collected.E...)
	} else {
		errs.Push(err)
	}
	errs.Push(s.nameMapRepo.Save(game, names))
	return errs.Wrapped()
}

func (s *Store) Game() model.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game
}

// Add inserts one record into the kind's ledger, reporting whether it was new.
func (s *Store) Add(kind model.BannerKind, rec model.PullRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := s.ledgers[kind].Add(rec)
	if added {
		s.gen++
	}
	return added
}

// ResetLedger atomically replaces the kind's ledger contents.
func (s *Store) ResetLedger(kind model.BannerKind, ledger *model.Ledger) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.ledgers[kind].Reset(ledger)
}

// MergeLedger merges records into the kind's ledger, returning how many were new.
func (s *Store) MergeLedger(kind model.BannerKind, ledger *model.Ledger) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := s.ledgers[kind].Merge(ledger)
	if added > 0 {
		s.gen++
	}
	return added
}

func (s *Store) Size(kind model.BannerKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledgers[kind].Size()
}

// Records returns an unordered snapshot of the kind's ledger.
func (s *Store) Records(kind model.BannerKind) []model.PullRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledgers[kind].Records()
}

// Schedule returns the kind's rate-up schedule. The standard banner always
// yields an empty schedule.
func (s *Store) Schedule(kind model.BannerKind) model.RateUpSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(model.RateUpSchedule{}, s.schedules[kind]...)
}

// Excluded returns a copy of the current account exclusion set.
func (s *Store) Excluded() map[uint64]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uint64]struct{}, len(s.excluded))
	for uid := range s.excluded {
		out[uid] = struct{}{}
	}
	return out
}

func (s *Store) SetExcluded(uids []uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.excluded = make(map[uint64]struct{}, len(uids))
	for _, uid := range uids {
		s.excluded[uid] = struct{}{}
	}
	s.gen++
}

func (s *Store) Names() map[uint64]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Assign(map[uint64]string{}, s.names)
}

func (s *Store) SetName(uid uint64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" {
		delete(s.names, uid)
	} else {
		s.names[uid] = name
	}
	s.gen++
}

// Generation reports the mutation counter used to invalidate cached reports.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}
