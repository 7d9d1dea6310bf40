//go:build unit

package commands_test

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"concert-reservation/internal/domain/concert"
	"concert-reservation/internal/domain/reservation"
	"concert-reservation/internal/domain/user"
	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"
	"concert-reservation/internal/pkg/pgconv"
	"concert-reservation/internal/usecase/commands"
	"concert-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore is an in-memory UnitOfWork. Unique keys are claimed at insert time
// and released on rollback, which is how postgres unique indexes behave for
// concurrent inserts. Reads see committed state only.
type memStore struct {
	mu           sync.Mutex
	concerts     map[uuid.UUID]*shared.ConcertSnapshot
	reservations map[uuid.UUID]*shared.ReservationSnapshot
	history      []*reservation.HistoryEntry
	users        map[string]*shared.UserCredentials
	lastLogins   map[uuid.UUID]time.Time
	claims       map[string]*memTx

	appendErr error
}

func newMemStore() *memStore {
	return &memStore{
		concerts:     map[uuid.UUID]*shared.ConcertSnapshot{},
		reservations: map[uuid.UUID]*shared.ReservationSnapshot{},
		users:        map[string]*shared.UserCredentials{},
		lastLogins:   map[uuid.UUID]time.Time{},
		claims:       map[string]*memTx{},
	}
}

func (s *memStore) addConcert(totalSeats int) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.concerts[id] = &shared.ConcertSnapshot{ID: id, Name: "concert", TotalSeats: totalSeats, CreatorID: uuid.New()}
	return id
}

// seed inserts a committed reservation without journaling it.
func (s *memStore) seed(concertID, userID uuid.UUID, seat int) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	snap := &shared.ReservationSnapshot{ID: id, ConcertID: concertID, UserID: userID, SeatNumber: seat, CreatedAt: time.Now()}
	s.reservations[id] = snap
	s.claims[userKey(concertID, userID)] = nil
	s.claims[seatKey(concertID, seat)] = nil
	return id
}

func (s *memStore) seats(concertID uuid.UUID) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []int
	for _, r := range s.reservations {
		if r.ConcertID == concertID {
			out = append(out, r.SeatNumber)
		}
	}
	slices.Sort(out)
	return out
}

func (s *memStore) journal(concertID uuid.UUID) []*reservation.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reservation.HistoryEntry
	for _, h := range s.history {
		if h.ConcertID() == concertID {
			out = append(out, h)
		}
	}
	return out
}

func userKey(concertID, userID uuid.UUID) string {
	return commands.ConstraintReservationConcertUser + "/" + concertID.String() + "/" + userID.String()
}

func seatKey(concertID uuid.UUID, seat int) string {
	return commands.ConstraintReservationConcertSeat + "/" + concertID.String() + "/" + strconv.Itoa(seat)
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return tx.commit()
}

func (s *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) CommandReads() shared.CommandReads {
	return memReads{store: s}
}

type memTx struct {
	store   *memStore
	inserts []*shared.ReservationSnapshot
	deletes []uuid.UUID
	history []*reservation.HistoryEntry
	users   []*user.User
	logins  map[uuid.UUID]time.Time
	keys    []string
}

func (t *memTx) Concerts() shared.ConcertRepository         { return memConcerts{tx: t} }
func (t *memTx) Reservations() shared.ReservationRepository { return memReservations{tx: t} }
func (t *memTx) History() shared.HistoryRepository          { return memHistory{tx: t} }
func (t *memTx) Users() shared.UserRepository               { return memUsers{tx: t} }
func (t *memTx) Reads() shared.CommandReads                 { return memReads{store: t.store} }
func (t *memTx) DB() db.DBTX                                { return nil }

func (t *memTx) rollback() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, k := range t.keys {
		if t.store.claims[k] == t {
			delete(t.store.claims, k)
		}
	}
}

func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range t.deletes {
		if r, ok := s.reservations[id]; ok {
			delete(s.claims, userKey(r.ConcertID, r.UserID))
			delete(s.claims, seatKey(r.ConcertID, r.SeatNumber))
			delete(s.reservations, id)
		}
	}
	for _, r := range t.inserts {
		s.reservations[r.ID] = r
	}
	for _, k := range t.keys {
		if s.claims[k] == t {
			s.claims[k] = nil
		}
	}
	s.history = append(s.history, t.history...)
	for _, u := range t.users {
		s.users[u.Email().Value()] = &shared.UserCredentials{ID: u.ID(), Email: u.Email().Value(), PasswordHash: u.PasswordHash(), IsActive: u.IsActive()}
	}
	for id, at := range t.logins {
		s.lastLogins[id] = at
	}
	return nil
}

func duplicateKey(constraint string) error {
	return infra.WrapRepoErr("failed to create reservation", &pgconn.PgError{
		Code:           pgconv.CodeUniqueViolation,
		ConstraintName: constraint,
	})
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

type memConcerts struct{ tx *memTx }

func (r memConcerts) Create(_ context.Context, c *concert.Concert) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.concerts[c.ID()] = &shared.ConcertSnapshot{ID: c.ID(), Name: c.Name(), TotalSeats: c.TotalSeats(), CreatorID: c.CreatorID()}
	return nil
}

type memReservations struct{ tx *memTx }

func (r memReservations) Create(_ context.Context, res *reservation.Reservation) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	uk := userKey(res.ConcertID(), res.UserID())
	if _, taken := s.claims[uk]; taken {
		return duplicateKey(commands.ConstraintReservationConcertUser)
	}
	sk := seatKey(res.ConcertID(), res.SeatNumber().Int())
	if _, taken := s.claims[sk]; taken {
		return duplicateKey(commands.ConstraintReservationConcertSeat)
	}
	s.claims[uk] = r.tx
	s.claims[sk] = r.tx
	r.tx.keys = append(r.tx.keys, uk, sk)

	r.tx.inserts = append(r.tx.inserts, &shared.ReservationSnapshot{
		ID:         res.ID(),
		ConcertID:  res.ConcertID(),
		UserID:     res.UserID(),
		SeatNumber: res.SeatNumber().Int(),
		CreatedAt:  res.CreatedAt(),
	})
	return nil
}

func (r memReservations) Delete(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.tx.deletes = append(r.tx.deletes, id)
	return nil
}

type memHistory struct{ tx *memTx }

func (r memHistory) Append(_ context.Context, entry *reservation.HistoryEntry) error {
	if err := r.tx.store.appendErr; err != nil {
		return err
	}
	r.tx.history = append(r.tx.history, entry)
	return nil
}

type memUsers struct{ tx *memTx }

func (r memUsers) Create(_ context.Context, u *user.User) error {
	r.tx.users = append(r.tx.users, u)
	return nil
}

func (r memUsers) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	if r.tx.logins == nil {
		r.tx.logins = map[uuid.UUID]time.Time{}
	}
	r.tx.logins[userID] = at
	return nil
}

type memReads struct{ store *memStore }

func (r memReads) ActiveConcertByID(_ context.Context, id uuid.UUID) (*shared.ConcertSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.concerts[id]
	if !ok {
		return nil, notFound()
	}
	cp := *c
	return &cp, nil
}

func (r memReads) ReservationByConcertAndUser(_ context.Context, concertID, userID uuid.UUID) (*shared.ReservationSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, res := range r.store.reservations {
		if res.ConcertID == concertID && res.UserID == userID {
			cp := *res
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r memReads) CountReservations(_ context.Context, concertID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n := 0
	for _, res := range r.store.reservations {
		if res.ConcertID == concertID {
			n++
		}
	}
	return n, nil
}

func (r memReads) ReservedSeatNumbers(_ context.Context, concertID uuid.UUID) ([]int, error) {
	return r.store.seats(concertID), nil
}

func (r memReads) UserCredentialsByEmail(_ context.Context, email string) (*shared.UserCredentials, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[email]
	if !ok {
		return nil, notFound()
	}
	cp := *u
	return &cp, nil
}
