package users

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/ticketbooking/internal/common"
	"github.com/dmitrijs2005/ticketbooking/internal/cryptox"
	"github.com/dmitrijs2005/ticketbooking/internal/logging"
)

// Store owns the in-memory user collection for its lifetime.
//
// The collection is loaded wholesale from Storage, kept in insertion order,
// grown only by Register/SignUp and written back in full after every append.
// Names are not unique unless WithUniqueNames is given; lookups take the
// first record in load order that matches.
//
// A mutex serializes operations within one Store. Two Stores (or processes)
// sharing a file are not coordinated: the last Save wins.
type Store struct {
	mu sync.Mutex

	storage     Storage
	verifier    cryptox.Verifier
	log         logging.Logger
	uniqueNames bool

	candidate *Candidate
	users     []User
}

type Option func(*Store)

// WithUniqueNames makes Register reject a name that is already present.
func WithUniqueNames() Option {
	return func(s *Store) { s.uniqueNames = true }
}

// NewStore loads the collection from storage without binding a candidate.
// Load errors are returned as is and no Store is created.
func NewStore(ctx context.Context, storage Storage, verifier cryptox.Verifier, log logging.Logger, opts ...Option) (*Store, error) {
	if log == nil {
		log = logging.Nop()
	}

	s := &Store{storage: storage, verifier: verifier, log: log}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := s.LoadUsers(ctx); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return s, nil
}

// NewStoreWithCandidate is NewStore followed by SetCandidate(c).
func NewStoreWithCandidate(ctx context.Context, storage Storage, verifier cryptox.Verifier, log logging.Logger, c Candidate, opts ...Option) (*Store, error) {
	s, err := NewStore(ctx, storage, verifier, log, opts...)
	if err != nil {
		return nil, err
	}
	s.SetCandidate(c)
	return s, nil
}

func (s *Store) SetCandidate(c Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidate = &c
}

func (s *Store) ClearCandidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidate = nil
}

// LoadUsers replaces the in-memory collection with the content of storage,
// dropping any appends that were not persisted. It is a full reload, not a
// merge. On error the current collection is kept.
func (s *Store) LoadUsers(ctx context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.users = list
	s.log.Debug(ctx, "users loaded", "count", len(list))

	return cloneUsers(list), nil
}

// Login reports whether the bound candidate matches a stored record by name
// and password. An unknown name and a wrong password both give false.
func (s *Store) Login(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.resolve()
	return ok
}

// SwitchCandidate binds c only if it matches a stored record the same way
// Login does. When it does not, the previously bound candidate is kept.
func (s *Store) SwitchCandidate(ctx context.Context, c Candidate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.candidate
	s.candidate = &c
	if _, ok := s.resolve(); !ok {
		s.candidate = prev
		return false
	}
	return true
}

// SignUp appends u and persists the collection, reporting success as a bool.
// Use Register to get the underlying error.
func (s *Store) SignUp(ctx context.Context, u User) bool {
	return s.Register(ctx, u) == nil
}

// Register appends u and persists the whole collection.
//
// When persisting fails the append stays in memory, so memory and storage
// disagree until the next successful persist or a LoadUsers. The error wraps
// common.ErrIO in that case and is also logged.
func (s *Store) Register(ctx context.Context, u User) error {
	if u.Name == "" {
		return fmt.Errorf("%w: empty name", common.ErrInvalidUser)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uniqueNames && s.indexOf(u.Name) >= 0 {
		return fmt.Errorf("%w: %s", common.ErrUserExists, u.Name)
	}

	s.users = append(s.users, cloneUser(u))

	if err := s.persist(ctx); err != nil {
		s.log.Error(ctx, "persist users failed", "user", u.Name, "count", len(s.users), "error", err)
		return fmt.Errorf("persist users: %w", err)
	}

	s.log.Info(ctx, "user registered", "user", u.Name, "count", len(s.users))
	return nil
}

// FetchBooking writes the bookings of the candidate's record to w. The record
// is resolved the same way Login does; common.ErrUnauthorized is returned
// when nothing matches.
func (s *Store) FetchBooking(ctx context.Context, w io.Writer) error {
	s.mu.Lock()
	i, ok := s.resolve()
	var u User
	if ok {
		u = cloneUser(s.users[i])
	}
	s.mu.Unlock()

	if !ok {
		return common.ErrUnauthorized
	}
	return u.ListBookings(w)
}

// Users returns a copy of the in-memory collection, in order.
func (s *Store) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUsers(s.users)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// resolve returns the index of the first record matching the candidate.
// Callers hold s.mu.
func (s *Store) resolve() (int, bool) {
	if s.candidate == nil {
		return -1, false
	}
	for i, u := range s.users {
		if u.Name == s.candidate.Name && s.verifier.Verify(s.candidate.Password, u.HashedPassword) {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) indexOf(name string) int {
	for i, u := range s.users {
		if u.Name == name {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	return s.storage.Save(ctx, s.users)
}
