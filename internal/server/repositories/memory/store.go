// Package memory is a process-local implementation of every repository,
// selected with the "memory" DSN. It mirrors the PostgreSQL schema's
// constraints (unique names, owner scoping, cascades) so services behave the
// same against either backend.
package memory

import (
	"maps"
	"sync"

	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

type state struct {
	users      map[string]*models.User
	tokens     map[string]*models.RefreshToken
	categories map[string]*models.Category
	tasks      map[string]*models.Task
}

func newState() state {
	return state{
		users:      map[string]*models.User{},
		tokens:     map[string]*models.RefreshToken{},
		categories: map[string]*models.Category{},
		tasks:      map[string]*models.Task{},
	}
}

// clone copies the maps; stored values are replaced rather than mutated in
// place, so sharing pointers between copies is safe.
func (s state) clone() state {
	return state{
		users:      maps.Clone(s.users),
		tokens:     maps.Clone(s.tokens),
		categories: maps.Clone(s.categories),
		tasks:      maps.Clone(s.tasks),
	}
}

// Store owns the data shared by the repositories returned from its accessors.
type Store struct {
	mu   sync.RWMutex
	data state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

// guard locks the store for one repository call. Repositories handed out by
// Atomically run under the write lock it already holds, so held skips it.
type guard struct {
	s    *Store
	held bool
}

func (g guard) lock() (unlock func()) {
	if g.held {
		return func() {}
	}
	g.s.mu.Lock()
	return g.s.mu.Unlock
}

func (g guard) rlock() (unlock func()) {
	if g.held {
		return func() {}
	}
	g.s.mu.RLock()
	return g.s.mu.RUnlock
}

// Tx hands out repositories that run inside Atomically. They must not be
// used after fn returns.
type Tx struct {
	s *Store
}

func (t Tx) guard() guard { return guard{s: t.s, held: true} }

func (t Tx) Users() *UserRepository                 { return &UserRepository{t.guard()} }
func (t Tx) RefreshTokens() *RefreshTokenRepository { return &RefreshTokenRepository{t.guard()} }
func (t Tx) Categories() *CategoryRepository        { return &CategoryRepository{t.guard()} }
func (t Tx) Tasks() *TaskRepository                 { return &TaskRepository{t.guard()} }

// Atomically runs fn under the write lock, so no other reader or writer sees
// or touches the store until it returns. If fn returns an error or panics,
// the store is rolled back to its state before the call. fn must use the
// repositories of tx; the ones from the Store accessors would deadlock.
func (s *Store) Atomically(fn func(tx Tx) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	defer func() {
		if p := recover(); p != nil {
			s.data = snapshot
			panic(p)
		}
		if err != nil {
			s.data = snapshot
		}
	}()

	return fn(Tx{s: s})
}

func (s *Store) Users() *UserRepository                 { return &UserRepository{guard{s: s}} }
func (s *Store) RefreshTokens() *RefreshTokenRepository { return &RefreshTokenRepository{guard{s: s}} }
func (s *Store) Categories() *CategoryRepository        { return &CategoryRepository{guard{s: s}} }
func (s *Store) Tasks() *TaskRepository                 { return &TaskRepository{guard{s: s}} }
