// Package repomanager hands out the repositories of one storage backend and
// runs multi-repository work atomically.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/categories"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/users"
)

// MemoryDSN selects the in-process store instead of PostgreSQL.
const MemoryDSN = "memory"

// Repositories groups the repositories bound to one connection or transaction.
type Repositories interface {
	Users() users.Repository
	RefreshTokens() refreshtokens.Repository
	Tasks() tasks.Repository
	Categories() categories.Repository
}

type RepositoryManager interface {
	Repositories

	// RunMigrations brings the schema up to date.
	RunMigrations(ctx context.Context) error

	// WithTx runs fn with repositories that commit together when fn returns
	// nil and roll back otherwise.
	WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error

	Close() error
}

// Open returns the manager for dsn: the in-memory store for MemoryDSN and a
// PostgreSQL connection pool otherwise.
func Open(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == MemoryDSN {
		return NewMemoryRepositoryManager(), nil
	}
	m, err := NewPostgresRepositoryManager(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	return m, nil
}
