package repomanager

import (
	"context"

	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/categories"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/memory"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/users"
)

// MemoryRepositoryManager serves every repository from one memory.Store.
// Data lives as long as the process.
type MemoryRepositoryManager struct {
	store *memory.Store
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore()}
}

func (m *MemoryRepositoryManager) Users() users.Repository { return m.store.Users() }

func (m *MemoryRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.store.RefreshTokens()
}

func (m *MemoryRepositoryManager) Tasks() tasks.Repository { return m.store.Tasks() }

func (m *MemoryRepositoryManager) Categories() categories.Repository { return m.store.Categories() }

// RunMigrations is a no-op; the store has no schema.
func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

// WithTx runs fn under the store's write lock; other callers wait until fn
// returns and never observe a rolled back write.
func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return m.store.Atomically(func(tx memory.Tx) error {
		return fn(ctx, memoryTx{tx})
	})
}

// memoryTx adapts memory.Tx to Repositories.
type memoryTx struct {
	tx memory.Tx
}

func (t memoryTx) Users() users.Repository                 { return t.tx.Users() }
func (t memoryTx) RefreshTokens() refreshtokens.Repository { return t.tx.RefreshTokens() }
func (t memoryTx) Tasks() tasks.Repository                 { return t.tx.Tasks() }
func (t memoryTx) Categories() categories.Repository       { return t.tx.Categories() }

func (m *MemoryRepositoryManager) Close() error { return nil }
