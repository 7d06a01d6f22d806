package session

import (
	"context"
	"database/sql"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/noclaf/internal/client/models"
	"github.com/dmitrijs2005/noclaf/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/noclaf/internal/dbx"
)

// Durable keys of the session in the metadata store.
const (
	KeyAuthenticated = "is_authenticated"
	KeyToken         = "user_token"
	KeyDisplayName   = "display_name"
)

// SQLiteBackend persists the session in the metadata table.
type SQLiteBackend struct {
	db   *sql.DB
	repo func(dbx.DBTX) metadata.Repository
}

func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{
		db: db,
		repo: func(tx dbx.DBTX) metadata.Repository {
			return metadata.NewSQLiteRepository(tx)
		},
	}
}

// Load reads the three session keys in one query. A missing or unreadable
// flag counts as logged out.
func (b *SQLiteBackend) Load(ctx context.Context) (models.Session, error) {
	values, err := b.repo(b.db).List(ctx)
	if err != nil {
		return models.Session{}, err
	}

	var s models.Session
	if flag, ok := values[KeyAuthenticated]; ok {
		s.IsAuthenticated, _ = strconv.ParseBool(flag)
	}
	s.Token = values[KeyToken]
	s.DisplayName = values[KeyDisplayName]
	return s, nil
}

// Save writes flag, token and display name in a single transaction.
func (b *SQLiteBackend) Save(ctx context.Context, s models.Session) error {
	return dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := b.repo(tx)
		if err := repo.Set(ctx, KeyToken, s.Token); err != nil {
			return err
		}
		if err := repo.Set(ctx, KeyDisplayName, s.DisplayName); err != nil {
			return err
		}
		return repo.Set(ctx, KeyAuthenticated, strconv.FormatBool(s.IsAuthenticated))
	})
}

func (b *SQLiteBackend) Erase(ctx context.Context) error {
	return dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := b.repo(tx)
		if err := repo.Set(ctx, KeyAuthenticated, strconv.FormatBool(false)); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyToken, KeyDisplayName)
	})
}

// MemoryBackend keeps the session in process memory only.
type MemoryBackend struct {
	mu sync.Mutex
	s  models.Session
}

func NewMemoryBackend(initial models.Session) *MemoryBackend {
	return &MemoryBackend{s: initial}
}

func (b *MemoryBackend) Load(context.Context) (models.Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.s, nil
}

func (b *MemoryBackend) Save(_ context.Context, s models.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.s = s
	return nil
}

func (b *MemoryBackend) Erase(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.s = models.Session{}
	return nil
}
