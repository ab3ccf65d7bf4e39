package cache

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tg_dealshell/internal/domain"
	"tg_dealshell/pkg/errcodes"
)

// SQLStore хранит записи в таблице miniapp_cache. Запросы пишутся с "?"
// и переписываются под драйвер через Rebind, поэтому работают и с
// postgres (pgx), и с sqlite3.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

type entrySchema struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	query := s.db.Rebind(`SELECT key, value, updated_at FROM miniapp_cache WHERE key = ?`)

	var entry entrySchema
	if err := s.db.GetContext(ctx, &entry, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errNotFound()
		}

		return "", domain.WrapError(err, errcodes.CacheUnavailable, "failed to get cache entry")
	}

	return entry.Value, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return domain.WrapError(err, errcodes.CacheUnavailable, "sql ping")
	}

	return nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	query := s.db.Rebind(`
		INSERT INTO miniapp_cache (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`)

	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return domain.WrapError(err, errcodes.CacheUnavailable, "failed to set cache entry")
	}

	return nil
}
