package cache

import (
	"context"

	"tg_dealshell/internal/domain"
	"tg_dealshell/pkg/contextx"
	"tg_dealshell/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Store — синхронное key-value хранилище строк.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Ping проверяет доступность бэкенда для readiness-пробы.
	Ping(ctx context.Context) error
}

func errNotFound() error {
	return domain.NewError(errcodes.NotFound, "cache entry not found")
}

// IsNotFound сообщает, что ключа в хранилище нет.
func IsNotFound(err error) bool {
	return domain.HasCode(err, errcodes.NotFound)
}
