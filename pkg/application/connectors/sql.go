package connectors

import (
	"context"
	"log/slog"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
	"github.com/samber/lo"

	"tg_dealshell/pkg/logx"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// SQL подключается к базе через sqlx. Driver — имя database/sql драйвера:
// pgx для postgres или sqlite3 для файла sqlite.
type SQL struct {
	value           *sqlx.DB
	Driver          string
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	init            sync.Once
}

func (s *SQL) Client(ctx context.Context) *sqlx.DB {
	s.init.Do(func() {
		s.value = lo.Must(sqlx.ConnectContext(ctx, s.Driver, s.DSN))

		// sqlite не допускает параллельной записи
		if s.Driver == DriverSQLite {
			s.MaxOpenConns = 1
		}

		s.value.SetMaxOpenConns(s.MaxOpenConns)
		s.value.SetMaxIdleConns(s.MaxIdleConns)
		s.value.SetConnMaxLifetime(s.ConnMaxLifetime)

		logger(ctx).Info(
			"sql database connected",
			slog.String("driver", s.Driver),
		)
	})

	return s.value
}

func (s *SQL) Close(ctx context.Context) {
	if s.value == nil {
		return
	}

	if err := s.value.Close(); err != nil {
		logger(ctx).Error("sqlClient.Close", logx.Error(err))
	}

	logger(ctx).Info(
		"sql database disconnected",
		slog.String("driver", s.Driver),
	)
}
