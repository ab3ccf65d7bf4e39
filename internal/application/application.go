package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"tg_dealshell/internal/config"
	"tg_dealshell/internal/infrastructure/cache"
	"tg_dealshell/internal/infrastructure/webapp"
	"tg_dealshell/internal/miniapp"
	"tg_dealshell/internal/server"
	"tg_dealshell/migrations"
	"tg_dealshell/pkg/application/connectors"
	"tg_dealshell/pkg/application/modules"
	"tg_dealshell/pkg/contextx"
	"tg_dealshell/pkg/logx"
	"tg_dealshell/pkg/middlewarex"
	"tg_dealshell/pkg/rest"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func Run(ctx context.Context, cfg config.Config) error {
	g, ctx := errgroup.WithContext(ctx)

	store, closeStore, err := newCacheStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newCacheStore: %w", err)
	}

	defer closeStore(context.WithoutCancel(ctx))

	logger(ctx).Info("profile cache ready", slog.String("driver", string(cfg.Cache.Driver)))

	if !cfg.Bot.ValidateInitData {
		logger(ctx).Warn("init data validation is disabled")
	}

	srv := server.NewServer(
		server.NewSessionServer(
			server.NewRegistry(cfg.Session.TTL, cfg.Session.CleanupInterval),
			webapp.NewParser(cfg.Bot.Token, cfg.Bot.ValidateInitData, cfg.Bot.InitDataMaxAge),
			cache.NewProfileCache(store, cfg.Cache.KeyPrefix),
			miniapp.Config{
				BotUsername: cfg.Bot.Username,
				LinkHost:    cfg.Bot.LinkHost,
			},
		),
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           newRouter(ctx, cfg, srv),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready:         store.Ping,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.HTTP.MetricListenAddress}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

func newRouter(ctx context.Context, cfg config.Config, srv server.Server) chi.Router {
	var masker logx.SensitiveDataMaskerInterface = logx.NewNopSensitiveDataMasker()
	if cfg.App.LogMasking {
		masker = logx.NewSensitiveDataMasker()
	}

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.ContextLogger(logger(ctx)),
		middlewarex.Recovery,
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-Trace-Id", rest.HeaderSessionToken},
			ExposedHeaders: []string{"X-Trace-Id"},
			MaxAge:         300,
		}),
		middlewarex.RequestLogging(masker, cfg.App.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.App.LogFieldMaxLen),
	)

	srv.RegisterRoutes(r)

	return r
}

// newCacheStore подключает выбранный бэкенд кэша профилей. Возвращаемая
// функция закрывает соединение.
func newCacheStore(ctx context.Context, cfg config.Config) (cache.Store, func(context.Context), error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		rds := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}

		return cache.NewRedisStore(rds.Client(ctx)), rds.Close, nil
	case config.CacheDriverPostgres, config.CacheDriverSQLite:
		db := sqlConnector(cfg)
		client := db.Client(ctx)

		if err := migrations.Apply(ctx, client); err != nil {
			db.Close(ctx)

			return nil, nil, fmt.Errorf("migrations.Apply: %w", err)
		}

		return cache.NewSQLStore(client), db.Close, nil
	case config.CacheDriverMemory:
		return cache.NewMemoryStore(), func(context.Context) {}, nil
	}

	return nil, nil, fmt.Errorf("cache driver %q: %w", cfg.Cache.Driver, config.ErrInvalidConfig)
}

func sqlConnector(cfg config.Config) *connectors.SQL {
	if cfg.Cache.Driver == config.CacheDriverSQLite {
		return &connectors.SQL{
			Driver: connectors.DriverSQLite,
			DSN:    cfg.SQLite.Path,
		}
	}

	return &connectors.SQL{
		Driver:          connectors.DriverPostgres,
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
}
