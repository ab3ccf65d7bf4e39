package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tg_dealshell/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("INIT_DATA_VALIDATION", "false")

	cfg, err := config.Load()
	rq.NoError(err)
	rq.Equal(config.CacheDriverMemory, cfg.Cache.Driver)
	rq.Equal("dealshell_user_", cfg.Cache.KeyPrefix)
	rq.Equal("playerok_bot", cfg.Bot.Username)
	rq.Equal("t.me", cfg.Bot.LinkHost)
	rq.Equal(30*time.Minute, cfg.Session.TTL)
	rq.Equal([]string{"https://web.telegram.org"}, cfg.HTTP.CORSAllowedOrigins)
}

func TestLoadValidation(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "token required for validation",
			env:  map[string]string{"INIT_DATA_VALIDATION": "true", "BOT_TOKEN": ""},
		},
		{
			name: "unknown driver",
			env:  map[string]string{"INIT_DATA_VALIDATION": "false", "CACHE_DRIVER": "etcd"},
		},
		{
			name: "postgres without dsn",
			env:  map[string]string{"INIT_DATA_VALIDATION": "false", "CACHE_DRIVER": "postgres", "PG_DSN": ""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			rq.ErrorIs(err, config.ErrInvalidConfig)
		})
	}
}
