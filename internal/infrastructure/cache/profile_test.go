package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/internal/domain/value"
	"tg_dealshell/internal/infrastructure/cache"
)

func userID(id int64) *int64 {
	return &id
}

func TestProfileCacheKey(t *testing.T) {
	rq := require.New(t)

	c := cache.NewProfileCache(cache.NewMemoryStore(), "")
	rq.Equal("dealshell_user_42", c.Key(userID(42)))
	rq.Equal("dealshell_user_anonymous", c.Key(nil))

	c = cache.NewProfileCache(cache.NewMemoryStore(), "tg_")
	rq.Equal("tg_42", c.Key(userID(42)))
}

func TestProfileCacheRoundTrip(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := cache.NewMemoryStore()
	c := cache.NewProfileCache(store, "")

	profile := entity.NewProfile(userID(7), "seller", "Ann")
	profile.SetRequisite(value.CurrencyTON, "UQ-wallet")
	profile.SetRequisite(value.CurrencyRUB, "1234 5678")
	profile.Entitlement = true

	rq.NoError(c.Save(ctx, profile))

	raw, err := store.Get(ctx, "dealshell_user_7")
	rq.NoError(err)
	rq.JSONEq(`{"requisites":{"TON":"UQ-wallet","RUB":"1234 5678"},"entitlement":true}`, raw)

	restored := entity.NewProfile(userID(7), "seller", "Ann")
	c.Load(ctx, &restored)
	rq.Equal(profile, restored)
}

func TestProfileCacheLoadDegrades(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testCases := []struct {
		name       string
		raw        string
		requisites map[value.Currency]string
	}{
		{name: "malformed json", raw: "{broken", requisites: map[value.Currency]string{}},
		{name: "wrong shape", raw: `{"requisites":"TON"}`, requisites: map[value.Currency]string{}},
		{name: "not an object", raw: `[]`, requisites: map[value.Currency]string{}},
		{
			name:       "unknown currency skipped",
			raw:        `{"requisites":{"BTC":"x","USDT":"T1"}}`,
			requisites: map[value.Currency]string{value.CurrencyUSDT: "T1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			store := cache.NewMemoryStore()
			c := cache.NewProfileCache(store, "")
			rq.NoError(store.Set(ctx, c.Key(userID(1)), tc.raw))

			profile := entity.NewProfile(userID(1), "u", "f")
			c.Load(ctx, &profile)

			rq.Equal(tc.requisites, profile.Requisites)
			rq.False(profile.Entitlement)
		})
	}
}

func TestProfileCacheLoadMissing(t *testing.T) {
	rq := require.New(t)

	c := cache.NewProfileCache(cache.NewMemoryStore(), "")

	profile := entity.NewProfile(nil, "User", "User")
	c.Load(context.Background(), &profile)

	rq.Empty(profile.Requisites)
	rq.False(profile.Entitlement)
}
