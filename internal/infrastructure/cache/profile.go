package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"tg_dealshell/internal/domain"
	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/internal/domain/value"
	"tg_dealshell/pkg/errcodes"
	"tg_dealshell/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	DefaultKeyPrefix = "dealshell_user_"
	anonymousKey     = "anonymous"
)

// profileEntry — формат записи в хранилище.
type profileEntry struct {
	Requisites  map[string]string `json:"requisites"`
	Entitlement bool              `json:"entitlement"`
}

// ProfileCache сохраняет реквизиты и флаг покупателя по id пользователя.
// Ошибки хранилища не фатальны: они логируются, а профиль остаётся с
// пустыми значениями по умолчанию.
type ProfileCache struct {
	store     Store
	keyPrefix string
}

func NewProfileCache(store Store, keyPrefix string) *ProfileCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}

	return &ProfileCache{
		store:     store,
		keyPrefix: keyPrefix,
	}
}

func (c *ProfileCache) Key(userID *int64) string {
	if userID == nil {
		return c.keyPrefix + anonymousKey
	}

	return c.keyPrefix + strconv.FormatInt(*userID, 10)
}

// Load заполняет реквизиты и флаг из хранилища. Повреждённая или
// отсутствующая запись оставляет профиль без изменений.
func (c *ProfileCache) Load(ctx context.Context, profile *entity.Profile) {
	key := c.Key(profile.UserID)

	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !IsNotFound(err) {
			logger(ctx).Error("profile cache load", slog.String("key", key), logx.Error(err))
		}

		return
	}

	entry, err := decodeEntry(raw)
	if err != nil {
		logger(ctx).Error("profile cache decode", slog.String("key", key), logx.Error(err))

		return
	}

	for code, requisite := range entry.Requisites {
		currency, err := value.ParseCurrency(code)
		if err != nil {
			logger(ctx).Warn("profile cache: unknown currency skipped", slog.String("key", key), slog.String("currency", code))

			continue
		}

		profile.SetRequisite(currency, requisite)
	}

	profile.Entitlement = entry.Entitlement
}

// Save записывает профиль целиком.
func (c *ProfileCache) Save(ctx context.Context, profile entity.Profile) error {
	entry := profileEntry{
		Requisites:  make(map[string]string, len(profile.Requisites)),
		Entitlement: profile.Entitlement,
	}

	for currency, requisite := range profile.Requisites {
		entry.Requisites[currency.String()] = requisite
	}

	raw, err := json.MarshalToString(entry)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err = c.store.Set(ctx, c.Key(profile.UserID), raw); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}

	return nil
}

func decodeEntry(raw string) (profileEntry, error) {
	var entry profileEntry

	if err := json.UnmarshalFromString(raw, &entry); err != nil {
		return profileEntry{}, domain.WrapError(err, errcodes.CacheCorrupted, "malformed profile entry")
	}

	return entry, nil
}
