package miniapp

import (
	"context"
	"errors"
	"log/slog"

	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/internal/domain/value"
	"tg_dealshell/pkg/contextx"
	"tg_dealshell/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	DefaultLinkHost    = "t.me"
	DefaultBotUsername = "playerok_bot"
	defaultDisplayName = "User"
)

type profileStore interface {
	Load(ctx context.Context, profile *entity.Profile)
	Save(ctx context.Context, profile entity.Profile) error
}

type actionSender interface {
	Send(ctx context.Context, action entity.Action) error
}

type Config struct {
	BotUsername string
	LinkHost    string
}

// App — контроллер мини-приложения. Один экземпляр на один запуск; методы
// вызываются последовательно, параллельный доступ не поддерживается.
type App struct {
	cfg      Config
	bridge   Bridge
	profiles profileStore
	actions  actionSender
	nav      *Navigator

	profile entity.Profile
	session Session
	closed  bool
}

func New(cfg Config, bridge Bridge, profiles profileStore, actions actionSender) *App {
	if cfg.LinkHost == "" {
		cfg.LinkHost = DefaultLinkHost
	}

	if cfg.BotUsername == "" {
		cfg.BotUsername = DefaultBotUsername
	}

	return &App{
		cfg:      cfg,
		bridge:   bridge,
		profiles: profiles,
		actions:  actions,
		nav:      NewNavigator(bridge),
	}
}

// Launch загружает профиль и выбирает стартовый экран по параметрам запуска.
func (a *App) Launch(ctx context.Context, params LaunchParams) {
	a.profile = entity.NewProfile(
		params.User.ID,
		fallback(params.User.Username, defaultDisplayName),
		fallback(params.User.FirstName, defaultDisplayName),
	)
	a.profiles.Load(ctx, &a.profile)

	switch bot, err := params.BotUsername(); {
	case err != nil:
		logger(ctx).Warn("bot override ignored", logx.Error(err))
	case bot != "":
		a.cfg.BotUsername = bot
	}

	if params.IsDealCreated() {
		a.showDealCreated(ctx, params)

		return
	}

	if id, ok := params.BuyerDealID(); ok {
		a.showDealForBuyer(ctx, id)

		return
	}

	a.nav.Show(value.ScreenMain)
}

func (a *App) Navigator() *Navigator {
	return a.nav
}

func (a *App) Profile() entity.Profile {
	return a.profile
}

func (a *App) Session() Session {
	return a.session
}

func (a *App) Closed() bool {
	return a.closed
}

// send передаёт действие боту; при ошибке показывает alert и операция
// прерывается.
func (a *App) send(ctx context.Context, action entity.Action) bool {
	if err := a.actions.Send(ctx, action); err != nil {
		logger(ctx).Error("actions.Send", slog.String("action", action.ActionName().String()), logx.Error(err))
		a.bridge.ShowAlert(ctx, textSendFailed)

		return false
	}

	return true
}

func (a *App) saveProfile(ctx context.Context) {
	if err := a.profiles.Save(ctx, a.profile); err != nil {
		logger(ctx).Error("profiles.Save", logx.Error(err))
	}
}

// close завершает сессию: платформа закрывает окно приложения.
func (a *App) close(ctx context.Context) {
	a.closed = true
	a.bridge.Close(ctx)
}

// failToMain — восстановление после отсутствующего контекста: alert и главный экран.
func (a *App) failToMain(ctx context.Context, message string, err error) {
	logger(ctx).Warn("redirecting to main screen", slog.String("reason", message), logx.Error(err))
	a.bridge.ShowAlert(ctx, message)
	a.nav.Show(value.ScreenMain)
}

func (a *App) showDealCreated(ctx context.Context, params LaunchParams) {
	deal, err := params.CreatedDeal()
	if err != nil {
		if errors.Is(err, ErrDraftMissing) {
			a.failToMain(ctx, textDealDataMissing, err)
		} else {
			a.failToMain(ctx, textInvalidDealID, err)
		}

		return
	}

	a.session.CreatedDeal = &deal
	a.nav.Show(value.ScreenDealCreated)
}

// DealLink возвращает ссылку на созданную сделку.
func (a *App) DealLink() (string, bool) {
	id, ok := a.session.CreatedDealID()
	if !ok {
		return "", false
	}

	return DealLink(a.cfg.LinkHost, a.cfg.BotUsername, id), true
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
