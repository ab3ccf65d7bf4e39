package server

import (
	"context"
	"fmt"
	"log/slog"

	"tg_dealshell/internal/domain/value"
	"tg_dealshell/pkg/logx"
	"tg_dealshell/pkg/rest"
)

// dispatch передаёт событие клиента контроллеру текущего экрана. Ошибки
// ввода пользователя возвращаются эффектами (alert, ошибка под полем), а
// не ошибкой: здесь ошибка означает некорректное событие.
func dispatch(ctx context.Context, h *hostedApp, e rest.Event) error { //nolint:cyclop
	app := h.app

	switch e.Type {
	case rest.EventOpenRequisites:
		app.OpenRequisites(ctx)
	case rest.EventOpenAddRequisite:
		app.OpenAddRequisite(ctx)
	case rest.EventSelectRequisiteCurrency:
		c, err := value.ParseCurrency(e.Currency)
		if err != nil {
			return fmt.Errorf("value.ParseCurrency: %w", err)
		}

		app.SelectRequisiteCurrency(ctx, c)
	case rest.EventSaveRequisite:
		app.SaveRequisite(ctx, e.Requisite)
	case rest.EventStartDeal:
		app.StartDeal(ctx)
	case rest.EventSelectCurrency:
		c, err := value.ParseCurrency(e.Currency)
		if err != nil {
			return fmt.Errorf("value.ParseCurrency: %w", err)
		}

		app.SelectCurrency(ctx, c)
	case rest.EventCreateDeal:
		app.CreateDeal(ctx, e.Description, e.Amount)
	case rest.EventCopyLink:
		app.CopyDealLink(ctx)
	case rest.EventOpenInvite:
		app.OpenInvite(ctx)
	case rest.EventSendInvitation:
		app.SendInvitation(ctx, e.Username)
	case rest.EventOpenMyDeals:
		app.OpenMyDeals(ctx)
	case rest.EventPayDeal:
		if err := app.PayDeal(ctx); err != nil {
			logger(ctx).Info("payment refused", logx.Error(err))
		}
	case rest.EventPopupResult:
		if err := h.bridge.resolvePopup(ctx, e.PopupID, e.ButtonID); err != nil {
			return fmt.Errorf("bridge.resolvePopup: %w", err)
		}
	case rest.EventBack:
		if !h.bridge.pressBack() {
			return errNoBackButton
		}
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}

	logger(ctx).Debug("event handled",
		slog.String("event", string(e.Type)),
		slog.String("screen", app.Navigator().Current().String()),
	)

	return nil
}
