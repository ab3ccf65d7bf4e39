package miniapp

import (
	"context"
	"fmt"
	"log/slog"

	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/internal/domain/value"
)

func (a *App) showDealForBuyer(ctx context.Context, id value.DealID) {
	logger(ctx).Info("opening deal for buyer", slog.String("deal-id", id.String()))

	a.session.ViewingDealID = id
	a.nav.Show(value.ScreenViewDeal)
}

// CanPay — доступна ли кнопка оплаты. Флаг локальный и не является проверкой прав.
func (a *App) CanPay() bool {
	return a.profile.Entitlement
}

// PayDeal спрашивает подтверждение и отправляет pay_deal. Без флага
// покупателя ничего не отправляется, даже при прямом вызове.
func (a *App) PayDeal(ctx context.Context) error {
	if !a.CanPay() {
		a.bridge.ShowAlert(ctx, textAccessDenied)

		return ErrNotEntitled
	}

	dealID := a.session.ViewingDealID
	if dealID == 0 {
		a.bridge.ShowAlert(ctx, textDealIDNotFound)

		return fmt.Errorf("pay deal: %w", value.ErrInvalidDealID)
	}

	a.bridge.ShowPopup(ctx, Popup{
		Title:   textPayConfirmTitle,
		Message: fmt.Sprintf(textPayConfirmMsg, dealID),
		Buttons: []PopupButton{
			{ID: popupButtonConfirm, Type: PopupButtonDefault, Text: textPayButton},
			{Type: PopupButtonCancel},
		},
	}, func(ctx context.Context, buttonID string) {
		if buttonID != popupButtonConfirm {
			return
		}

		a.confirmPayment(ctx, dealID)
	})

	return nil
}

func (a *App) confirmPayment(ctx context.Context, dealID value.DealID) {
	if !a.CanPay() {
		logger(ctx).Warn("payment confirmation without entitlement", slog.String("deal-id", dealID.String()))

		return
	}

	if !a.send(ctx, entity.NewPayDealAction(dealID)) {
		return
	}

	a.bridge.ShowPopup(ctx, Popup{
		Title:   textPaySentTitle,
		Message: textPaySentMessage,
		Buttons: []PopupButton{{Type: PopupButtonOK}},
	}, func(ctx context.Context, _ string) {
		a.close(ctx)
	})

	logger(ctx).Info("payment request sent", slog.String("deal-id", dealID.String()))
}
