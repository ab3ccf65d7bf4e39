package miniapp

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/internal/domain/value"
	"tg_dealshell/pkg/logx"
)

// StartDeal открывает выбор валюты. Без единого реквизита предлагает
// сначала их добавить.
func (a *App) StartDeal(ctx context.Context) {
	if a.profile.HasAnyRequisite() {
		a.nav.Show(value.ScreenCurrency)

		return
	}

	a.bridge.ShowPopup(ctx, Popup{
		Title:   textRequisitesNeeded,
		Message: textRequisitesNeededMs,
		Buttons: []PopupButton{
			{ID: popupButtonAdd, Type: PopupButtonDefault, Text: textAddRequisites},
			{Type: PopupButtonCancel},
		},
	}, func(_ context.Context, buttonID string) {
		if buttonID == popupButtonAdd {
			a.nav.Show(value.ScreenRequisites)
		}
	})
}

func (a *App) SelectCurrency(_ context.Context, currency value.Currency) {
	a.session.StartDraft(currency)
	a.nav.Show(value.ScreenDealDetails)
}

// CreateDeal проверяет описание и сумму и отправляет create_deal. После
// отправки сессия завершается: бот пришлёт кнопку повторного запуска с
// параметром deal_created.
func (a *App) CreateDeal(ctx context.Context, description, amount string) {
	a.session.Form.Description = description
	a.session.Form.Amount = amount

	if a.session.Draft == nil {
		a.bridge.ShowAlert(ctx, textChooseCurrency)
		a.nav.Show(value.ScreenCurrency)

		return
	}

	desc := strings.TrimSpace(description)
	if desc == "" {
		a.bridge.ShowAlert(ctx, textEnterDescription)

		return
	}

	parsed, err := value.ParseAmount(amount)
	if err != nil {
		logger(ctx).Info("deal amount rejected", logx.Error(err))
		a.bridge.ShowAlert(ctx, textEnterAmount)

		return
	}

	a.session.Draft.Description = desc
	a.session.Draft.Amount = parsed

	if !a.send(ctx, entity.NewCreateDealAction(*a.session.Draft)) {
		return
	}

	a.session.ClearDealForm()
	a.session.ClearDraft()
	a.close(ctx)
}

// CopyDealLink копирует ссылку на сделку. Если запись в буфер обмена
// отклонена, копирует через выделение.
func (a *App) CopyDealLink(ctx context.Context) {
	link, ok := a.DealLink()
	if !ok {
		a.bridge.ShowAlert(ctx, textDealIDNotFound)

		return
	}

	message := textCopiedMessage

	if err := a.bridge.WriteClipboard(ctx, link); err != nil {
		logger(ctx).Warn("clipboard write rejected, falling back to selection", logx.Error(err))

		if err = a.bridge.CopySelection(ctx, link); err != nil {
			logger(ctx).Error("bridge.CopySelection", logx.Error(err))
			a.bridge.ShowAlert(ctx, textCopyFailed)

			return
		}

		message = textCopiedFallback
	}

	a.bridge.ShowPopup(ctx, Popup{
		Title:   textCopiedTitle,
		Message: message,
		Buttons: []PopupButton{{Type: PopupButtonOK}},
	}, nil)
}

func (a *App) OpenInvite(context.Context) {
	a.session.InviteError = ""
	a.session.Form.InviteUsername = ""
	a.nav.Show(value.ScreenInvite)
}

// SendInvitation проверяет username покупателя и отправляет invite_to_deal.
// Ошибки показываются под полем ввода.
func (a *App) SendInvitation(ctx context.Context, raw string) {
	a.session.Form.InviteUsername = raw

	username, err := value.ParseUsername(raw)
	if err != nil {
		if errors.Is(err, value.ErrUsernameEmpty) {
			a.session.InviteError = textInviteEmpty
		} else {
			a.session.InviteError = textInviteInvalid
		}

		logger(ctx).Info("invitee rejected", logx.Error(err))

		return
	}

	dealID, ok := a.session.CreatedDealID()
	if !ok {
		a.session.InviteError = textDealIDNotFound

		return
	}

	a.session.InviteError = ""

	if !a.send(ctx, entity.NewInviteToDealAction(dealID, username)) {
		return
	}

	logger(ctx).Info("invitation sent", slog.String("deal-id", dealID.String()))
	a.close(ctx)
}

func (a *App) OpenMyDeals(context.Context) {
	a.nav.Show(value.ScreenMyDeals)
}
