package miniapp

import (
	"context"
	"log/slog"
	"strings"

	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/internal/domain/value"
	"tg_dealshell/pkg/logx"
)

func (a *App) OpenRequisites(context.Context) {
	a.nav.Show(value.ScreenRequisites)
}

func (a *App) OpenAddRequisite(context.Context) {
	a.nav.Show(value.ScreenAddRequisite)
}

// SelectRequisiteCurrency открывает ввод реквизита, подставляя сохранённое значение.
func (a *App) SelectRequisiteCurrency(_ context.Context, currency value.Currency) {
	a.session.RequisiteCurrency = currency
	a.session.Form.Requisite = a.profile.Requisite(currency)
	a.nav.Show(value.ScreenEnterRequisite)
}

// SaveRequisite сохраняет реквизит в профиль и кэш и сообщает о нём боту.
// Пустое значение отклоняется без изменения состояния.
func (a *App) SaveRequisite(ctx context.Context, raw string) {
	currency := a.session.RequisiteCurrency
	if currency == "" {
		a.bridge.ShowAlert(ctx, textChooseRequisite)

		return
	}

	requisite := strings.TrimSpace(raw)
	if requisite == "" {
		logger(ctx).Info("requisite rejected",
			slog.String("currency", currency.String()),
			logx.Error(value.ErrEmptyRequisite),
		)
		a.bridge.ShowAlert(ctx, textEnterRequisite)

		return
	}

	a.session.Form.Requisite = requisite
	a.profile.SetRequisite(currency, requisite)
	a.saveProfile(ctx)

	if !a.send(ctx, entity.NewSaveRequisiteAction(currency, requisite)) {
		return
	}

	a.nav.Show(value.ScreenRequisites)
}
