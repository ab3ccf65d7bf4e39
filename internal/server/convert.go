package server

import (
	"github.com/samber/lo"

	"tg_dealshell/internal/domain/value"
	"tg_dealshell/internal/miniapp"
	"tg_dealshell/pkg/rest"
)

func newRESTSession(id string, h *hostedApp, effects []rest.Effect) rest.Session {
	return rest.Session{
		SessionID: id,
		Closed:    h.app.Closed(),
		View:      newRESTView(h.app.View()),
		Effects:   effects,
	}
}

func newRESTView(v miniapp.View) rest.View {
	view := rest.View{
		Screen:     v.Screen.String(),
		BackButton: v.BackButton,
		Notice:     v.Notice,
	}

	view.Requisites = lo.Map(v.Requisites, func(item miniapp.RequisiteItem, _ int) rest.RequisiteItem {
		return rest.RequisiteItem{
			Currency: item.Currency.String(),
			Icon:     item.Icon,
			Value:    item.Value,
			IsSet:    item.IsSet,
		}
	})

	view.Currencies = lo.Map(v.Currencies, func(c value.Currency, _ int) rest.Currency {
		return rest.Currency{Code: c.String(), Icon: miniapp.CurrencyIcon(c)}
	})

	if f := v.RequisiteForm; f != nil {
		view.RequisiteForm = &rest.RequisiteForm{
			Currency:    f.Currency.String(),
			Title:       f.Title,
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Value:       f.Value,
		}
	}

	if f := v.DealForm; f != nil {
		view.DealForm = &rest.DealForm{
			Currency:    f.Currency.String(),
			Icon:        f.Icon,
			Description: f.Description,
			Amount:      f.Amount,
		}
	}

	if d := v.CreatedDeal; d != nil {
		view.CreatedDeal = &rest.DealCard{
			ID:          int64(d.ID),
			Currency:    d.Currency.String(),
			Icon:        d.Icon,
			Amount:      float64(d.Amount),
			Description: d.Description,
			StatusText:  d.StatusText,
			StatusClass: d.StatusClass,
			Link:        d.Link,
		}
	}

	if i := v.Invite; i != nil {
		view.Invite = &rest.InviteForm{
			DealID:   int64(i.DealID),
			Username: i.Username,
			Error:    i.Error,
		}
	}

	if b := v.BuyerDeal; b != nil {
		view.BuyerDeal = &rest.BuyerCard{
			DealID: int64(b.DealID),
			Notice: b.Notice,
			CanPay: b.CanPay,
		}
	}

	return view
}

func newRESTPopup(id string, p miniapp.Popup) *rest.Popup {
	return &rest.Popup{
		ID:      id,
		Title:   p.Title,
		Message: p.Message,
		Buttons: lo.Map(p.Buttons, func(b miniapp.PopupButton, _ int) rest.PopupButton {
			return rest.PopupButton{
				ID:   b.ID,
				Type: string(b.Type),
				Text: b.Text,
			}
		}),
	}
}
