package miniapp

import (
	"github.com/samber/lo"

	"tg_dealshell/internal/domain/value"
)

type RequisiteItem struct {
	Currency value.Currency
	Icon     string
	Value    string
	IsSet    bool
}

type RequisiteForm struct {
	Currency    value.Currency
	Title       string
	Label       string
	Placeholder string
	Value       string
}

type DealForm struct {
	Currency    value.Currency
	Icon        string
	Description string
	Amount      string
}

type DealCard struct {
	ID          value.DealID
	Currency    value.Currency
	Icon        string
	Amount      value.Amount
	Description string
	StatusText  string
	StatusClass string
	Link        string
}

type InviteForm struct {
	DealID   value.DealID
	Username string
	Error    string
}

type BuyerCard struct {
	DealID value.DealID
	Notice string
	CanPay bool
}

// View — то, что нужно отрисовать для текущего экрана. Заполнены только
// поля, относящиеся к этому экрану.
type View struct {
	Screen     value.Screen
	BackButton bool

	Requisites    []RequisiteItem
	Currencies    []value.Currency
	RequisiteForm *RequisiteForm
	DealForm      *DealForm
	CreatedDeal   *DealCard
	Invite        *InviteForm
	BuyerDeal     *BuyerCard
	Notice        string
}

func (a *App) View() View {
	screen := a.nav.Current()

	v := View{
		Screen:     screen,
		BackButton: !screen.IsRoot(),
	}

	switch screen {
	case value.ScreenRequisites:
		v.Requisites = a.requisiteItems()
	case value.ScreenAddRequisite, value.ScreenCurrency:
		v.Currencies = value.Currencies()
	case value.ScreenEnterRequisite:
		v.RequisiteForm = a.requisiteForm()
	case value.ScreenDealDetails:
		v.DealForm = a.dealForm()
	case value.ScreenDealCreated:
		v.CreatedDeal = a.dealCard()
	case value.ScreenInvite:
		id, _ := a.session.CreatedDealID()
		v.Invite = &InviteForm{
			DealID:   id,
			Username: a.session.Form.InviteUsername,
			Error:    a.session.InviteError,
		}
	case value.ScreenMyDeals:
		v.Notice = textMyDealsNotice
	case value.ScreenViewDeal:
		v.BuyerDeal = &BuyerCard{
			DealID: a.session.ViewingDealID,
			Notice: textBuyerLoading,
			CanPay: a.CanPay(),
		}
	}

	return v
}

func (a *App) requisiteItems() []RequisiteItem {
	return lo.Map(value.Currencies(), func(c value.Currency, _ int) RequisiteItem {
		isSet := a.profile.HasRequisite(c)

		return RequisiteItem{
			Currency: c,
			Icon:     CurrencyIcon(c),
			Value:    lo.Ternary(isSet, a.profile.Requisite(c), textNotSet),
			IsSet:    isSet,
		}
	})
}

func (a *App) requisiteForm() *RequisiteForm {
	c := a.session.RequisiteCurrency
	meta := currencies[c]

	return &RequisiteForm{
		Currency:    c,
		Title:       meta.title,
		Label:       c.String() + " реквизиты:",
		Placeholder: meta.placeholder,
		Value:       a.session.Form.Requisite,
	}
}

func (a *App) dealForm() *DealForm {
	form := &DealForm{
		Description: a.session.Form.Description,
		Amount:      a.session.Form.Amount,
	}

	if a.session.Draft != nil {
		form.Currency = a.session.Draft.Currency
		form.Icon = CurrencyIcon(a.session.Draft.Currency)
	}

	return form
}

func (a *App) dealCard() *DealCard {
	deal := a.session.CreatedDeal
	if deal == nil {
		return nil
	}

	link, _ := a.DealLink()

	return &DealCard{
		ID:          deal.ID,
		Currency:    deal.Currency,
		Icon:        CurrencyIcon(deal.Currency),
		Amount:      deal.Amount,
		Description: deal.Description,
		StatusText:  StatusText(deal.Status),
		StatusClass: StatusClass(deal.Status),
		Link:        link,
	}
}
