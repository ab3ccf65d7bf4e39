package entity

import "tg_dealshell/internal/domain/value"

type ActionName string

const (
	ActionSaveRequisite ActionName = "save_requisite"
	ActionCreateDeal    ActionName = "create_deal"
	ActionInviteToDeal  ActionName = "invite_to_deal"
	ActionPayDeal       ActionName = "pay_deal"
)

func (n ActionName) String() string {
	return string(n)
}

// Action — намерение, которое отправляется боту одним JSON-объектом.
type Action interface {
	ActionName() ActionName
}

type SaveRequisiteAction struct {
	Action    ActionName     `json:"action"`
	Currency  value.Currency `json:"currency"`
	Requisite string         `json:"requisite"`
}

func NewSaveRequisiteAction(currency value.Currency, requisite string) SaveRequisiteAction {
	return SaveRequisiteAction{Action: ActionSaveRequisite, Currency: currency, Requisite: requisite}
}

func (SaveRequisiteAction) ActionName() ActionName { return ActionSaveRequisite }

type CreateDealAction struct {
	Action      ActionName     `json:"action"`
	Currency    value.Currency `json:"currency"`
	Amount      value.Amount   `json:"amount"`
	Description string         `json:"description"`
}

func NewCreateDealAction(draft DealDraft) CreateDealAction {
	return CreateDealAction{
		Action:      ActionCreateDeal,
		Currency:    draft.Currency,
		Amount:      draft.Amount,
		Description: draft.Description,
	}
}

func (CreateDealAction) ActionName() ActionName { return ActionCreateDeal }

type InviteToDealAction struct {
	Action          ActionName     `json:"action"`
	DealID          value.DealID   `json:"deal_id"`
	InviteeUsername value.Username `json:"invitee_username"`
}

func NewInviteToDealAction(dealID value.DealID, invitee value.Username) InviteToDealAction {
	return InviteToDealAction{Action: ActionInviteToDeal, DealID: dealID, InviteeUsername: invitee}
}

func (InviteToDealAction) ActionName() ActionName { return ActionInviteToDeal }

type PayDealAction struct {
	Action ActionName   `json:"action"`
	DealID value.DealID `json:"deal_id"`
}

func NewPayDealAction(dealID value.DealID) PayDealAction {
	return PayDealAction{Action: ActionPayDeal, DealID: dealID}
}

func (PayDealAction) ActionName() ActionName { return ActionPayDeal }
