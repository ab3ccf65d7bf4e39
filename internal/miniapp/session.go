package miniapp

import (
	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/internal/domain/value"
)

// Form — значения полей ввода, которые показываются на экранах.
type Form struct {
	Requisite      string
	Description    string
	Amount         string
	InviteUsername string
}

// Session — состояние сделки на время жизни приложения. Проверок здесь нет,
// вызывающий код валидирует данные до записи.
type Session struct {
	RequisiteCurrency value.Currency
	Draft             *entity.DealDraft
	CreatedDeal       *entity.Deal
	ViewingDealID     value.DealID
	InviteError       string
	Form              Form
}

func (s *Session) StartDraft(currency value.Currency) {
	s.Draft = &entity.DealDraft{Currency: currency}
}

func (s *Session) ClearDraft() {
	s.Draft = nil
}

func (s *Session) ClearDealForm() {
	s.Form.Description = ""
	s.Form.Amount = ""
}

func (s *Session) CreatedDealID() (value.DealID, bool) {
	if s.CreatedDeal == nil {
		return 0, false
	}

	return s.CreatedDeal.ID, true
}
