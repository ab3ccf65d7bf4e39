package entity

import "tg_dealshell/internal/domain/value"

// DealDraft — сделка в процессе заполнения, живёт только в памяти.
type DealDraft struct {
	Currency    value.Currency
	Description string
	Amount      value.Amount
}

// Deal — локальная копия сделки, созданной ботом. Только для отображения.
type Deal struct {
	ID          value.DealID
	Currency    value.Currency
	Amount      value.Amount
	Description string
	Status      value.DealStatus
}
