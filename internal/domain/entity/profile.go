package entity

import (
	"strings"

	"tg_dealshell/internal/domain/value"
)

// Profile — данные пользователя мини-приложения.
type Profile struct {
	UserID    *int64
	Username  string
	FirstName string

	Requisites map[value.Currency]string
	// Entitlement открывает кнопку оплаты в интерфейсе. Это не авторизация.
	Entitlement bool
}

func NewProfile(userID *int64, username, firstName string) Profile {
	return Profile{
		UserID:     userID,
		Username:   username,
		FirstName:  firstName,
		Requisites: make(map[value.Currency]string),
	}
}

func (p Profile) Requisite(c value.Currency) string {
	return p.Requisites[c]
}

func (p Profile) HasRequisite(c value.Currency) bool {
	return strings.TrimSpace(p.Requisites[c]) != ""
}

func (p Profile) HasAnyRequisite() bool {
	for _, c := range value.Currencies() {
		if p.HasRequisite(c) {
			return true
		}
	}

	return false
}

func (p *Profile) SetRequisite(c value.Currency, requisite string) {
	if p.Requisites == nil {
		p.Requisites = make(map[value.Currency]string)
	}

	p.Requisites[c] = requisite
}
