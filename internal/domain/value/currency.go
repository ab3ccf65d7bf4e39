package value

import (
	"fmt"
	"strings"
)

// Currency — код валюты расчёта по сделке.
type Currency string

const (
	CurrencyTON   Currency = "TON"
	CurrencyUSDT  Currency = "USDT"
	CurrencyRUB   Currency = "RUB"
	CurrencySTARS Currency = "STARS"
)

// Currencies возвращает закрытый набор валют в порядке отображения.
func Currencies() []Currency {
	return []Currency{CurrencyTON, CurrencyUSDT, CurrencyRUB, CurrencySTARS}
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) Valid() bool {
	switch c {
	case CurrencyTON, CurrencyUSDT, CurrencyRUB, CurrencySTARS:
		return true
	}

	return false
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.TrimSpace(s))
	if !c.Valid() {
		return "", fmt.Errorf("currency %q: %w", s, ErrUnknownCurrency)
	}

	return c, nil
}
