package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const dealStartParamPrefix = "deal_"

// DealID — идентификатор сделки, назначенный ботом. Локально не генерируется.
type DealID int64

func (id DealID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseDealID принимает только положительное целое.
func ParseDealID(s string) (DealID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("deal id %q: %w", s, ErrInvalidDealID)
	}

	if n <= 0 {
		return 0, fmt.Errorf("deal id %d: %w", n, ErrInvalidDealID)
	}

	return DealID(n), nil
}

// StartParam возвращает start-параметр вида deal_<id>.
func (id DealID) StartParam() string {
	return dealStartParamPrefix + id.String()
}

// ParseDealStartParam разбирает start-параметр вида deal_<id>.
func ParseDealStartParam(s string) (DealID, bool) {
	rest, ok := strings.CutPrefix(s, dealStartParamPrefix)
	if !ok {
		return 0, false
	}

	id, err := ParseDealID(rest)
	if err != nil {
		return 0, false
	}

	return id, true
}

// Amount — сумма сделки.
type Amount float64

// ParseAmount принимает положительное конечное число.
func ParseAmount(s string) (Amount, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, ErrInvalidAmount)
	}

	a := Amount(f)
	if !a.Valid() {
		return 0, fmt.Errorf("amount %q: %w", s, ErrInvalidAmount)
	}

	return a, nil
}

func (a Amount) Valid() bool {
	f := float64(a)

	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

// DealStatus — статус сделки на стороне бота.
type DealStatus string

const (
	DealStatusWaitingPayment DealStatus = "waiting_payment"
	DealStatusPaid           DealStatus = "paid"
	DealStatusCompleted      DealStatus = "completed"
	DealStatusCancelled      DealStatus = "cancelled"
)

func (s DealStatus) String() string {
	return string(s)
}
