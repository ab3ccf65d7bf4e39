package miniapp

import (
	"fmt"
	"net/url"
	"strings"

	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/internal/domain/value"
)

// Параметры повторного запуска после создания сделки ботом.
const (
	ParamDealCreated = "deal_created"
	ParamCurrency    = "currency"
	ParamAmount      = "amount"
	ParamDescription = "description"
	ParamBot         = "bot"
)

// LaunchUser — пользователь из initData.
type LaunchUser struct {
	ID        *int64
	Username  string
	FirstName string
}

// LaunchParams — всё, что платформа передаёт при открытии приложения.
type LaunchParams struct {
	User       LaunchUser
	StartParam string
	Query      url.Values
}

// ParseLaunchQuery разбирает строку запроса страницы приложения.
func ParseLaunchQuery(raw string) (url.Values, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, fmt.Errorf("url.ParseQuery: %w", err)
	}

	return values, nil
}

// IsDealCreated сообщает, что приложение открыто с результатом создания сделки.
func (p LaunchParams) IsDealCreated() bool {
	return p.Query.Has(ParamDealCreated)
}

// BuyerDealID возвращает id сделки из start-параметра deal_<id>.
func (p LaunchParams) BuyerDealID() (value.DealID, bool) {
	return value.ParseDealStartParam(p.StartParam)
}

// BotUsername возвращает переопределение бота из запроса. Пустая строка
// без ошибки означает, что переопределения нет. Имя проверяется по тем же
// правилам, что и username, иначе ссылка на сделку будет битой.
func (p LaunchParams) BotUsername() (string, error) {
	raw := strings.TrimSpace(p.Query.Get(ParamBot))
	if raw == "" {
		return "", nil
	}

	bot, err := value.ParseUsername(raw)
	if err != nil {
		return "", fmt.Errorf("value.ParseUsername: %w", err)
	}

	return bot.String(), nil
}

// CreatedDeal восстанавливает сделку из параметров повторного запуска.
// Поля черновика должны прийти в запросе: локально они не сохраняются.
func (p LaunchParams) CreatedDeal() (entity.Deal, error) {
	id, err := value.ParseDealID(p.Query.Get(ParamDealCreated))
	if err != nil {
		return entity.Deal{}, fmt.Errorf("value.ParseDealID: %w", err)
	}

	currency, err := value.ParseCurrency(p.Query.Get(ParamCurrency))
	if err != nil {
		return entity.Deal{}, fmt.Errorf("%w: %w", ErrDraftMissing, err)
	}

	amount, err := value.ParseAmount(p.Query.Get(ParamAmount))
	if err != nil {
		return entity.Deal{}, fmt.Errorf("%w: %w", ErrDraftMissing, err)
	}

	description := strings.TrimSpace(p.Query.Get(ParamDescription))
	if description == "" {
		return entity.Deal{}, fmt.Errorf("%w: %w", ErrDraftMissing, value.ErrEmptyDescription)
	}

	return entity.Deal{
		ID:          id,
		Currency:    currency,
		Amount:      amount,
		Description: description,
		Status:      value.DealStatusWaitingPayment,
	}, nil
}

// DealLink строит ссылку, по которой покупатель откроет сделку.
func DealLink(host, bot string, id value.DealID) string {
	return fmt.Sprintf("https://%s/%s?startapp=%s", host, bot, id.StartParam())
}
