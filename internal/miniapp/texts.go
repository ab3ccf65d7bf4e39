package miniapp

import "tg_dealshell/internal/domain/value"

// Тексты интерфейса.
const (
	textEnterRequisite     = "Пожалуйста, введите реквизиты"
	textChooseRequisite    = "Сначала выберите валюту реквизитов"
	textRequisitesNeeded   = "⚠️ Необходимы реквизиты"
	textRequisitesNeededMs = "Для создания сделки сначала укажите ваши реквизиты для получения оплаты."
	textAddRequisites      = "Добавить реквизиты"
	textNotSet             = "Не указано"

	textChooseCurrency   = "Сначала выберите валюту сделки"
	textEnterDescription = "Пожалуйста, введите описание сделки"
	textEnterAmount      = "Пожалуйста, введите корректную сумму"

	textInvalidDealID   = "Ошибка: некорректный ID сделки"
	textDealIDNotFound  = "Ошибка: ID сделки не найден"
	textDealDataMissing = "Ошибка: данные сделки не найдены"
	textSendFailed      = "Ошибка отправки данных. Попробуйте еще раз."

	textCopiedTitle     = "✅ Скопировано!"
	textCopiedMessage   = "Ссылка скопирована в буфер обмена. Отправьте её покупателю."
	textCopiedFallback  = "Ссылка скопирована в буфер обмена."
	textCopyFailed      = "Ошибка копирования. Попробуйте выделить и скопировать вручную."
	textInviteEmpty     = "Введите @username покупателя"
	textInviteInvalid   = "Некорректный username. Используйте только буквы, цифры и _"
	textMyDealsNotice   = "Используйте команду /stats в боте для просмотра ваших сделок"
	textBuyerLoading    = "Данные о сделке загружаются с сервера"
	textAccessDenied    = "Error 404 - Access denied"
	textPayConfirmTitle = "💳 Подтверждение оплаты"
	textPayConfirmMsg   = "Подтвердить оплату сделки #%d?"
	textPayButton       = "Оплатить"
	textPaySentTitle    = "✅ Отправлено"
	textPaySentMessage  = "Запрос на оплату отправлен боту. Вы получите подтверждение в чате."
)

const (
	popupButtonAdd     = "add"
	popupButtonConfirm = "confirm"
)

type currencyMeta struct {
	icon        string
	title       string
	placeholder string
}

//nolint:gochecknoglobals
var currencies = map[value.Currency]currencyMeta{
	value.CurrencyTON:   {icon: "💎", title: "💎 TON адрес", placeholder: "UQAbc...xyz"},
	value.CurrencyUSDT:  {icon: "💵", title: "💵 USDT адрес (TRC20)", placeholder: "TRXabc...xyz"},
	value.CurrencyRUB:   {icon: "₽", title: "₽ Номер банковской карты", placeholder: "1234 5678 9012 3456"},
	value.CurrencySTARS: {icon: "⭐", title: "⭐ STARS реквизиты", placeholder: "Введите реквизиты"},
}

func CurrencyIcon(c value.Currency) string {
	return currencies[c].icon
}

type statusMeta struct {
	text  string
	class string
}

//nolint:gochecknoglobals
var statuses = map[value.DealStatus]statusMeta{
	value.DealStatusWaitingPayment: {text: "⏳ Ожидание оплаты", class: "status-waiting"},
	value.DealStatusPaid:           {text: "💰 Оплачено", class: "status-paid"},
	value.DealStatusCompleted:      {text: "✅ Завершено", class: "status-completed"},
	value.DealStatusCancelled:      {text: "❌ Отменено", class: "status-error"},
}

// StatusText возвращает подпись статуса; неизвестный статус показывается как есть.
func StatusText(s value.DealStatus) string {
	if m, ok := statuses[s]; ok {
		return m.text
	}

	return s.String()
}

func StatusClass(s value.DealStatus) string {
	if m, ok := statuses[s]; ok {
		return m.class
	}

	return "status-waiting"
}
