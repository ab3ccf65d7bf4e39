// Модели HTTP API хоста мини-приложения.
package rest

type EventType string

const (
	EventOpenRequisites          EventType = "open_requisites"
	EventOpenAddRequisite        EventType = "open_add_requisite"
	EventSelectRequisiteCurrency EventType = "select_requisite_currency"
	EventSaveRequisite           EventType = "save_requisite"
	EventStartDeal               EventType = "start_deal"
	EventSelectCurrency          EventType = "select_currency"
	EventCreateDeal              EventType = "create_deal"
	EventCopyLink                EventType = "copy_link"
	EventOpenInvite              EventType = "open_invite"
	EventSendInvitation          EventType = "send_invitation"
	EventOpenMyDeals             EventType = "open_my_deals"
	EventPayDeal                 EventType = "pay_deal"
	EventPopupResult             EventType = "popup_result"
	EventBack                    EventType = "back"
)

// CreateSessionRequest Запуск мини-приложения
type CreateSessionRequest struct {
	// InitData Строка Telegram.WebApp.initData как есть
	InitData string `json:"initData"`

	// Query Строка запроса страницы приложения (deal_created, currency, amount, description, bot)
	Query string `json:"query"`

	// ClipboardAvailable Доступен ли клиенту navigator.clipboard. По умолчанию true
	ClipboardAvailable *bool `json:"clipboardAvailable,omitempty"`
}

// Event Действие пользователя на текущем экране
type Event struct {
	Type EventType `json:"type" validate:"required,oneof=open_requisites open_add_requisite select_requisite_currency save_requisite start_deal select_currency create_deal copy_link open_invite send_invitation open_my_deals pay_deal popup_result back"` //nolint:lll

	Currency    string `json:"currency,omitempty"`
	Requisite   string `json:"requisite,omitempty"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Username    string `json:"username,omitempty"`

	// PopupID и ButtonID заполняются для popup_result. Пустой ButtonID — попап закрыт без выбора
	PopupID  string `json:"popupId,omitempty" validate:"required_if=Type popup_result"`
	ButtonID string `json:"buttonId,omitempty"`
}

// HeaderSessionToken Заголовок с токеном сессии, обязателен для всех запросов к /v1/sessions/{id}
const HeaderSessionToken = "X-Session-Token"

// Session Состояние запущенного приложения после обработки запроса
type Session struct {
	SessionID string `json:"sessionId"`

	// SessionToken Токен доступа к сессии. Возвращается только при запуске
	SessionToken string `json:"sessionToken,omitempty"`

	Closed  bool     `json:"closed"`
	View    View     `json:"view"`
	Effects []Effect `json:"effects"`
}

type View struct {
	Screen     string `json:"screen"`
	BackButton bool   `json:"backButton"`

	Requisites    []RequisiteItem `json:"requisites,omitempty"`
	Currencies    []Currency      `json:"currencies,omitempty"`
	RequisiteForm *RequisiteForm  `json:"requisiteForm,omitempty"`
	DealForm      *DealForm       `json:"dealForm,omitempty"`
	CreatedDeal   *DealCard       `json:"createdDeal,omitempty"`
	Invite        *InviteForm     `json:"invite,omitempty"`
	BuyerDeal     *BuyerCard      `json:"buyerDeal,omitempty"`
	Notice        string          `json:"notice,omitempty"`
}

type Currency struct {
	Code string `json:"code"`
	Icon string `json:"icon"`
}

type RequisiteItem struct {
	Currency string `json:"currency"`
	Icon     string `json:"icon"`
	Value    string `json:"value"`
	IsSet    bool   `json:"isSet"`
}

type RequisiteForm struct {
	Currency    string `json:"currency"`
	Title       string `json:"title"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
}

type DealForm struct {
	Currency    string `json:"currency"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type DealCard struct {
	ID          int64   `json:"id"`
	Currency    string  `json:"currency"`
	Icon        string  `json:"icon"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	StatusText  string  `json:"statusText"`
	StatusClass string  `json:"statusClass"`
	Link        string  `json:"link"`
}

type InviteForm struct {
	DealID   int64  `json:"dealId"`
	Username string `json:"username"`
	Error    string `json:"error,omitempty"`
}

type BuyerCard struct {
	DealID int64  `json:"dealId"`
	Notice string `json:"notice"`
	CanPay bool   `json:"canPay"`
}

type EffectType string

const (
	EffectAlert    EffectType = "alert"
	EffectPopup    EffectType = "popup"
	EffectSendData EffectType = "send_data"
	EffectCopyText EffectType = "copy_text"
	EffectClose    EffectType = "close"
)

// Effect Команда, которую клиент выполняет через Telegram.WebApp в порядке получения
type Effect struct {
	Type EffectType `json:"type"`

	// Message Текст для alert
	Message string `json:"message,omitempty"`

	// Popup Параметры для showPopup; ответ отправляется событием popup_result
	Popup *Popup `json:"popup,omitempty"`

	// Data Строка для sendData
	Data string `json:"data,omitempty"`

	// Text и Method для copy_text. Method: clipboard или selection
	Text   string `json:"text,omitempty"`
	Method string `json:"method,omitempty"`
}

type Popup struct {
	ID      string        `json:"id"`
	Title   string        `json:"title,omitempty"`
	Message string        `json:"message"`
	Buttons []PopupButton `json:"buttons"`
}

type PopupButton struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
