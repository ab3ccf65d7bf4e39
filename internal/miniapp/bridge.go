package miniapp

import "context"

// Bridge — то, что мини-приложению даёт платформа (Telegram WebApp).
type Bridge interface {
	BackButton

	// SendData передаёт данные боту. После успешной отправки платформа
	// сама закрывает окно приложения.
	SendData(ctx context.Context, data string) error
	Close(ctx context.Context)
	ShowAlert(ctx context.Context, message string)
	// ShowPopup вызывает callback с id нажатой кнопки. Отмена и закрытие
	// попапа не вызывают callback вовсе (см. Popup.Answered).
	ShowPopup(ctx context.Context, popup Popup, callback PopupCallback)
	WriteClipboard(ctx context.Context, text string) error
	// CopySelection — синхронное копирование через выделение поля ввода.
	CopySelection(ctx context.Context, text string) error
}

// BackButton — системная кнопка "назад".
type BackButton interface {
	ShowBackButton()
	HideBackButton()
	OnBackButtonClick(h *BackHandler)
	OffBackButtonClick(h *BackHandler)
}

// PopupCallback получает контекст события, в котором пользователь нажал кнопку.
type PopupCallback func(ctx context.Context, buttonID string)

type PopupButtonType string

const (
	PopupButtonDefault PopupButtonType = "default"
	PopupButtonOK      PopupButtonType = "ok"
	PopupButtonCancel  PopupButtonType = "cancel"
)

type PopupButton struct {
	ID   string
	Type PopupButtonType
	Text string
}

type Popup struct {
	Title   string
	Message string
	Buttons []PopupButton
}

// Answered сообщает, является ли нажатие кнопки buttonID ответом. Кнопка
// типа cancel и неизвестный id считаются закрытием попапа.
func (p Popup) Answered(buttonID string) bool {
	for _, b := range p.Buttons {
		if b.ID == buttonID {
			return b.Type != PopupButtonCancel
		}
	}

	return false
}
