package miniapp

import (
	"context"
	"slices"
)

type fakeBridge struct {
	sent    []string
	sendErr error

	closed int
	alerts []string

	popups    []Popup
	callbacks []PopupCallback

	backVisible bool
	handlers    []*BackHandler

	clipboardErr error
	selectionErr error
	clipboard    []string
	selection    []string
}

func (b *fakeBridge) SendData(_ context.Context, data string) error {
	if b.sendErr != nil {
		return b.sendErr
	}

	b.sent = append(b.sent, data)

	return nil
}

func (b *fakeBridge) Close(context.Context) {
	b.closed++
}

func (b *fakeBridge) ShowAlert(_ context.Context, message string) {
	b.alerts = append(b.alerts, message)
}

func (b *fakeBridge) ShowPopup(_ context.Context, popup Popup, callback PopupCallback) {
	b.popups = append(b.popups, popup)
	b.callbacks = append(b.callbacks, callback)
}

func (b *fakeBridge) WriteClipboard(_ context.Context, text string) error {
	if b.clipboardErr != nil {
		return b.clipboardErr
	}

	b.clipboard = append(b.clipboard, text)

	return nil
}

func (b *fakeBridge) CopySelection(_ context.Context, text string) error {
	if b.selectionErr != nil {
		return b.selectionErr
	}

	b.selection = append(b.selection, text)

	return nil
}

func (b *fakeBridge) ShowBackButton() { b.backVisible = true }
func (b *fakeBridge) HideBackButton() { b.backVisible = false }

func (b *fakeBridge) OnBackButtonClick(h *BackHandler) {
	b.handlers = append(b.handlers, h)
}

func (b *fakeBridge) OffBackButtonClick(h *BackHandler) {
	b.handlers = slices.DeleteFunc(b.handlers, func(x *BackHandler) bool { return x == h })
}

// pressBack вызывает все зарегистрированные обработчики, как это делает платформа.
func (b *fakeBridge) pressBack() {
	for _, h := range slices.Clone(b.handlers) {
		h.Handle()
	}
}

// answerPopup нажимает кнопку в последнем показанном попапе.
func (b *fakeBridge) answerPopup(ctx context.Context, buttonID string) {
	popup := b.popups[len(b.popups)-1]
	cb := b.callbacks[len(b.callbacks)-1]

	if cb != nil && popup.Answered(buttonID) {
		cb(ctx, buttonID)
	}
}
