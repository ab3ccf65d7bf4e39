package server

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/xid"

	"tg_dealshell/internal/miniapp"
	"tg_dealshell/pkg/rest"
)

var errClipboardUnavailable = errors.New("clipboard is not available on the client")

const (
	copyMethodClipboard = "clipboard"
	copyMethodSelection = "selection"
)

type pendingPopup struct {
	id       string
	popup    miniapp.Popup
	callback miniapp.PopupCallback
}

// recordingBridge реализует miniapp.Bridge на стороне сервера: вызовы
// платформы копятся как эффекты и уходят клиенту в ответе на запрос.
type recordingBridge struct {
	clipboard bool

	effects     []rest.Effect
	backVisible bool
	handlers    []*miniapp.BackHandler
	popup       *pendingPopup
	closed      bool
}

func newRecordingBridge(clipboard bool) *recordingBridge {
	return &recordingBridge{clipboard: clipboard}
}

func (b *recordingBridge) SendData(_ context.Context, data string) error {
	if b.closed {
		return errSessionClosed
	}

	b.effects = append(b.effects, rest.Effect{Type: rest.EffectSendData, Data: data})

	return nil
}

func (b *recordingBridge) Close(context.Context) {
	b.closed = true
	b.effects = append(b.effects, rest.Effect{Type: rest.EffectClose})
}

func (b *recordingBridge) ShowAlert(_ context.Context, message string) {
	b.effects = append(b.effects, rest.Effect{Type: rest.EffectAlert, Message: message})
}

// ShowPopup заменяет ожидающий попап: платформа показывает только один.
func (b *recordingBridge) ShowPopup(_ context.Context, popup miniapp.Popup, callback miniapp.PopupCallback) {
	p := &pendingPopup{
		id:       xid.New().String(),
		popup:    popup,
		callback: callback,
	}

	b.popup = p
	b.effects = append(b.effects, rest.Effect{Type: rest.EffectPopup, Popup: newRESTPopup(p.id, popup)})
}

func (b *recordingBridge) WriteClipboard(_ context.Context, text string) error {
	if !b.clipboard {
		return errClipboardUnavailable
	}

	b.effects = append(b.effects, rest.Effect{Type: rest.EffectCopyText, Text: text, Method: copyMethodClipboard})

	return nil
}

func (b *recordingBridge) CopySelection(_ context.Context, text string) error {
	b.effects = append(b.effects, rest.Effect{Type: rest.EffectCopyText, Text: text, Method: copyMethodSelection})

	return nil
}

func (b *recordingBridge) ShowBackButton() {
	b.backVisible = true
}

func (b *recordingBridge) HideBackButton() {
	b.backVisible = false
}

func (b *recordingBridge) OnBackButtonClick(h *miniapp.BackHandler) {
	b.handlers = append(b.handlers, h)
}

func (b *recordingBridge) OffBackButtonClick(h *miniapp.BackHandler) {
	b.handlers = slices.DeleteFunc(b.handlers, func(x *miniapp.BackHandler) bool { return x == h })
}

// pressBack вызывает все зарегистрированные обработчики. Обработчик
// перерегистрирует следующий, поэтому итерируемся по копии.
func (b *recordingBridge) pressBack() bool {
	if !b.backVisible || len(b.handlers) == 0 {
		return false
	}

	for _, h := range slices.Clone(b.handlers) {
		h.Handle()
	}

	return true
}

// resolvePopup передаёт ответ клиента ожидающему попапу. Закрытие без
// выбора снимает попап, не вызывая callback.
func (b *recordingBridge) resolvePopup(ctx context.Context, popupID, buttonID string) error {
	p := b.popup
	if p == nil || p.id != popupID {
		return fmt.Errorf("popup %q: %w", popupID, errUnknownPopup)
	}

	b.popup = nil

	if p.callback != nil && p.popup.Answered(buttonID) {
		p.callback(ctx, buttonID)
	}

	return nil
}

// drain отдаёт накопленные эффекты и очищает очередь.
func (b *recordingBridge) drain() []rest.Effect {
	effects := b.effects
	b.effects = nil

	if effects == nil {
		return []rest.Effect{}
	}

	return effects
}
