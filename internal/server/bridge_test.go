package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tg_dealshell/internal/miniapp"
	"tg_dealshell/pkg/rest"
)

func TestRecordingBridgePopup(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	b := newRecordingBridge(true)

	var pressed []string

	popup := miniapp.Popup{Message: "?", Buttons: []miniapp.PopupButton{
		{ID: "yes", Type: miniapp.PopupButtonDefault},
		{Type: miniapp.PopupButtonCancel},
	}}
	callback := func(_ context.Context, id string) { pressed = append(pressed, id) }

	b.ShowPopup(ctx, popup, callback)
	first := b.drain()[0].Popup.ID

	b.ShowPopup(ctx, popup, callback)
	second := b.drain()[0].Popup.ID

	rq.ErrorIs(b.resolvePopup(ctx, first, "yes"), errUnknownPopup)
	rq.NoError(b.resolvePopup(ctx, second, "yes"))
	rq.Equal([]string{"yes"}, pressed)

	// ответ принимается один раз
	rq.ErrorIs(b.resolvePopup(ctx, second, "yes"), errUnknownPopup)

	b.ShowPopup(ctx, popup, callback)
	rq.NoError(b.resolvePopup(ctx, b.drain()[0].Popup.ID, ""))
	rq.Equal([]string{"yes"}, pressed)
}

func TestRecordingBridgeClipboard(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	b := newRecordingBridge(false)
	rq.ErrorIs(b.WriteClipboard(ctx, "link"), errClipboardUnavailable)
	rq.NoError(b.CopySelection(ctx, "link"))
	rq.Equal([]rest.Effect{{Type: rest.EffectCopyText, Text: "link", Method: copyMethodSelection}}, b.drain())
	rq.Equal([]rest.Effect{}, b.drain())
}

func TestRecordingBridgeBackButton(t *testing.T) {
	rq := require.New(t)

	b := newRecordingBridge(true)
	nav := miniapp.NewNavigator(b)

	rq.False(b.pressBack())

	nav.Show("invite")
	nav.Show("invite")
	rq.Len(b.handlers, 1)

	rq.True(b.pressBack())
	rq.Equal("deal_created", nav.Current().String())
	rq.True(b.pressBack())
	rq.Equal("main", nav.Current().String())
	rq.False(b.backVisible)
	rq.False(b.pressBack())
}
