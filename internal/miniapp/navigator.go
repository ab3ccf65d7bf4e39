package miniapp

import "tg_dealshell/internal/domain/value"

//nolint:gochecknoglobals
var parents = map[value.Screen]value.Screen{
	value.ScreenRequisites:     value.ScreenMain,
	value.ScreenAddRequisite:   value.ScreenRequisites,
	value.ScreenEnterRequisite: value.ScreenAddRequisite,
	value.ScreenCurrency:       value.ScreenMain,
	value.ScreenDealDetails:    value.ScreenCurrency,
	value.ScreenMyDeals:        value.ScreenMain,
	value.ScreenViewDeal:       value.ScreenMain,
	value.ScreenDealCreated:    value.ScreenMain,
	value.ScreenInvite:         value.ScreenDealCreated,
}

// ParentOf возвращает логического родителя экрана. Для неизвестных экранов
// и для корня это главный экран.
func ParentOf(screen value.Screen) value.Screen {
	if parent, ok := parents[screen]; ok {
		return parent
	}

	return value.ScreenMain
}

// BackHandler — обработчик нажатия "назад", зарегистрированный в мосте.
// Сравнивается по указателю, поэтому его можно снять с регистрации.
type BackHandler struct {
	from value.Screen
	fn   func()
}

func (h *BackHandler) From() value.Screen {
	return h.from
}

func (h *BackHandler) Handle() {
	h.fn()
}

// Navigator держит единственный текущий экран и не более одного
// зарегистрированного обработчика кнопки "назад".
type Navigator struct {
	button  BackButton
	current value.Screen
	handler *BackHandler
	onShow  func(value.Screen)
}

func NewNavigator(button BackButton) *Navigator {
	return &Navigator{
		button:  button,
		current: value.ScreenMain,
	}
}

// OnShow задаёт хук, который вызывается после каждой смены экрана.
func (n *Navigator) OnShow(fn func(value.Screen)) {
	n.onShow = fn
}

func (n *Navigator) Current() value.Screen {
	return n.current
}

func (n *Navigator) Show(screen value.Screen) {
	n.current = screen

	if n.handler != nil {
		n.button.OffBackButtonClick(n.handler)
		n.handler = nil
	}

	if screen.IsRoot() {
		n.button.HideBackButton()
	} else {
		n.handler = &BackHandler{
			from: screen,
			fn:   func() { n.Show(ParentOf(screen)) },
		}

		n.button.ShowBackButton()
		n.button.OnBackButtonClick(n.handler)
	}

	if n.onShow != nil {
		n.onShow(screen)
	}
}

// Back переходит к родителю текущего экрана.
func (n *Navigator) Back() {
	n.Show(ParentOf(n.current))
}
