package value

// Screen — идентификатор экрана мини-приложения.
type Screen string

const (
	ScreenMain           Screen = "main"
	ScreenRequisites     Screen = "requisites"
	ScreenAddRequisite   Screen = "add_requisite"
	ScreenEnterRequisite Screen = "enter_requisite"
	ScreenCurrency       Screen = "currency"
	ScreenDealDetails    Screen = "deal_details"
	ScreenMyDeals        Screen = "my_deals"
	ScreenViewDeal       Screen = "view_deal"
	ScreenDealCreated    Screen = "deal_created"
	ScreenInvite         Screen = "invite"
)

func (s Screen) String() string {
	return string(s)
}

func (s Screen) IsRoot() bool {
	return s == ScreenMain
}
