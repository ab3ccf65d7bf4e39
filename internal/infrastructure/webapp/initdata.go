package webapp

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"tg_dealshell/internal/domain"
	"tg_dealshell/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	fieldUser       = "user"
	fieldStartParam = "start_param"
	fieldQueryID    = "query_id"
	fieldAuthDate   = "auth_date"
)

// User — пользователь, открывший приложение.
type User struct {
	ID        int64
	Username  string
	FirstName string
}

// InitData — разобранная строка Telegram.WebApp.initData.
type InitData struct {
	User       *User
	StartParam string
	QueryID    string
	AuthDate   time.Time
}

// Parser проверяет подпись initData токеном бота. С verify=false подпись
// не проверяется: так приложение запускается локально вне Telegram.
type Parser struct {
	botToken string
	verify   bool
	maxAge   time.Duration
	now      func() time.Time
}

func NewParser(botToken string, verify bool, maxAge time.Duration) *Parser {
	return &Parser{
		botToken: botToken,
		verify:   verify,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

func (p *Parser) Parse(raw string) (InitData, error) {
	values, err := p.values(raw)
	if err != nil {
		return InitData{}, err
	}

	data := InitData{
		StartParam: values.Get(fieldStartParam),
		QueryID:    values.Get(fieldQueryID),
	}

	if authDate := values.Get(fieldAuthDate); authDate != "" {
		sec, err := strconv.ParseInt(authDate, 10, 64)
		if err != nil {
			return InitData{}, domain.WrapError(err, errcodes.InvalidInitData, "invalid auth_date")
		}

		data.AuthDate = time.Unix(sec, 0)
	}

	if p.verify && p.maxAge > 0 && p.now().Sub(data.AuthDate) > p.maxAge {
		return InitData{}, domain.NewError(errcodes.InvalidInitData, "init data expired")
	}

	if rawUser := values.Get(fieldUser); rawUser != "" {
		var u telego.User

		if err = json.UnmarshalFromString(rawUser, &u); err != nil {
			return InitData{}, domain.WrapError(err, errcodes.InvalidInitData, "invalid user")
		}

		data.User = &User{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
		}
	}

	return data, nil
}

func (p *Parser) values(raw string) (url.Values, error) {
	if p.verify {
		values, err := tu.ValidateWebAppData(p.botToken, raw)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InvalidInitData, "init data signature")
		}

		return values, nil
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, domain.WrapError(fmt.Errorf("url.ParseQuery: %w", err), errcodes.InvalidInitData, "malformed init data")
	}

	return values, nil
}
