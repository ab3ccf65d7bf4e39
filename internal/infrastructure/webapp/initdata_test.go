package webapp_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tg_dealshell/internal/domain"
	"tg_dealshell/internal/infrastructure/webapp"
	"tg_dealshell/pkg/errcodes"
)

const botToken = "123456:test-token"

// sign строит initData так же, как это делает Telegram.
func sign(t *testing.T, token string, values url.Values) string {
	t.Helper()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(token))

	h := hmac.New(sha256.New, secret.Sum(nil))
	h.Write([]byte(strings.Join(pairs, "\n")))

	signed := url.Values{}
	for k := range values {
		signed.Set(k, values.Get(k))
	}

	signed.Set("hash", hex.EncodeToString(h.Sum(nil)))

	return signed.Encode()
}

// launchUser — объект user в том виде, в каком его присылает клиент Telegram.
const launchUser = `{"id":279058397,"first_name":"Vlad","last_name":"K","username":"vdkfrost",` +
	`"language_code":"ru","is_premium":true,"allows_write_to_pm":true,"photo_url":"https://t.me/i/u.svg"}`

func launchValues(authDate time.Time) url.Values {
	return url.Values{
		"query_id":    {"AAHdF6IQAAAAAN0XohDhrOrc"},
		"user":        {launchUser},
		"auth_date":   {strconv.FormatInt(authDate.Unix(), 10)},
		"start_param": {"deal_5"},
	}
}

func TestParseVerified(t *testing.T) {
	rq := require.New(t)

	parser := webapp.NewParser(botToken, true, 0)

	data, err := parser.Parse(sign(t, botToken, launchValues(time.Now())))
	rq.NoError(err)
	rq.NotNil(data.User)
	rq.Equal(int64(279058397), data.User.ID)
	rq.Equal("vdkfrost", data.User.Username)
	rq.Equal("Vlad", data.User.FirstName)
	rq.Equal("deal_5", data.StartParam)
	rq.Equal("AAHdF6IQAAAAAN0XohDhrOrc", data.QueryID)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	rq := require.New(t)

	parser := webapp.NewParser(botToken, true, 0)

	testCases := []string{
		sign(t, "999:other-token", launchValues(time.Now())),
		launchValues(time.Now()).Encode(),
		"",
	}

	for _, raw := range testCases {
		_, err := parser.Parse(raw)
		rq.True(domain.HasCode(err, errcodes.InvalidInitData), raw)
	}
}

func TestParseExpired(t *testing.T) {
	rq := require.New(t)

	parser := webapp.NewParser(botToken, true, time.Hour)

	_, err := parser.Parse(sign(t, botToken, launchValues(time.Now().Add(-2*time.Hour))))
	rq.True(domain.HasCode(err, errcodes.InvalidInitData))

	_, err = parser.Parse(sign(t, botToken, launchValues(time.Now())))
	rq.NoError(err)
}

func TestParseUnverified(t *testing.T) {
	rq := require.New(t)

	parser := webapp.NewParser("", false, 0)

	data, err := parser.Parse("")
	rq.NoError(err)
	rq.Nil(data.User)
	rq.Empty(data.StartParam)

	data, err = parser.Parse("start_param=deal_9&user=%7B%22id%22%3A1%7D")
	rq.NoError(err)
	rq.Equal("deal_9", data.StartParam)
	rq.Equal(int64(1), data.User.ID)

	_, err = parser.Parse("user=%7Bbroken")
	rq.True(domain.HasCode(err, errcodes.InvalidInitData))
}
