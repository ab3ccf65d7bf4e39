package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tg_dealshell/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Access token",
			input:  []byte(`{"accessToken":"eyJhbGciOiJFUzI1NiIsInR5cC","refreshToken":"eyJhbGciOiJFUzI1NiIsInR5cCI6IkpXVCJ9"}`),
			output: []byte(`{"accessToken":"[MASKED]","refreshToken":"[MASKED]"}`),
		},
		{
			name:   "First name, last name, middle name and email",
			input:  []byte(`{"profile": {"lastName": "Doe", "firstName": "John", "middleName": "Michael", "email": "john@doe.com"}, "isMarketingConsentPermitted": true}`),
			output: []byte(`{"profile": {"lastName": "[MASKED]", "firstName": "[MASKED]", "middleName": "[MASKED]", "email": "[MASKED]"}, "isMarketingConsentPermitted": true}`),
		},
		{
			name:   "Init data",
			input:  []byte(`{"initData":"query_id=AAH&user=%7B%22id%22%3A1%7D&hash=abc","query":"deal_created=7"}`),
			output: []byte(`{"initData":"[MASKED]","query":"deal_created=7"}`),
		},
		{
			name:   "Session token",
			input:  []byte("POST /v1/sessions/x/events HTTP/1.1\r\nX-Session-Token: 0b6a1c\r\n\r\n{\"sessionId\":\"x\",\"sessionToken\":\"0b6a1c\"}"),
			output: []byte("POST /v1/sessions/x/events HTTP/1.1\r\nX-Session-Token: [MASKED]\r\n\r\n{\"sessionId\":\"x\",\"sessionToken\":\"[MASKED]\"}"),
		},
		{
			name:   "Requisite event",
			input:  []byte(`{"type":"save_requisite","requisite":"UQ-wallet"}`),
			output: []byte(`{"type":"save_requisite","requisite":"[MASKED]"}`),
		},
		{
			name:   "Send data effect with escaped payload",
			input:  []byte(`{"type":"send_data","data":"{\"action\":\"save_requisite\",\"requisite\":\"UQ\"}"}`),
			output: []byte(`{"type":"send_data","data":"[MASKED]"}`),
		},
		{
			name:   "Requisite list value",
			input:  []byte(`{"currency":"RUB","value":"1234 5678","isSet":true}`),
			output: []byte(`{"currency":"RUB","value":"[MASKED]","isSet":true}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
