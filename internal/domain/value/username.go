package value

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 32
)

var usernameCharset = regexp.MustCompile(`^[A-Za-z0-9_]+$`) //nolint:gochecknoglobals

// Username — telegram-хэндл контрагента без ведущего "@".
type Username string

func (u Username) String() string {
	return string(u)
}

// ParseUsername убирает пробелы и один ведущий "@", затем проверяет длину и алфавит.
func ParseUsername(raw string) (Username, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrUsernameEmpty
	}

	s = strings.TrimPrefix(s, "@")

	if len(s) < usernameMinLen || len(s) > usernameMaxLen {
		return "", fmt.Errorf("username %q: %w", s, ErrUsernameLength)
	}

	if !usernameCharset.MatchString(s) {
		return "", fmt.Errorf("username %q: %w", s, ErrUsernameCharset)
	}

	return Username(s), nil
}
