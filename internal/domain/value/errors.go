package value

import "errors"

var (
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrInvalidDealID    = errors.New("invalid deal id")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("description is empty")
	ErrEmptyRequisite   = errors.New("requisite is empty")
	ErrUsernameEmpty    = errors.New("username is empty")
	ErrUsernameLength   = errors.New("username length out of range")
	ErrUsernameCharset  = errors.New("username contains forbidden characters")
)
