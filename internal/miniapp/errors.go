package miniapp

import "errors"

var (
	ErrDraftMissing = errors.New("deal draft fields are missing")
	ErrNotEntitled  = errors.New("payment is not available for this user")
)
