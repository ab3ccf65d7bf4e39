package server

import "errors"

var (
	errSessionClosed = errors.New("session is closed")
	errUnknownPopup  = errors.New("no such pending popup")
	errNoBackButton  = errors.New("back button is hidden")
	errSessionToken  = errors.New("session token mismatch")
)
