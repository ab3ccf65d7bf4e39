package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"
	Unauthorized        failure.ErrorCode = "Unauthorized"

	InvalidInitData     failure.ErrorCode = "InvalidInitData"
	InvalidSessionToken failure.ErrorCode = "InvalidSessionToken"
	InvalidEvent        failure.ErrorCode = "InvalidEvent"
	SessionNotFound     failure.ErrorCode = "SessionNotFound"
	SessionClosed       failure.ErrorCode = "SessionClosed"
	CacheUnavailable    failure.ErrorCode = "CacheUnavailable"
	CacheCorrupted      failure.ErrorCode = "CacheCorrupted"
	BridgeFailure       failure.ErrorCode = "BridgeFailure"
)
