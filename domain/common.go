package domain

import (
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenNotFound  = "failed to token not found"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedForbidden      = "access forbidden"
	MessageUserNotAllowed       = "user not allowed"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrForbidden      = errors.New("access forbidden")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)
