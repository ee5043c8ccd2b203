package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrPartnerNotFound    = errors.New("partner not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidReference   = errors.New("invalid role or partner reference")
	ErrInvalidPartnerID   = errors.New("invalid partner id format")
	ErrInviteTokenInvalid = errors.New("invite token invalid or expired")
	ErrUserInactive       = errors.New("user is inactive")
)
