package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrSessionNotFound  = errors.New("session not found")
)

var (
	ErrEmailTaken     = errors.New("email is already registered")
	ErrSlugTaken      = errors.New("category slug is already taken")
	ErrInvalidLogin   = errors.New("invalid email or password")
	ErrSessionExpired = errors.New("session expired")
)

var (
	ErrUnauthorized = errors.New("not signed in")
	ErrForbidden    = errors.New("insufficient role")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrNetwork marks a backend call that could not complete or returned a
// non-success status.
var ErrNetwork = errors.New("backend request failed")
