package domain

import "errors"

// Failure taxonomy shared by stores, services and the HTTP layer.
// Concrete failures wrap one of these sentinels so callers can match
// with errors.Is without parsing messages.
var (
	ErrValidation   = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrStorage      = errors.New("storage failure")
)
