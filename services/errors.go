package services

import "errors"

// Error kinds returned by the service layer. Controllers classify failures
// with errors.Is and map them onto HTTP statuses; services never decide
// status codes themselves.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrUnauthorized = errors.New("unauthorized")
)
