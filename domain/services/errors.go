package services

import "errors"

// Failure taxonomy shared by all services. Handlers map these onto HTTP
// status codes with errors.Is, so a caller can distinguish "task vanished"
// from "you may not touch it" from "wrong state".
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrProfileNotFound  = errors.New("user profile not found")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrNotFound         = errors.New("not found")
	ErrInvalidState     = errors.New("operation not allowed in current status")
	ErrValidation       = errors.New("validation failed")
)
