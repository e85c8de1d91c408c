package models

import "errors"

// Ошибки предметной области. HTTP-слой сопоставляет их со статусами ответа.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateUser      = errors.New("user with this username or email already exists")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)
