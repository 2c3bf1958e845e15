package services

import "errors"

// Sentinel errors controllers translate to HTTP responses. Anything else
// coming out of a service is an internal error and must not reach the client
// with detail attached.
var (
	ErrAlreadyExists      = errors.New("user with this email or phone number already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("record not found")
)
