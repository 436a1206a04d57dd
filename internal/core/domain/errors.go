package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrCorruptData indicates a stored document failed validation on read
	ErrCorruptData = errors.New("corrupt data")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidProvider indicates an unknown AI provider was specified
	ErrInvalidProvider = errors.New("invalid provider")

	// ErrServiceUnavailable indicates an external AI service could not be reached
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrDimensionMismatch indicates an embedding vector has the wrong dimension
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrInvalidCredentials indicates a wrong tenant/API key combination
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired indicates the auth token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")
)
