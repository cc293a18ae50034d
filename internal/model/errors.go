package model

import "errors"

// Sentinel errors returned by repositories and services. The HTTP handler
// layer is the only place that maps these to status codes.
var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicate            = errors.New("duplicate key")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrNotOwner             = errors.New("not owner")
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrStorageFailure       = errors.New("storage failure")
)
