package services

import "errors"

// Common service errors
var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrInvalidState        = errors.New("invalid state transition")
	ErrInvalidRecoveryCode = errors.New("invalid or expired recovery code")

	// ErrAccessDenied rejects a manager reaching outside their portfolio.
	// The HTTP boundary keys off the "Access denied" prefix to answer 403.
	ErrAccessDenied = errors.New("Access denied: you do not manage this property")
)
