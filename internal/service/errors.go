package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAreaInactive is returned when access is requested for an area that
	// exists but is not accepting access attempts.
	ErrAreaInactive = errors.New("area is inactive")

	ErrInvalidOperatorKey      = errors.New("invalid operator key")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
