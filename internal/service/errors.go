package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong login or password")
	ErrUserInactive        = errors.New("user is inactive")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionRevoked          = errors.New("session is revoked or expired")

	ErrInvalidStep     = errors.New("operation is not allowed at the current authentication step")
	ErrNotEnrolled     = errors.New("biometric is not enrolled")
	ErrRecordNotFound  = errors.New("biometric record not found")
	ErrTooManyAttempts = errors.New("too many verification attempts")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
