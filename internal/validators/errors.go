package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin      = errors.New("login is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidModality = errors.New("invalid biometric type")
	ErrEmptyPayload    = errors.New("payload is required")
	ErrPayloadTooLarge = errors.New("payload is too large")
)
