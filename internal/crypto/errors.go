package crypto

import "errors"

var (
	// ErrTamperedOrCorrupt means a stored template could not be opened.
	// Callers must treat it as an integrity fault, never as "not enrolled".
	ErrTamperedOrCorrupt = errors.New("template tampered or corrupt")

	ErrInvalidKeyMaterial = errors.New("invalid key material")
	ErrInvalidTemplate    = errors.New("template contains non-finite values")
	ErrEmptyTemplate      = errors.New("template vector is empty")
)
