package biometric

import (
	"errors"
	"fmt"
)

// ErrExtraction is the parent of every capture problem. Such errors are the
// caller's fault and are recoverable with a better capture.
var ErrExtraction = errors.New("extraction failed")

var (
	ErrDecode           = fmt.Errorf("%w: capture cannot be decoded", ErrExtraction)
	ErrNoFaceDetected   = fmt.Errorf("%w: no face detected", ErrExtraction)
	ErrAmbiguousCapture = fmt.Errorf("%w: multiple faces detected", ErrExtraction)
	ErrCaptureTooShort  = fmt.Errorf("%w: recording is too short", ErrExtraction)
	ErrSilentCapture    = fmt.Errorf("%w: recording contains no signal", ErrExtraction)
	ErrEmptyCapture     = fmt.Errorf("%w: capture is empty", ErrExtraction)
)

var ErrInvalidCascade = errors.New("invalid face cascade")
