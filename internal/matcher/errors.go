package matcher

import "errors"

var (
	ErrDimensionMismatch = errors.New("template dimensions do not match")
	ErrInvalidThreshold  = errors.New("invalid matching threshold")
)
