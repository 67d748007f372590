package client

import "errors"

var (
	ErrNoCommands      = errors.New("no commands given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing command argument")
	ErrNoCredentials   = errors.New("login and password are required")
	ErrNotVerified     = errors.New("biometric verification failed")
)
