// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a session is asked to move to a step
// that is not reachable from its current one.
var ErrInvalidTransition = errors.New("invalid auth step transition")

var ErrUnknownAuthStep = errors.New("unknown auth step")

// AuthStep is the position of a login session in the password + biometric
// flow.
type AuthStep int

const (
	PasswordPending AuthStep = iota
	PasswordVerified
	EnrollmentRequired
	BiometricPending
	Complete
)

var authStepNames = map[AuthStep]string{
	PasswordPending:    "password_pending",
	PasswordVerified:   "password_verified",
	EnrollmentRequired: "enrollment_required",
	BiometricPending:   "biometric_pending",
	Complete:           "complete",
}

// transitions lists the steps reachable from each step. Logout is handled
// separately because it is allowed from everywhere.
var transitions = map[AuthStep][]AuthStep{
	PasswordPending:    {PasswordVerified},
	PasswordVerified:   {EnrollmentRequired, BiometricPending},
	EnrollmentRequired: {BiometricPending, Complete},
	BiometricPending:   {Complete},
	Complete:           {},
}

// String returns the wire name of the step.
func (s AuthStep) String() string {
	if name, ok := authStepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("auth_step(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s AuthStep) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *AuthStep) UnmarshalText(text []byte) error {
	for step, name := range authStepNames {
		if name == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownAuthStep, text)
}

// CanTransitionTo reports whether next is reachable from s. Moving back to
// PasswordPending (logout) is always allowed.
func (s AuthStep) CanTransitionTo(next AuthStep) bool {
	if next == PasswordPending {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Next validates the move from s to next and returns next on success.
func (s AuthStep) Next(next AuthStep) (AuthStep, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}
