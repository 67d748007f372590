// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModality is returned when a modality name is neither "face" nor
// "voice".
var ErrUnknownModality = errors.New("unknown biometric modality")

// Modality is the closed set of biometric capture kinds supported by the
// console. The zero value is not a valid modality.
type Modality int

const (
	// Face is a still image containing exactly one frontal face.
	Face Modality = iota + 1
	// Voice is a RIFF/WAVE recording of a spoken phrase.
	Voice
)

// Modalities lists every supported modality in a stable order.
var Modalities = []Modality{Face, Voice}

// ParseModality converts the wire name of a modality into a [Modality].
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseModality(s string) (Modality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "face":
		return Face, nil
	case "voice":
		return Voice, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownModality, s)
	}
}

// String returns the wire name of the modality.
func (m Modality) String() string {
	switch m {
	case Face:
		return "face"
	case Voice:
		return "voice"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the supported modalities.
func (m Modality) Valid() bool {
	return m == Face || m == Voice
}

// MarshalText implements encoding.TextMarshaler.
func (m Modality) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, ErrUnknownModality
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modality) UnmarshalText(text []byte) error {
	parsed, err := ParseModality(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
