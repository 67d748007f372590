// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// KeyLength is the template key size in bytes (AES-256).
const KeyLength = 32

// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
)

// KeyMaterial is the immutable key every template is encrypted with.
//
// It is derived once at startup. Changing the passphrase or the salt makes
// every previously enrolled template undecryptable, so a rotation requires
// re-enrollment of all users.
type KeyMaterial struct {
	key [KeyLength]byte
}

// DeriveKeyMaterial derives a 256-bit key from passphrase and salt using
// Argon2id.
func DeriveKeyMaterial(passphrase, salt string) (KeyMaterial, error) {
	if passphrase == "" || salt == "" {
		return KeyMaterial{}, fmt.Errorf("%w: passphrase and salt are required", ErrInvalidKeyMaterial)
	}

	derived := argon2.IDKey([]byte(passphrase), []byte(salt), argonTime, argonMemory, argonThreads, KeyLength)

	var km KeyMaterial
	copy(km.key[:], derived)
	return km, nil
}

// NewKeyMaterial wraps an already generated raw key.
func NewKeyMaterial(raw []byte) (KeyMaterial, error) {
	if len(raw) != KeyLength {
		return KeyMaterial{}, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidKeyMaterial, KeyLength, len(raw))
	}

	var km KeyMaterial
	copy(km.key[:], raw)
	return km, nil
}

// IsZero reports whether the key was never initialized.
func (k KeyMaterial) IsZero() bool {
	return k.key == [KeyLength]byte{}
}

// String never prints the key.
func (k KeyMaterial) String() string {
	return "[REDACTED]"
}

// MarshalText keeps the key out of JSON logs and dumps.
func (k KeyMaterial) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
