// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/MKhiriev/go-bio-console/models"
)

// templateCipher is the AES-256-GCM implementation of [TemplateCipher].
type templateCipher struct {
	aead cipher.AEAD
	rand io.Reader
}

// NewTemplateCipher builds the AEAD once from key. The returned cipher is
// safe for concurrent use.
func NewTemplateCipher(key KeyMaterial) (TemplateCipher, error) {
	return newTemplateCipher(key, rand.Reader)
}

func newTemplateCipher(key KeyMaterial, random io.Reader) (*templateCipher, error) {
	if key.IsZero() {
		return nil, fmt.Errorf("%w: key is not initialized", ErrInvalidKeyMaterial)
	}

	block, err := aes.NewCipher(key.key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &templateCipher{aead: gcm, rand: random}, nil
}

// Encrypt implements [TemplateCipher]. The plaintext is the JSON array of
// the vector; blob = nonce (12 bytes) ‖ ciphertext ‖ tag, Base64 encoded.
func (c *templateCipher) Encrypt(template models.Template) (string, error) {
	if len(template.Vector) == 0 {
		return "", ErrEmptyTemplate
	}
	for _, v := range template.Vector {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", ErrInvalidTemplate
		}
	}

	plaintext, err := json.Marshal(template.Vector)
	if err != nil {
		return "", fmt.Errorf("marshal template: %w", err)
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, plaintext, additionalData(template.OwnerID, template.Modality))
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [TemplateCipher].
func (c *templateCipher) Decrypt(ownerID int64, modality models.Modality, blob string) (models.Template, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return models.Template{}, fmt.Errorf("%w: decode base64: %w", ErrTamperedOrCorrupt, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize+c.aead.Overhead() {
		return models.Template{}, fmt.Errorf("%w: ciphertext too short", ErrTamperedOrCorrupt)
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, additionalData(ownerID, modality))
	if err != nil {
		return models.Template{}, fmt.Errorf("%w: %w", ErrTamperedOrCorrupt, err)
	}

	var vector []float64
	if err := json.Unmarshal(plaintext, &vector); err != nil {
		return models.Template{}, fmt.Errorf("%w: unmarshal template: %w", ErrTamperedOrCorrupt, err)
	}
	if len(vector) == 0 {
		return models.Template{}, fmt.Errorf("%w: empty template", ErrTamperedOrCorrupt)
	}

	return models.Template{OwnerID: ownerID, Modality: modality, Vector: vector}, nil
}

// additionalData binds a blob to its row: owner_id:modality.
func additionalData(ownerID int64, modality models.Modality) []byte {
	return []byte(strconv.FormatInt(ownerID, 10) + ":" + modality.String())
}
