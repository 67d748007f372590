// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// FaceVectorLength is the fixed dimensionality of a face template.
	FaceVectorLength = 1000
	// VoiceVectorLength is the fixed dimensionality of a voice template:
	// 96 mean bins, 96 deviation bins, energy, zero-crossing rate and
	// normalized spectral centroid.
	VoiceVectorLength = 195
)

// VectorLength returns the template dimensionality for the modality, or 0
// for an unknown modality.
func (m Modality) VectorLength() int {
	switch m {
	case Face:
		return FaceVectorLength
	case Voice:
		return VoiceVectorLength
	default:
		return 0
	}
}

// Template is a plaintext feature vector extracted from one capture.
// It lives in memory only and is never persisted without encryption.
type Template struct {
	OwnerID  int64
	Modality Modality
	Vector   []float64
}

// BiometricRecord is the persisted, encrypted form of a template.
//
// There is at most one record per (OwnerID, Modality); re-enrollment
// replaces EncryptedBlob and refreshes UpdatedAt while CreatedAt is kept.
type BiometricRecord struct {
	ID       int64    `json:"-"`
	OwnerID  int64    `json:"owner_id"`
	Modality Modality `json:"biometric_type"`

	// EncryptedBlob is base64(nonce || ciphertext_with_tag).
	EncryptedBlob string `json:"-"`

	// Enrolled is the user-controlled switch; a disabled record is kept but
	// cannot be used for verification.
	Enrolled bool `json:"enrolled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MatchResult is the outcome of comparing a fresh template with an enrolled
// one.
type MatchResult struct {
	// Similarity is the cosine similarity in [-1, 1].
	Similarity float64 `json:"similarity"`
	// Confidence is the modality-specific presentation of Similarity in [0, 100].
	Confidence float64 `json:"confidence"`
	// Threshold is the minimal similarity that counts as a match.
	Threshold float64 `json:"threshold"`
	Matched   bool    `json:"matched"`
}
