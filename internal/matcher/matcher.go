// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package matcher decides whether two templates of the same modality belong
// to the same person.
package matcher

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/MKhiriev/go-bio-console/models"
)

// Matcher compares a fresh template against an enrolled one.
type Matcher struct {
	faceThreshold  float64
	voiceThreshold float64
}

// New builds a Matcher. The face threshold is 1 - faceTolerance; the voice
// threshold is used as is.
func New(faceTolerance, voiceThreshold float64) (*Matcher, error) {
	if faceTolerance <= 0 || faceTolerance >= 1 {
		return nil, fmt.Errorf("%w: face tolerance %v", ErrInvalidThreshold, faceTolerance)
	}
	if voiceThreshold <= -1 || voiceThreshold > 1 {
		return nil, fmt.Errorf("%w: voice threshold %v", ErrInvalidThreshold, voiceThreshold)
	}

	return &Matcher{
		faceThreshold:  1 - faceTolerance,
		voiceThreshold: voiceThreshold,
	}, nil
}

// Threshold returns the minimal similarity accepted for modality.
func (m *Matcher) Threshold(modality models.Modality) float64 {
	if modality == models.Face {
		return m.faceThreshold
	}
	return m.voiceThreshold
}

// Compare computes the cosine similarity of a and b and maps it to a
// decision and a confidence in [0, 100].
//
// A zero-norm vector has similarity 0 and never matches.
func (m *Matcher) Compare(a, b []float64, modality models.Modality) (models.MatchResult, error) {
	if !modality.Valid() {
		return models.MatchResult{}, models.ErrUnknownModality
	}
	if len(a) != len(b) {
		return models.MatchResult{}, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	threshold := m.Threshold(modality)
	similarity, ok := Cosine(a, b)
	if !ok {
		return models.MatchResult{
			Similarity: 0,
			Confidence: confidence(modality, 0),
			Threshold:  threshold,
			Matched:    false,
		}, nil
	}

	return models.MatchResult{
		Similarity: similarity,
		Confidence: confidence(modality, similarity),
		Threshold:  threshold,
		Matched:    similarity >= threshold,
	}, nil
}

// Cosine returns dot(a, b) / sqrt(|a|²·|b|²) clamped to [-1, 1]. ok is false
// when either vector has zero norm. Vectors must have equal length.
//
// Both squared norms come from the same Dot as the numerator, so a vector
// compared with itself yields exactly 1.
func Cosine(a, b []float64) (similarity float64, ok bool) {
	aa, bb := floats.Dot(a, a), floats.Dot(b, b)
	if aa == 0 || bb == 0 {
		return 0, false
	}

	return clamp(floats.Dot(a, b)/math.Sqrt(aa*bb), -1, 1), true
}

// confidence is linear for faces and shifted from [-1, 1] for voices.
func confidence(modality models.Modality, similarity float64) float64 {
	switch modality {
	case models.Face:
		return clamp(similarity*100, 0, 100)
	default:
		return clamp((similarity+1)*50, 0, 100)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
