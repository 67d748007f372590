// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package biometric

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bio-console/models"
)

type extractor struct {
	detector FaceDetector
}

// NewExtractor returns the face and voice [Extractor]. detector is used for
// the face path only.
func NewExtractor(detector FaceDetector) Extractor {
	return &extractor{detector: detector}
}

func (e *extractor) Extract(ctx context.Context, modality models.Modality, raw []byte) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCapture
	}

	switch modality {
	case models.Face:
		return extractFace(e.detector, raw)
	case models.Voice:
		return extractVoice(raw)
	default:
		return nil, fmt.Errorf("%w: %w", ErrExtraction, models.ErrUnknownModality)
	}
}

func (e *extractor) DetectFaces(ctx context.Context, raw []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, ErrEmptyCapture
	}

	gray, err := decodeGray(raw)
	if err != nil {
		return 0, err
	}
	return len(e.detector.Detect(gray)), nil
}

// DecodePayload converts a transport payload into raw capture bytes.
// An optional data URL prefix ("data:image/png;base64,") is stripped; both
// padded and unpadded standard Base64 are accepted.
func DecodePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		_, data, found := strings.Cut(payload, ",")
		if !found {
			return nil, fmt.Errorf("%w: malformed data URL", ErrDecode)
		}
		payload = data
	}
	if payload == "" {
		return nil, ErrEmptyCapture
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return raw, nil
	}
	raw, rawErr := base64.RawStdEncoding.DecodeString(payload)
	if rawErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return raw, nil
}
