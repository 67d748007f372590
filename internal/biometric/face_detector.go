// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package biometric

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

// Detector parameters are fixed so that detection, and therefore the
// extracted template, is reproducible.
const (
	detectMinSize     = 80
	detectMaxSize     = 2000
	detectShiftFactor = 0.1
	detectScaleFactor = 1.1
	detectIoU         = 0.2
	detectMinQuality  = 5.0
)

type pigoDetector struct {
	classifier *pigo.Pigo
}

// LoadFaceDetector reads a pigo frontal face cascade from path.
func LoadFaceDetector(path string) (FaceDetector, error) {
	cascade, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCascade, err)
	}
	return NewFaceDetector(cascade)
}

// NewFaceDetector unpacks a pigo cascade. The returned detector is read-only
// and safe for concurrent use.
func NewFaceDetector(cascade []byte) (FaceDetector, error) {
	if len(cascade) == 0 {
		return nil, fmt.Errorf("%w: empty cascade", ErrInvalidCascade)
	}

	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCascade, err)
	}
	return &pigoDetector{classifier: classifier}, nil
}

func (d *pigoDetector) Detect(img *image.Gray) []image.Rectangle {
	b := img.Bounds()
	params := pigo.CascadeParams{
		MinSize:     detectMinSize,
		MaxSize:     detectMaxSize,
		ShiftFactor: detectShiftFactor,
		ScaleFactor: detectScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: img.Pix,
			Rows:   b.Dy(),
			Cols:   b.Dx(),
			Dim:    img.Stride,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, detectIoU)
	return detectionsToRects(dets, b)
}

// detectionsToRects keeps confident detections and converts pigo's
// center/diameter form into rectangles inside bounds.
func detectionsToRects(dets []pigo.Detection, bounds image.Rectangle) []image.Rectangle {
	rects := make([]image.Rectangle, 0, len(dets))
	for _, det := range dets {
		if det.Q < detectMinQuality {
			continue
		}
		half := det.Scale / 2
		r := image.Rect(det.Col-half, det.Row-half, det.Col+half, det.Row+half).Intersect(bounds)
		if !r.Empty() {
			rects = append(rects, r)
		}
	}
	return rects
}
