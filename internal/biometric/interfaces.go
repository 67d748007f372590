package biometric

//go:generate mockgen -source=interfaces.go -destination=../mock/extractor_mock.go -package=mock

import (
	"context"
	"image"

	"github.com/MKhiriev/go-bio-console/models"
)

// Extractor turns a raw capture into a fixed-length feature vector.
//
// Extraction is a pure function of the input bytes: the same capture always
// yields a bit-identical vector. It never touches storage or key material.
type Extractor interface {
	// Extract returns the feature vector of raw for the given modality.
	// Every input problem is reported as an error wrapping [ErrExtraction].
	Extract(ctx context.Context, modality models.Modality, raw []byte) ([]float64, error)

	// DetectFaces decodes an image and returns the number of faces found.
	// Zero or several faces are not an error here.
	DetectFaces(ctx context.Context, raw []byte) (int, error)
}

// FaceDetector locates frontal faces in a grayscale image.
type FaceDetector interface {
	Detect(img *image.Gray) []image.Rectangle
}
