package biometric

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/MKhiriev/go-bio-console/models"
)

const (
	faceSide       = 100
	facePixels     = 500
	histogramBins  = 256
	faceCropMargin = 0.10

	// maxImagePixels caps the decoded size of a capture. A small compressed
	// payload can declare a huge canvas.
	maxImagePixels = 40_000_000
)

func extractFace(detector FaceDetector, raw []byte) ([]float64, error) {
	gray, err := decodeGray(raw)
	if err != nil {
		return nil, err
	}

	faces := detector.Detect(gray)
	switch len(faces) {
	case 0:
		return nil, ErrNoFaceDetected
	case 1:
	default:
		return nil, fmt.Errorf("%w: found %d", ErrAmbiguousCapture, len(faces))
	}

	region := padRegion(faces[0], gray.Bounds())
	if region.Empty() {
		return nil, ErrNoFaceDetected
	}

	face := image.NewGray(image.Rect(0, 0, faceSide, faceSide))
	draw.BiLinear.Scale(face, face.Bounds(), gray, region, draw.Src, nil)
	equalizeHistogram(face)

	return faceVector(face), nil
}

// decodeGray decodes any registered image format into an 8-bit grayscale
// grid anchored at the origin.
func decodeGray(raw []byte) (*image.Gray, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrDecode, cfg.Width, cfg.Height, maxImagePixels)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray, nil
}

// equalizeHistogram spreads the intensities of img over the full 0..255
// range through its cumulative histogram. A single-tone image is left as is.
func equalizeHistogram(img *image.Gray) {
	b := img.Bounds()
	var hist [histogramBins]int
	for y := 0; y < b.Dy(); y++ {
		for _, p := range img.Pix[y*img.Stride : y*img.Stride+b.Dx()] {
			hist[p]++
		}
	}

	total := b.Dx() * b.Dy()
	cdfMin := 0
	for _, c := range hist {
		if c != 0 {
			cdfMin = c
			break
		}
	}
	if total == cdfMin {
		return
	}

	var lut [histogramBins]uint8
	cdf := 0
	scale := 255 / float64(total-cdfMin)
	for i, c := range hist {
		cdf += c
		if cdf > cdfMin {
			lut[i] = uint8(math.Round(float64(cdf-cdfMin) * scale))
		}
	}

	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()]
		for x, p := range row {
			row[x] = lut[p]
		}
	}
}

// padRegion grows r by a margin proportional to its width, clamped to bounds.
func padRegion(r, bounds image.Rectangle) image.Rectangle {
	pad := int(float64(r.Dx()) * faceCropMargin)
	return image.Rect(r.Min.X-pad, r.Min.Y-pad, r.Max.X+pad, r.Max.Y+pad).Intersect(bounds)
}

// faceVector lays out the template as: the first 500 normalized pixels,
// the 256-bin normalized intensity histogram, zeros up to the fixed length.
func faceVector(face *image.Gray) []float64 {
	vector := make([]float64, models.FaceVectorLength)

	var hist [histogramBins]float64
	n := 0
	for y := 0; y < faceSide; y++ {
		row := face.Pix[y*face.Stride : y*face.Stride+faceSide]
		for _, p := range row {
			if n < facePixels {
				vector[n] = float64(p) / 255
			}
			hist[p]++
			n++
		}
	}

	total := float64(faceSide * faceSide)
	for i, c := range hist {
		vector[facePixels+i] = c / total
	}

	return vector
}
