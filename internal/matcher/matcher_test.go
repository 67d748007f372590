package matcher

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bio-console/models"
)

func newMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := New(0.10, 0.65)
	require.NoError(t, err)
	return m
}

func TestNew_Thresholds(t *testing.T) {
	m := newMatcher(t)
	assert.InDelta(t, 0.90, m.Threshold(models.Face), 1e-12)
	assert.InDelta(t, 0.65, m.Threshold(models.Voice), 1e-12)
}

func TestNew_InvalidSettings(t *testing.T) {
	for _, tc := range []struct{ tolerance, voice float64 }{
		{0, 0.65}, {1, 0.65}, {-0.1, 0.65}, {0.1, -1}, {0.1, 1.01},
	} {
		_, err := New(tc.tolerance, tc.voice)
		assert.ErrorIs(t, err, ErrInvalidThreshold, "tolerance=%v voice=%v", tc.tolerance, tc.voice)
	}
}

func TestCompare_SelfSimilarity(t *testing.T) {
	m := newMatcher(t)
	v := []float64{0.3, -1.2, 4.5, 0, 7.25}

	for _, modality := range models.Modalities {
		res, err := m.Compare(v, v, modality)
		require.NoError(t, err)
		assert.Equal(t, 1.0, res.Similarity)
		assert.Equal(t, 100.0, res.Confidence)
		assert.True(t, res.Matched)
	}
}

func TestCompare_SelfSimilarityIsExact(t *testing.T) {
	m := newMatcher(t)
	rng := rand.New(rand.NewPCG(3, 5))

	for trial := 0; trial < 1000; trial++ {
		v := make([]float64, models.VoiceVectorLength)
		for i := range v {
			v[i] = rng.NormFloat64()
		}

		res, err := m.Compare(v, v, models.Voice)
		require.NoError(t, err)
		if res.Similarity != 1.0 {
			t.Fatalf("trial %d: similarity = %.17g, want exactly 1", trial, res.Similarity)
		}
	}
}

func TestCompare_Confidence(t *testing.T) {
	m := newMatcher(t)
	a := []float64{1, 0}
	b := []float64{0, 1}
	c := []float64{-1, 0}

	tests := []struct {
		name           string
		x, y           []float64
		modality       models.Modality
		wantSimilarity float64
		wantConfidence float64
	}{
		{"face orthogonal", a, b, models.Face, 0, 0},
		{"voice orthogonal", a, b, models.Voice, 0, 50},
		{"face opposite is clamped", a, c, models.Face, -1, 0},
		{"voice opposite", a, c, models.Voice, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := m.Compare(tt.x, tt.y, tt.modality)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantSimilarity, res.Similarity, 1e-12)
			assert.InDelta(t, tt.wantConfidence, res.Confidence, 1e-9)
			assert.False(t, res.Matched)
		})
	}
}

func TestCompare_ThresholdBoundary(t *testing.T) {
	// cos((1,0),(3,4)) = 3/5
	m, err := New(0.10, 0.6)
	require.NoError(t, err)

	a := []float64{1, 0}
	b := []float64{3, 4}

	res, err := m.Compare(a, b, models.Voice)
	require.NoError(t, err)
	require.Equal(t, 0.6, res.Similarity)
	assert.True(t, res.Matched, "similarity equal to the threshold must match")

	above, err := New(0.10, math.Nextafter(0.6, 1))
	require.NoError(t, err)
	res, err = above.Compare(a, b, models.Voice)
	require.NoError(t, err)
	assert.False(t, res.Matched, "similarity just below the threshold must not match")
}

func TestCompare_ZeroNorm(t *testing.T) {
	m := newMatcher(t)

	res, err := m.Compare([]float64{0, 0, 0}, []float64{1, 2, 3}, models.Voice)
	require.NoError(t, err)
	assert.Zero(t, res.Similarity)
	assert.InDelta(t, 50.0, res.Confidence, 1e-12)
	assert.False(t, res.Matched)
}

func TestCompare_DimensionMismatch(t *testing.T) {
	m := newMatcher(t)
	_, err := m.Compare([]float64{1, 2}, []float64{1, 2, 3}, models.Face)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCompare_UnknownModality(t *testing.T) {
	m := newMatcher(t)
	_, err := m.Compare([]float64{1}, []float64{1}, models.Modality(9))
	assert.ErrorIs(t, err, models.ErrUnknownModality)
}

func TestCosine_Clamped(t *testing.T) {
	v := []float64{0.1, 0.2, 0.3}
	s, ok := Cosine(v, v)
	require.True(t, ok)
	assert.LessOrEqual(t, s, 1.0)
}
