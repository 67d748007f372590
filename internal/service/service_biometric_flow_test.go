package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand/v2"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bio-console/internal/biometric"
	"github.com/MKhiriev/go-bio-console/internal/config"
	"github.com/MKhiriev/go-bio-console/internal/crypto"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/matcher"
	"github.com/MKhiriev/go-bio-console/internal/store"
	"github.com/MKhiriev/go-bio-console/internal/workers"
	"github.com/MKhiriev/go-bio-console/models"
)

// ─────────────────────────────────────────────
// In-memory template repository
// ─────────────────────────────────────────────

type recordKey struct {
	owner    int64
	modality models.Modality
}

type memoryTemplates struct {
	mu      sync.Mutex
	nextID  int64
	records map[recordKey]models.BiometricRecord
}

func newMemoryTemplates() *memoryTemplates {
	return &memoryTemplates{records: make(map[recordKey]models.BiometricRecord)}
}

func (m *memoryTemplates) Upsert(_ context.Context, record models.BiometricRecord) (models.BiometricRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey{record.OwnerID, record.Modality}
	now := time.Now()
	if old, ok := m.records[key]; ok {
		record.ID, record.CreatedAt = old.ID, old.CreatedAt
	} else {
		m.nextID++
		record.ID, record.CreatedAt = m.nextID, now
	}
	record.UpdatedAt = now
	m.records[key] = record
	return record, nil
}

func (m *memoryTemplates) Get(_ context.Context, ownerID int64, modality models.Modality) (models.BiometricRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[recordKey{ownerID, modality}]
	if !ok {
		return models.BiometricRecord{}, store.ErrTemplateNotFound
	}
	return record, nil
}

func (m *memoryTemplates) SetEnrolled(_ context.Context, ownerID int64, modality models.Modality, enrolled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey{ownerID, modality}
	record, ok := m.records[key]
	if !ok {
		return store.ErrTemplateNotFound
	}
	record.Enrolled = enrolled
	m.records[key] = record
	return nil
}

func (m *memoryTemplates) ListByOwner(_ context.Context, ownerID int64) ([]models.BiometricRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.BiometricRecord
	for _, modality := range models.Modalities {
		if record, ok := m.records[recordKey{ownerID, modality}]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────
// Engine wiring
// ─────────────────────────────────────────────

type singleFace struct{}

func (singleFace) Detect(img *image.Gray) []image.Rectangle {
	b := img.Bounds()
	return []image.Rectangle{image.Rect(b.Dx()/4, b.Dy()/4, b.Dx()*3/4, b.Dy()*3/4)}
}

type engineFixture struct {
	svc       *biometricService
	templates *memoryTemplates
	sessions  store.SessionStorage
}

func newEngineFixture(t *testing.T) engineFixture {
	t.Helper()

	key, err := crypto.NewKeyMaterial(bytes.Repeat([]byte{0x2a}, crypto.KeyLength))
	require.NoError(t, err)
	cipher, err := crypto.NewTemplateCipher(key)
	require.NoError(t, err)
	m, err := matcher.New(0.10, 0.65)
	require.NoError(t, err)

	f := engineFixture{
		templates: newMemoryTemplates(),
		sessions:  store.NewSessionStorage(logger.Nop()),
	}
	storages := &store.Storages{TemplateRepository: f.templates, SessionStorage: f.sessions}

	f.svc = NewBiometricService(storages, BiometricDeps{
		Extractor: biometric.NewExtractor(singleFace{}),
		Cipher:    cipher,
		Matcher:   m,
		Issuer:    NewCredentialIssuer(testAppConfig()),
		Pool:      workers.NewPool(2),
	}, config.Biometric{}, logger.Nop()).(*biometricService)

	require.NoError(t, f.sessions.Create(context.Background(), models.Session{
		ID:        testSessionID,
		UserID:    testUserID,
		Login:     "alice",
		Role:      models.RoleUser,
		Step:      models.EnrollmentRequired,
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	return f
}

func (f engineFixture) step(t *testing.T) models.AuthStep {
	t.Helper()
	s, err := f.sessions.Get(context.Background(), testSessionID)
	require.NoError(t, err)
	return s.Step
}

func capture(modality models.Modality, raw []byte) models.CaptureRequest {
	return models.CaptureRequest{Modality: modality, Payload: base64.StdEncoding.EncodeToString(raw)}
}

func portraitPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 240, 240))
	for y := 0; y < 240; y++ {
		for x := 0; x < 240; x++ {
			v := uint8((x*7 + y*3) % 256)
			img.Set(x, y, color.RGBA{R: v, G: 255 - v, B: v / 3, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeWAV(t *testing.T, samples []int) []byte {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "voice-*.wav")
	require.NoError(t, err)

	enc := wav.NewEncoder(f, 16000, 16, 1, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 16000},
		Data:           samples,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	return data
}

func toneWAV(t *testing.T) []byte {
	samples := make([]int, 16000)
	for i := range samples {
		samples[i] = int(12000 * math.Sin(2*math.Pi*300*float64(i)/16000))
	}
	return writeWAV(t, samples)
}

func noiseRecording(t *testing.T) []byte {
	rng := rand.New(rand.NewPCG(7, 11))
	samples := make([]int, 16000)
	for i := range samples {
		samples[i] = rng.IntN(20000) - 10000
	}
	return writeWAV(t, samples)
}

// ─────────────────────────────────────────────
// Enroll then verify with the real engine
// ─────────────────────────────────────────────

func TestBiometricFlow_FaceSameImageVerifies(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	img := portraitPNG(t)

	enrolled, err := f.svc.Enroll(ctx, testSessionID, capture(models.Face, img))
	require.NoError(t, err)
	require.True(t, enrolled.Success)
	assert.Equal(t, models.BiometricPending, f.step(t))

	record, err := f.templates.Get(ctx, testUserID, models.Face)
	require.NoError(t, err)
	assert.True(t, record.Enrolled)
	assert.NotEmpty(t, record.EncryptedBlob)

	result, err := f.svc.Verify(ctx, testSessionID, capture(models.Face, img))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1.0, result.Similarity)
	assert.Equal(t, 100.0, result.Confidence)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.Complete, result.Step)
	assert.Equal(t, models.Complete, f.step(t))
}

func TestBiometricFlow_VoiceUnrelatedRecordingFails(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	_, err := f.svc.Enroll(ctx, testSessionID, capture(models.Voice, toneWAV(t)))
	require.NoError(t, err)
	require.Equal(t, models.BiometricPending, f.step(t))

	result, err := f.svc.Verify(ctx, testSessionID, capture(models.Voice, noiseRecording(t)))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Less(t, result.Similarity, result.Threshold)
	assert.Empty(t, result.Token)
	assert.Equal(t, models.BiometricPending, result.Step)
	assert.Equal(t, models.BiometricPending, f.step(t))
}

func TestBiometricFlow_ReEnrollmentOverwrites(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	_, err := f.svc.Enroll(ctx, testSessionID, capture(models.Voice, noiseRecording(t)))
	require.NoError(t, err)
	first, err := f.templates.Get(ctx, testUserID, models.Voice)
	require.NoError(t, err)

	_, err = f.sessions.Modify(ctx, testSessionID, func(s *models.Session) error {
		s.Step, s.BiometricVerified = models.Complete, true
		return nil
	})
	require.NoError(t, err)
	_, err = f.svc.Enroll(ctx, testSessionID, capture(models.Voice, toneWAV(t)))
	require.NoError(t, err)

	records, err := f.templates.ListByOwner(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, first.ID, records[0].ID)
	assert.NotEqual(t, first.EncryptedBlob, records[0].EncryptedBlob)

	result, err := f.svc.Verify(ctx, testSessionID, capture(models.Voice, toneWAV(t)))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1.0, result.Similarity)
}
