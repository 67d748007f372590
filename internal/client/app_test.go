// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"testing"

	"github.com/MKhiriev/go-bio-console/internal/adapter"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/mock"
	"github.com/MKhiriev/go-bio-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCreds = Credentials{Login: "alice", Password: "secret"}

func newTestApp(t *testing.T, a *mock.MockConsoleAdapter, commands []Command) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	app, err := NewApp(a, testCreds, commands, out, logger.Nop())
	require.NoError(t, err)
	app.readFile = func(name string) ([]byte, error) {
		if name == "missing" {
			return nil, os.ErrNotExist
		}
		return []byte("capture:" + name), nil
	}
	return app, out
}

func encoded(name string) string {
	return base64.StdEncoding.EncodeToString([]byte("capture:" + name))
}

// ── NewApp ───────────────────────────────────────────────────────────────────

func TestNewApp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockConsoleAdapter(ctrl)

	_, err := NewApp(a, testCreds, nil, &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoCommands)

	_, err = NewApp(a, Credentials{Login: "alice"}, []Command{{Name: CmdStatus}}, &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoCredentials)

	_, err = NewApp(a, Credentials{}, []Command{{Name: CmdHealth}}, &bytes.Buffer{}, logger.Nop())
	assert.NoError(t, err)
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestRun_PublicCommandsSkipLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockConsoleAdapter(ctrl)

	a.EXPECT().Health(gomock.Any()).Return(models.HealthStatus{Status: models.HealthOK, Database: "ok", Version: "1.0.0"}, nil)
	a.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)

	app, out := newTestApp(t, a, []Command{{Name: CmdHealth}, {Name: CmdVersion}})
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "health: ok")
	assert.Contains(t, out.String(), "server version: 1.0.0")
}

func TestRun_EnrollVerifySession(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockConsoleAdapter(ctrl)

	gomock.InOrder(
		a.EXPECT().Login(gomock.Any(), "alice", "secret").
			Return(models.LoginResult{UserID: 42, Login: "alice", Step: models.EnrollmentRequired}, nil),
		a.EXPECT().Enroll(gomock.Any(), models.CaptureRequest{Modality: models.Face, Payload: encoded("enroll.png")}).
			Return(models.EnrollResult{Success: true, Modality: models.Face, Step: models.BiometricPending}, nil),
		a.EXPECT().Verify(gomock.Any(), models.CaptureRequest{Modality: models.Face, Payload: encoded("probe.png")}).
			Return(models.VerifyResult{Success: true, Confidence: 0.98, Step: models.Complete}, nil),
		a.EXPECT().ConsoleSession(gomock.Any()).
			Return(models.ConsoleSession{UserID: 42, SessionID: "sid-1", Role: models.RoleUser, BiometricVerified: true}, nil),
		a.EXPECT().Logout(gomock.Any()).Return(nil),
	)

	app, out := newTestApp(t, a, []Command{
		{Name: CmdEnroll, Modality: models.Face, Path: "enroll.png"},
		{Name: CmdVerify, Modality: models.Face, Path: "probe.png"},
		{Name: CmdSession},
	})
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "step enrollment_required")
	assert.Contains(t, out.String(), "enrolled face, step biometric_pending")
	assert.Contains(t, out.String(), "match true")
	assert.Contains(t, out.String(), "session sid-1 for user 42")
}

func TestRun_MismatchStopsAndLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockConsoleAdapter(ctrl)

	a.EXPECT().Login(gomock.Any(), "alice", "secret").
		Return(models.LoginResult{Step: models.BiometricPending, Modalities: []models.Modality{models.Voice}}, nil)
	a.EXPECT().Verify(gomock.Any(), gomock.Any()).
		Return(models.VerifyResult{Success: false, Confidence: 0.3, Step: models.BiometricPending}, nil)
	a.EXPECT().Logout(gomock.Any()).Return(nil)

	app, out := newTestApp(t, a, []Command{
		{Name: CmdVerify, Modality: models.Voice, Path: "probe.wav"},
		{Name: CmdSession},
	})
	err := app.Run(context.Background())

	assert.ErrorIs(t, err, ErrNotVerified)
	assert.Contains(t, out.String(), "enrolled: voice")
}

func TestRun_LoginFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockConsoleAdapter(ctrl)

	a.EXPECT().Login(gomock.Any(), "alice", "secret").Return(models.LoginResult{}, adapter.ErrUnauthorized)

	app, _ := newTestApp(t, a, []Command{{Name: CmdStatus}})
	err := app.Run(context.Background())

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestRun_AdapterErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockConsoleAdapter(ctrl)

	a.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.LoginResult{Step: models.Complete}, nil)
	a.EXPECT().Toggle(gomock.Any(), models.ToggleRequest{Modality: models.Face, Enabled: true}).
		Return(models.ToggleResult{}, adapter.ErrConflict)
	a.EXPECT().Logout(gomock.Any()).Return(errors.New("connection reset"))

	app, _ := newTestApp(t, a, []Command{{Name: CmdToggle, Modality: models.Face, Enabled: true}})
	err := app.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Contains(t, err.Error(), "toggle")
}

func TestRun_UnreadableCapture(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockConsoleAdapter(ctrl)

	a.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.LoginResult{Step: models.Complete}, nil)
	a.EXPECT().Logout(gomock.Any()).Return(nil)

	app, _ := newTestApp(t, a, []Command{{Name: CmdDetect, Path: "missing"}})
	err := app.Run(context.Background())

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_StatusAndDetect(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockConsoleAdapter(ctrl)

	a.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.LoginResult{Step: models.Complete}, nil)
	a.EXPECT().Me(gomock.Any()).Return(models.SessionStatus{
		Step:       models.Complete,
		Modalities: []models.ModalityStatus{{Modality: models.Face, Stored: true, Enrolled: false}},
	}, nil)
	a.EXPECT().DetectFace(gomock.Any(), encoded("group.jpg")).
		Return(models.DetectFaceResult{FaceDetected: true, FaceCount: 3, Message: "multiple faces detected"}, nil)
	a.EXPECT().Logout(gomock.Any()).Return(nil)

	app, out := newTestApp(t, a, []Command{{Name: CmdStatus}, {Name: CmdDetect, Path: "group.jpg"}})
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "face: stored true, enabled false")
	assert.Contains(t, out.String(), "faces: 3")
}
