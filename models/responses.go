package models

import "time"

// LoginResult is produced by a successful password check.
type LoginResult struct {
	Token      string     `json:"token"`
	Step       AuthStep   `json:"step"`
	UserID     int64      `json:"user_id"`
	Login      string     `json:"login"`
	Role       string     `json:"role"`
	Modalities []Modality `json:"enrolled_modalities"`
}

// EnrollResult is the outcome of an enrollment. Token is set only when the
// enrollment completed the login and a refreshed credential was issued.
type EnrollResult struct {
	Success  bool     `json:"success"`
	Modality Modality `json:"biometric_type"`
	Step     AuthStep `json:"step"`
	Token    string   `json:"token,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// VerifyResult is the outcome of a verification. A non-matching capture is
// not an error: Success is false and Confidence is still reported.
type VerifyResult struct {
	Success    bool     `json:"success"`
	Confidence float64  `json:"confidence"`
	Similarity float64  `json:"similarity"`
	Threshold  float64  `json:"threshold"`
	Step       AuthStep `json:"step"`
	Token      string   `json:"token,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// ToggleResult reports the new state of a record.
type ToggleResult struct {
	Success  bool     `json:"success"`
	Modality Modality `json:"biometric_type"`
	Enabled  bool     `json:"enabled"`
	Step     AuthStep `json:"step"`
}

// ModalityStatus describes one modality of a user.
type ModalityStatus struct {
	Modality Modality `json:"biometric_type"`
	Stored   bool     `json:"stored"`
	Enrolled bool     `json:"enrolled"`
}

// SessionStatus is the /api/auth/me view of the current session.
type SessionStatus struct {
	UserID            int64            `json:"user_id"`
	Login             string           `json:"login"`
	Role              string           `json:"role"`
	Step              AuthStep         `json:"step"`
	BiometricVerified bool             `json:"biometric_verified"`
	Modalities        []ModalityStatus `json:"modalities"`
}

// DetectFaceResult is the preview answer for a face image.
type DetectFaceResult struct {
	FaceDetected bool   `json:"face_detected"`
	FaceCount    int    `json:"face_count"`
	Message      string `json:"message"`
}

// ErrorResponse is the JSON error body of the HTTP API.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"
	HealthDown     = "down"
)

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// ConsoleSession is the claim view returned by GET /api/console/session.
type ConsoleSession struct {
	UserID            int64     `json:"user_id"`
	SessionID         string    `json:"session_id"`
	Role              string    `json:"role"`
	BiometricVerified bool      `json:"biometric_verified"`
	IssuedAt          time.Time `json:"issued_at"`
	ExpiresAt         time.Time `json:"expires_at"`
}
