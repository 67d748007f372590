package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// CaptureRequest carries one raw capture for enrollment or verification.
// Payload is base64, optionally prefixed with a data URL header
// ("data:image/png;base64,").
type CaptureRequest struct {
	Modality Modality `json:"biometric_type"`
	Payload  string   `json:"payload"`
}

// ToggleRequest enables or disables an enrolled modality.
type ToggleRequest struct {
	Modality Modality `json:"biometric_type"`
	Enabled  bool     `json:"enabled"`
}

// DetectFaceRequest asks for a face count preview of an image.
type DetectFaceRequest struct {
	Payload string `json:"payload"`
}
