package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		AdminLogin    string   `json:"admin_login"`
		AdminPassword string   `json:"admin_password"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Biometric struct {
		EncryptionKey            string  `json:"encryption_key"`
		EncryptionSalt           string  `json:"encryption_salt"`
		FaceTolerance            float64 `json:"face_tolerance"`
		VoiceThreshold           float64 `json:"voice_threshold"`
		FaceCascadePath          string  `json:"face_cascade_path"`
		EnrollmentCompletesLogin bool    `json:"enrollment_completes_login"`
		VerifyRatePerMinute      float64 `json:"verify_rate_per_minute"`
		VerifyBurst              int     `json:"verify_burst"`
		MaxPayloadBytes          int     `json:"max_payload_bytes"`
	} `json:"biometric,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PoolSize             int      `json:"pool_size"`
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			AdminLogin:    jsonCfg.App.AdminLogin,
			AdminPassword: jsonCfg.App.AdminPassword,
			Version:       jsonCfg.App.Version,
		},
		Biometric: Biometric{
			EncryptionKey:            jsonCfg.Biometric.EncryptionKey,
			EncryptionSalt:           jsonCfg.Biometric.EncryptionSalt,
			FaceTolerance:            jsonCfg.Biometric.FaceTolerance,
			VoiceThreshold:           jsonCfg.Biometric.VoiceThreshold,
			FaceCascadePath:          jsonCfg.Biometric.FaceCascadePath,
			EnrollmentCompletesLogin: jsonCfg.Biometric.EnrollmentCompletesLogin,
			VerifyRatePerMinute:      jsonCfg.Biometric.VerifyRatePerMinute,
			VerifyBurst:              jsonCfg.Biometric.VerifyBurst,
			MaxPayloadBytes:          jsonCfg.Biometric.MaxPayloadBytes,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PoolSize:             jsonCfg.Workers.PoolSize,
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
