// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

const (
	defaultTokenIssuer          = "go-bio-console"
	defaultTokenDuration        = time.Hour
	defaultRequestTimeout       = 30 * time.Second
	defaultFaceTolerance        = 0.10
	defaultVoiceThreshold       = 0.65
	defaultVerifyRatePerMinute  = 10
	defaultVerifyBurst          = 5
	defaultMaxPayloadBytes      = 10 << 20
	defaultSessionSweepInterval = time.Minute
	defaultAdapterTimeout       = 15 * time.Second
)

// applyDefaults fills the optional settings that were not provided by any
// source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Biometric.FaceTolerance == 0 {
		cfg.Biometric.FaceTolerance = defaultFaceTolerance
	}
	if cfg.Biometric.VoiceThreshold == 0 {
		cfg.Biometric.VoiceThreshold = defaultVoiceThreshold
	}
	if cfg.Biometric.VerifyRatePerMinute == 0 {
		cfg.Biometric.VerifyRatePerMinute = defaultVerifyRatePerMinute
	}
	if cfg.Biometric.VerifyBurst == 0 {
		cfg.Biometric.VerifyBurst = defaultVerifyBurst
	}
	if cfg.Biometric.MaxPayloadBytes == 0 {
		cfg.Biometric.MaxPayloadBytes = defaultMaxPayloadBytes
	}
	if cfg.Workers.PoolSize == 0 {
		cfg.Workers.PoolSize = runtime.GOMAXPROCS(0)
	}
	if cfg.Workers.SessionSweepInterval == 0 {
		cfg.Workers.SessionSweepInterval = defaultSessionSweepInterval
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. Missing key material is
// a fatal configuration error.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if (cfg.App.AdminLogin == "") != (cfg.App.AdminPassword == "") {
		return fmt.Errorf("%w: admin login and password must be set together", ErrInvalidAppConfigs)
	}

	if cfg.Biometric.EncryptionKey == "" || cfg.Biometric.EncryptionSalt == "" {
		return fmt.Errorf("%w: encryption key and salt are required", ErrInvalidBiometricConfigs)
	}
	if cfg.Biometric.FaceCascadePath == "" {
		return fmt.Errorf("%w: face cascade path is required", ErrInvalidBiometricConfigs)
	}
	if cfg.Biometric.FaceTolerance <= 0 || cfg.Biometric.FaceTolerance >= 1 {
		return fmt.Errorf("%w: face tolerance must be in (0, 1)", ErrInvalidBiometricConfigs)
	}
	if cfg.Biometric.VoiceThreshold <= -1 || cfg.Biometric.VoiceThreshold > 1 {
		return fmt.Errorf("%w: voice threshold must be in (-1, 1]", ErrInvalidBiometricConfigs)
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return fmt.Errorf("%w: persistent database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: http or grpc address is required", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
