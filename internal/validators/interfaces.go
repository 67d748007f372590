// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request shapes before any engine work starts:
// logins, capture payloads (modality, base64, size) and toggles.
//
// Rejections wrap the sentinels in errors.go so the service layer can report
// them as invalid input.
package validators

import "context"

// Validator checks one request value. With fields given, only those fields
// are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
