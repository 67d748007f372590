// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a console operator.
// PasswordHash is a bcrypt digest and must never leave trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password carries the plaintext password of a login request only.
	// It is never stored.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest of the password.
	PasswordHash string `json:"-"`

	// Role is either RoleAdmin or RoleUser.
	Role string `json:"role,omitempty"`

	// IsActive disables login for the account when false.
	IsActive bool `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
