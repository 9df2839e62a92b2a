// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains authentication credentials, verification state and the
// pending one-time tokens used by the verification and password-reset
// flows.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// IsVerified reports whether the user has proven control of their
	// email address. It only ever transitions false to true.
	IsVerified bool `gorm:"not null;default:false"`

	// VerificationToken is the pending email verification code.
	// It is set together with VerificationTokenExpiresAt and both are
	// cleared when the code is consumed.
	VerificationToken *string `gorm:"size:64;index"`

	// VerificationTokenExpiresAt is the instant the pending
	// verification code stops being accepted.
	VerificationTokenExpiresAt *time.Time

	// ResetPasswordToken is the pending password reset token.
	// It is set together with ResetPasswordExpiresAt and both are
	// cleared when the token is consumed.
	ResetPasswordToken *string `gorm:"size:64;index"`

	// ResetPasswordExpiresAt is the instant the pending reset token
	// stops being accepted.
	ResetPasswordExpiresAt *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// HasPendingVerification returns true while a verification code is
// outstanding, regardless of whether it has already expired.
func (u *User) HasPendingVerification() bool {
	return u.VerificationToken != nil && u.VerificationTokenExpiresAt != nil
}

// HasPendingReset returns true while a password reset token is
// outstanding, regardless of whether it has already expired.
func (u *User) HasPendingReset() bool {
	return u.ResetPasswordToken != nil && u.ResetPasswordExpiresAt != nil
}
