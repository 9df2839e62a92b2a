// Package token generates the one-time tokens used by the email
// verification and password-reset flows.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	// verificationCodeDigits is the length of the numeric code users type
	// in manually from the verification email.
	verificationCodeDigits = 6

	// resetTokenBytes is the entropy of the reset link token (160 bits,
	// hex encoded to 40 URL-safe characters).
	resetTokenBytes = 20
)

// Generator produces cryptographically random one-time tokens.
// The zero value is ready to use.
type Generator struct{}

// NewGenerator creates a new token Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewVerificationCode returns a random 6-digit verification code,
// zero-padded so the length is constant.
func (g *Generator) NewVerificationCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < verificationCodeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return fmt.Sprintf("%0*d", verificationCodeDigits, n), nil
}

// NewResetToken returns a random hex-encoded reset token safe for use in
// a URL path segment.
func (g *Generator) NewResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return hex.EncodeToString(b), nil
}
