package usecase

import (
	"context"
	"time"

	"auth_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// Uniqueness of the email is enforced by the storage itself, so a racing
	// duplicate insert fails even when two existence checks both passed.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email address.
	// Returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// Returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// ConsumeVerificationToken atomically marks the user holding the given
	// non-expired verification code as verified and clears both verification
	// fields. The match and the clear are a single conditional update, so of
	// two concurrent calls with the same code exactly one succeeds.
	// Returns ErrTokenNotFound when no pending, non-expired code matches.
	ConsumeVerificationToken(ctx context.Context, code string, now time.Time) (*entity.User, error)

	// ConsumeResetToken atomically replaces the password hash of the user
	// holding the given non-expired reset token and clears both reset fields.
	// Same single-winner guarantee as ConsumeVerificationToken.
	// Returns ErrTokenNotFound when no pending, non-expired token matches.
	ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) (*entity.User, error)

	// SetResetToken stores a new pending reset token for the user with the
	// given email, overwriting any previous one so older reset links stop
	// working. Returns ErrUserNotFound when the email is unknown.
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) (*entity.User, error)
}
