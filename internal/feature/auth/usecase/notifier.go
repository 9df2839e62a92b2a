package usecase

import "context"

// Notifier abstracts the outbound email notifications triggered by auth
// state changes. Delivery is best effort: implementations report failure
// through the returned error, but callers must never roll back or fail the
// state change that triggered the notification.
type Notifier interface {
	// SendVerificationEmail delivers the email verification code.
	SendVerificationEmail(ctx context.Context, email, code string) error

	// SendWelcomeEmail delivers the post-verification welcome message.
	SendWelcomeEmail(ctx context.Context, email, name string) error

	// SendPasswordResetEmail delivers the reset link containing the token.
	SendPasswordResetEmail(ctx context.Context, email, resetURL string) error

	// SendPasswordResetSuccessEmail confirms a completed password reset.
	SendPasswordResetSuccessEmail(ctx context.Context, email string) error
}
