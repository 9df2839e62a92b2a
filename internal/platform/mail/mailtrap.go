package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"auth_backend/internal/feature/auth/usecase"
)

// MailtrapNotifier はMailtrap送信APIでメール通知を配信するNotifier実装です。
type MailtrapNotifier struct {
	cfg    Config
	client *http.Client
}

// MailtrapNotifierがNotifierを実装していることをコンパイル時に検証します。
var _ usecase.Notifier = (*MailtrapNotifier)(nil)

// NewMailtrapNotifier は指定された設定とHTTPクライアントでMailtrapNotifierの新しいインスタンスを生成します。
func NewMailtrapNotifier(cfg Config, client *http.Client) *MailtrapNotifier {
	return &MailtrapNotifier{cfg: cfg, client: client}
}

// address is the sender/recipient shape of the Mailtrap send API.
type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// sendRequest is the request body of POST /api/send.
type sendRequest struct {
	From     address   `json:"from"`
	To       []address `json:"to"`
	Subject  string    `json:"subject"`
	HTML     string    `json:"html"`
	Category string    `json:"category,omitempty"`
}

// send はMailtrap APIにメール送信リクエストを発行します。
func (m *MailtrapNotifier) send(ctx context.Context, recipient, subject, html, category string) error {
	body := sendRequest{
		From:     address{Email: m.cfg.SenderEmail, Name: m.cfg.SenderName},
		To:       []address{{Email: recipient}},
		Subject:  subject,
		HTML:     html,
		Category: category,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	u := fmt.Sprintf("%s/api/send", m.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		// レスポンスボディの先頭のみログ用に読む
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("mailtrap http %d: %s", res.StatusCode, detail)
	}

	return nil
}

// SendVerificationEmail はメール認証コードを送信します。
func (m *MailtrapNotifier) SendVerificationEmail(ctx context.Context, email, code string) error {
	html := strings.ReplaceAll(verificationEmailTemplate, "{verificationCode}", code)
	return m.send(ctx, email, "Verify your email", html, "Email Verification")
}

// SendWelcomeEmail は認証完了後のウェルカムメールを送信します。
func (m *MailtrapNotifier) SendWelcomeEmail(ctx context.Context, email, name string) error {
	html := strings.ReplaceAll(welcomeEmailTemplate, "{name}", name)
	return m.send(ctx, email, "Welcome!", html, "Welcome")
}

// SendPasswordResetEmail はリセットリンクを含むメールを送信します。
func (m *MailtrapNotifier) SendPasswordResetEmail(ctx context.Context, email, resetURL string) error {
	html := strings.ReplaceAll(passwordResetRequestTemplate, "{resetURL}", resetURL)
	return m.send(ctx, email, "Reset password", html, "Reset Password")
}

// SendPasswordResetSuccessEmail はパスワード変更完了メールを送信します。
func (m *MailtrapNotifier) SendPasswordResetSuccessEmail(ctx context.Context, email string) error {
	return m.send(ctx, email, "Reset Password Success", passwordResetSuccessTemplate, "Reset Password Success")
}
