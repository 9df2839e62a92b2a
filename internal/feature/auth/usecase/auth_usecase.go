// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"auth_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// verificationTokenTTL はメール認証コードの有効期間を定義します。
	verificationTokenTTL = 24 * time.Hour

	// resetTokenTTL はパスワードリセットトークンの有効期間を定義します。
	resetTokenTTL = time.Hour
)

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// TokenGenerator はワンタイムトークン生成のインターフェースを定義します。
// 認証コードとリセットトークンは用途が異なるため別メソッドとします。
type TokenGenerator interface {
	// NewVerificationCode は手入力可能なメール認証コードを生成します。
	NewVerificationCode() (string, error)
	// NewResetToken はリセットリンクに埋め込むURLセーフなトークンを生成します。
	NewResetToken() (string, error)
}

// authUsecase は認証ライフサイクルのビジネスロジックを実装します。
// 呼び出し間で内部状態を持たず、全ての状態はリポジトリに委ねます。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	tokens       TokenGenerator
	notifier     Notifier
	clientURL    string
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// clientURLはリセットリンクの宛先となるフロントエンドのベースURLです。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator, tokens TokenGenerator, notifier Notifier, clientURL string) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		tokens:       tokens,
		notifier:     notifier,
		clientURL:    clientURL,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// 未認証状態のユーザーを作成し、認証コード付きメールを送信した上で
// セッション用JWTトークンを発行します。
func (u *authUsecase) Signup(ctx context.Context, email, password, name string) (*entity.User, string, error) {
	// 必須フィールドを検証（バリデーション通過前は一切永続化しない）
	if email == "" || password == "" || name == "" {
		return nil, "", fmt.Errorf("%w: email, password and name are required", ErrValidation)
	}
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := u.tokens.NewVerificationCode()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	expiresAt := time.Now().Add(verificationTokenTTL)
	user := &entity.User{
		Email:                      email,
		Password:                   string(hashed),
		Name:                       name,
		VerificationToken:          &code,
		VerificationTokenExpiresAt: &expiresAt,
	}
	// メール重複はストレージのユニーク制約で検出される（チェック後の競合でも安全）
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	// 通知はベストエフォート: 失敗してもユーザー作成は既にコミット済み
	u.notify(ctx, "verification", user.Email, func(ctx context.Context) error {
		return u.notifier.SendVerificationEmail(ctx, user.Email, code)
	})

	return user, token, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// メールアドレスとパスワードを検証し、署名済みJWTトークンを生成します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		// インフラ障害は認証失敗と区別して呼び出し元に返す
		return nil, "", err
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	// どちらが誤っていたかは意図的に開示しない
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return user, token, nil
}

// VerifyEmail は認証コードを消費してユーザーを認証済み状態に遷移させます。
// 期限切れのコードと存在しないコードは呼び出し元から区別できません。
// コードは一度しか使用できず、2回目以降はErrInvalidOrExpiredTokenを返します。
func (u *authUsecase) VerifyEmail(ctx context.Context, code string) (*entity.User, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: verification code is required", ErrValidation)
	}

	// 照合・期限チェック・クリアは単一の条件付き更新（同時消費でも勝者は一人）
	user, err := u.users.ConsumeVerificationToken(ctx, code, time.Now())
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, err
	}

	u.notify(ctx, "welcome", user.Email, func(ctx context.Context) error {
		return u.notifier.SendWelcomeEmail(ctx, user.Email, user.Name)
	})

	return user, nil
}

// ForgotPassword は新しいリセットトークンを発行しメールで送信します。
// 既存の未消費トークンは上書きされ、古いリセットリンクは無効になります。
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	token, err := u.tokens.NewResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	user, err := u.users.SetResetToken(ctx, email, token, time.Now().Add(resetTokenTTL))
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", u.clientURL, token)
	u.notify(ctx, "reset link", user.Email, func(ctx context.Context) error {
		return u.notifier.SendPasswordResetEmail(ctx, user.Email, resetURL)
	})

	return nil
}

// ResetPassword はリセットトークンを消費してパスワードを更新します。
// トークンは一度しか使用できず、期限切れ・不明の場合はErrInvalidOrExpiredTokenを返します。
func (u *authUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return fmt.Errorf("%w: reset token is required", ErrValidation)
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.users.ConsumeResetToken(ctx, token, string(hashed), time.Now())
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	u.notify(ctx, "reset success", user.Email, func(ctx context.Context) error {
		return u.notifier.SendPasswordResetSuccessEmail(ctx, user.Email)
	})

	return nil
}

// CheckAuth は検証済みセッションのユーザーIDからユーザーを取得します。
// トークン発行後にアカウントが消えている場合、ErrUserNotFoundを返します。
func (u *authUsecase) CheckAuth(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// notify は通知を送信し、失敗をログに記録します。
// 通知失敗は呼び出し元の操作結果に影響させません（状態変更は既にコミット済み）。
func (u *authUsecase) notify(ctx context.Context, kind, email string, send func(context.Context) error) {
	if err := send(ctx); err != nil {
		slog.Warn("failed to send notification", "kind", kind, "email", email, "error", err)
	}
}
