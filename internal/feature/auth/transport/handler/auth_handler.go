// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録し、ユーザーとセッショントークンを返します。
	Signup(ctx context.Context, email, password, name string) (*entity.User, string, error)
	// Login はユーザーを認証し、ユーザーとセッショントークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// VerifyEmail は認証コードを消費してユーザーを認証済みにします。
	VerifyEmail(ctx context.Context, code string) (*entity.User, error)
	// ForgotPassword はリセットトークンを発行しメールで送信します。
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword はリセットトークンを消費してパスワードを更新します。
	ResetPassword(ctx context.Context, token, newPassword string) error
	// CheckAuth はセッションのユーザーIDからユーザーを取得します。
	CheckAuth(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth            AuthUsecase
	cookieMaxAgeSec int
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// cookieMaxAgeSecはセッションCookieの有効期間で、JWTの有効期間と揃えます。
func NewAuthHandler(auth AuthUsecase, cookieMaxAgeSec int) *AuthHandler {
	return &AuthHandler{auth: auth, cookieMaxAgeSec: cookieMaxAgeSec}
}

// setSessionCookie はセッショントークンをHTTP-only Cookieとして設定します。
// トランスポートの責務はハンドラー層にあり、トークン発行側は関与しません。
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(jwtmw.SessionCookieName, token, h.cookieMaxAgeSec, "/", "", secure, true)
}

// clearSessionCookie はセッションCookieを破棄します。
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(jwtmw.SessionCookieName, "", -1, "/", "", secure, true)
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時はセッションCookieを設定し201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Success: false, Message: "invalid request"})
		return
	}
	user, token, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.writeError(c, "signup", req.Email, err)
		return
	}
	h.setSessionCookie(c, token)
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{
		Success: true,
		Message: "user created successfully",
		User:    dto.NewUserRes(user),
		Token:   token,
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はセッションCookieを設定し200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Success: false, Message: "invalid request"})
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		h.writeError(c, "login", req.Email, err)
		return
	}
	h.setSessionCookie(c, token)
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{
		Success: true,
		Message: "login success",
		User:    dto.NewUserRes(user),
		Token:   token,
	})
}

// Logout はセッションCookieを破棄します。
// サーバー側に状態を持たないため、常に成功します。
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, dto.MessageRes{Success: true, Message: "logout success"})
}

// VerifyEmail はメール認証APIエンドポイントを処理します。
// 期限切れのコードと存在しないコードは同一のレスポンスになります。
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify email validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Success: false, Message: "invalid request"})
		return
	}
	user, err := h.auth.VerifyEmail(c.Request.Context(), req.Code)
	if err != nil {
		h.writeError(c, "verify email", "", err)
		return
	}
	slog.Info("email verification successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{
		Success: true,
		Message: "verification success",
		User:    dto.NewUserRes(user),
	})
}

// ForgotPassword はリセットトークン発行APIエンドポイントを処理します。
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("forgot password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Success: false, Message: "invalid request"})
		return
	}
	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.writeError(c, "forgot password", req.Email, err)
		return
	}
	slog.Info("reset password token sent", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageRes{Success: true, Message: "reset password token sent"})
}

// ResetPassword はパスワード再設定APIエンドポイントを処理します。
// トークンはリセットリンクのパスパラメータから受け取ります。
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("reset password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Success: false, Message: "invalid request"})
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		h.writeError(c, "reset password", "", err)
		return
	}
	slog.Info("password reset successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageRes{Success: true, Message: "password reset success"})
}

// CheckAuth は認証済みセッションのユーザー情報を返します。
// AuthRequiredミドルウェアが設定したユーザーIDを前提とします。
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, dto.MessageRes{Success: false, Message: "unauthorized"})
		return
	}
	user, err := h.auth.CheckAuth(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, "check auth", "", err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthRes{
		Success: true,
		Message: "authenticated",
		User:    dto.NewUserRes(user),
	})
}

// writeError はユースケースエラーをHTTPステータスとレスポンスに変換します。
// 全てのエラー種別を明示的にマッピングし、未知のエラーは詳細を隠して500を返します。
func (h *AuthHandler) writeError(c *gin.Context, op, email string, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, usecase.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		status = http.StatusConflict
		message = "user with this email already exists"
	case errors.Is(err, usecase.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "invalid credentials"
	case errors.Is(err, usecase.ErrInvalidOrExpiredToken):
		status = http.StatusBadRequest
		message = "invalid or expired token"
	case errors.Is(err, usecase.ErrUserNotFound):
		status = http.StatusNotFound
		message = "user not found"
	default:
		// インフラ障害の詳細はクライアントに漏らさない
		status = http.StatusInternalServerError
		message = "internal server error"
	}

	slog.Warn(op+" failed", "error", err, "email", email, "remote_addr", c.ClientIP())
	c.JSON(status, dto.MessageRes{Success: false, Message: message})
}
