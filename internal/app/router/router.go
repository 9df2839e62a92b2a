package router

import (
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/platform/http/handler"
	jwtmw "auth_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	auth := r.Group("/api/auth")
	{
		// 新規ユーザー登録（JWT発行 + 認証コードメール送信）
		auth.POST("/signup", authHandler.Signup)
		// ログイン（JWT発行）
		auth.POST("/login", authHandler.Login)
		// セッションCookie破棄
		auth.POST("/logout", authHandler.Logout)
		// メール認証コード消費
		auth.POST("/verify-email", authHandler.VerifyEmail)
		// リセットトークン発行
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		// リセットトークン消費（トークンはリンクのパスに含まれる）
		auth.POST("/reset-password/:token", authHandler.ResetPassword)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストにセッションCookieまたはJWTヘッダーが必要になる
	protected := r.Group("/api/auth")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.GET("/check-auth", authHandler.CheckAuth)
	}

	return r
}
