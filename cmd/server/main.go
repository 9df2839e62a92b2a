package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/di"
	"auth_backend/internal/app/router"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/db"
	platformhttp "auth_backend/internal/platform/http"
	jwtmw "auth_backend/internal/platform/jwt"
	"auth_backend/internal/platform/mail"
	platformredis "auth_backend/internal/platform/redis"
	"auth_backend/internal/platform/token"
)

const sessionTTL = 7 * 24 * time.Hour

func main() {
	// db
	gormDB := db.OpenDB()

	// Redis（利用できない場合はキャッシュなしで継続）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, gormDB)

	// Notifier（Mailtrap送信API）
	mailCfg := mail.LoadConfig()
	notifier := mail.NewMailtrapNotifier(mailCfg, platformhttp.NewHTTPClient(mailCfg.Timeout))

	// Usecase
	jwtGen := jwtmw.NewGenerator(secret, sessionTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen, token.NewGenerator(), notifier, os.Getenv("CLIENT_URL"))

	// Handler
	authH := authhandler.NewAuthHandler(authUC, int(sessionTTL.Seconds()))

	// ルータ生成
	r := router.NewRouter(authH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
