// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "auth_backend/internal/feature/auth/adapters"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/cache"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, the MySQL repository is wrapped with a caching
// decorator for ID lookups. Otherwise it returns the plain repository.
func NewUserRepository(rdb *redis.Client, db *gorm.DB) usecase.UserRepository {
	repo := authadapters.NewUserMySQL(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, 5*time.Minute, repo, "users")
	}
	return repo
}
