// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching of
// ID lookups. CheckAuth hits FindByID on every authenticated request, so
// this is the one read path worth caching. It implements the decorator
// pattern, transparently adding caching without modifying the underlying
// repository.
//
// Email lookups are never cached: Login must always compare against the
// freshest password hash. Every mutation invalidates the affected ID key.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingUserRepository implements usecase.UserRepository.
var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// cacheKey generates the cache key for a user ID.
func (c *CachingUserRepository) cacheKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// invalidate drops the cached entry for a user ID (best effort).
func (c *CachingUserRepository) invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(id)).Err()
}

// Create passes through to the underlying repository.
// A freshly created user has no cache entry to invalidate.
func (c *CachingUserRepository) Create(ctx context.Context, user *entity.User) error {
	return c.inner.Create(ctx, user)
}

// FindByEmail always goes to the underlying repository.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

// FindByID retrieves a user, checking cache first then falling back to the database.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// ConsumeVerificationToken consumes the code and invalidates the winner's cache entry.
func (c *CachingUserRepository) ConsumeVerificationToken(ctx context.Context, code string, now time.Time) (*entity.User, error) {
	user, err := c.inner.ConsumeVerificationToken(ctx, code, now)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, user.ID)
	return user, nil
}

// ConsumeResetToken consumes the token and invalidates the winner's cache entry.
func (c *CachingUserRepository) ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) (*entity.User, error) {
	user, err := c.inner.ConsumeResetToken(ctx, token, passwordHash, now)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, user.ID)
	return user, nil
}

// SetResetToken stores the token and invalidates the user's cache entry.
func (c *CachingUserRepository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) (*entity.User, error) {
	user, err := c.inner.SetResetToken(ctx, email, token, expiresAt)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, user.ID)
	return user, nil
}
