package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/fitness-tracker/internal/logger"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
)

// UserCacheRepository caches authenticated users in Redis so the auth
// middleware does not hit Postgres on every request.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a cache whose entries live for expiration.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	key := userCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.FromContext(ctx).Debugw("cache get", "key", key, "hit", err == nil, "error", err)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal(val, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Set stores user. The password hash is never written to the cache.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userCacheKey(user.UserID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.FromContext(ctx).Debugw("cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}
