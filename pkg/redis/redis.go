package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis backs the token-revocation list used by logout. A revoked token
// is kept until its natural expiry so the middleware can reject it.
type IRedis interface {
	RevokeToken(ctx context.Context, token string, until time.Duration) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func revocationKey(token string) string {
	return "revoked:" + token
}

func (r *redisClient) RevokeToken(ctx context.Context, token string, until time.Duration) error {
	if until <= 0 {
		// Token already expired, nothing to track.
		return nil
	}

	if err := r.client.Set(ctx, revocationKey(token), "1", until).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error revoking token: %v", err))
		return err
	}

	return nil
}

func (r *redisClient) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	_, err := r.client.Get(ctx, revocationKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logrus.Error(fmt.Sprintf("Error checking token revocation: %v", err))
		return false, err
	}

	return true, nil
}
