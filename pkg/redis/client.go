package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sessions live inside the JWT itself; redis only backs the OTP delivery
// cooldown, so the surface here is connect plus SetNX.

var client *redis.Client

// Init connects the package-level client and verifies the connection.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}

	if password != "" {
		opts.Password = password
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.Ping(ctx).Err()
}

// SetClient replaces the package-level client (used for testing)
func SetClient(c *redis.Client) {
	client = c
}

// SetNX sets a key with a TTL only if it does not already exist.
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}
