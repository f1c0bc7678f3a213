package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// Init connects the shared client. Client is only assigned after a
// successful ping: when redis is unreachable it stays nil and the helpers
// degrade to no-ops instead of dialing a dead backend on every request.
func Init() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		Client = nil
		return err
	}
	Client = client
	return nil
}

// DenyToken blacklists a JWT id until the token would have expired anyway.
// Used by logout; a failure here is logged by the caller, never surfaced.
func DenyToken(ctx context.Context, jti string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(ctx, "denied:"+jti, "1", ttl).Err()
}

func IsTokenDenied(ctx context.Context, jti string) bool {
	if Client == nil || jti == "" {
		return false
	}
	n, err := Client.Exists(ctx, "denied:"+jti).Result()
	return err == nil && n > 0
}

// ReserveIdempotencyKey returns true when the key was not seen before.
// A replayed key returns false and the caller serves the original order.
func ReserveIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if Client == nil {
		return true, nil
	}
	return Client.SetNX(ctx, "idem:"+key, "1", ttl).Result()
}

// Short-lived account tokens (password reset, email verification).

func SetAccountToken(ctx context.Context, kind, uid, token string, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	return Client.Set(ctx, kind+":"+uid, token, ttl).Err()
}

// ConsumeAccountToken checks the stored token for uid and deletes it on
// match, so every token is single-use.
func ConsumeAccountToken(ctx context.Context, kind, uid, token string) bool {
	if Client == nil || token == "" {
		return false
	}
	key := kind + ":" + uid
	stored, err := Client.Get(ctx, key).Result()
	if err != nil || stored != token {
		return false
	}
	Client.Del(ctx, key)
	return true
}
