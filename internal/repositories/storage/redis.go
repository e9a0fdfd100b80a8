package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; the profile name follows it
	keyPrefix = "tikkle:"

	defaultProfile = "default"
)

// Config holds configuration for the Redis storage
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Profile namespaces the keys so several users can share one Redis
	Profile string
}

// redisStorage implements the Storage interface using Redis strings
type redisStorage struct {
	client  *redis.Client
	profile string
}

// NewRedis creates a new Redis-backed storage
func NewRedis(cfg *Config) (*redisStorage, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	profile := cfg.Profile
	if profile == "" {
		profile = defaultProfile
	}

	return &redisStorage{
		client:  cfg.RedisClient,
		profile: profile,
	}, nil
}

// Get reads a value from Redis
func (r *redisStorage) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	value, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

// Set writes a value to Redis without expiration
func (r *redisStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

func (r *redisStorage) key(key string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, r.profile, key)
}
