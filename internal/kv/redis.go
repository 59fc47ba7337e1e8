package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/luxe-fashion/luxe-backend/config"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

const (
	redisKeyPrefix = "luxe:kv:"
	redisTimeout   = 2 * time.Second
)

// RedisStore keeps the keyspace in Redis so state survives server
// restarts and can be shared between instances.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	logger.Info("Initializing Redis storage", map[string]interface{}{
		"addr": cfg.Addr(),
		"db":   cfg.DB,
	})

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("Failed to load storage key from Redis", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}
	return value, true
}

func (s *RedisStore) Save(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		logger.Warn("Failed to save storage key to Redis", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *RedisStore) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		logger.Warn("Failed to delete storage key from Redis", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Close closes the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
