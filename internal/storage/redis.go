package storage

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore is a Redis implementation of Store, for deployments where the
// cart/session namespace should outlive the process or be shared between
// replicas. Values never expire; the stores own their keys' lifecycle.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance at addr and pings it.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Get returns the value for key and whether the key was present.
func (s *RedisStore) Get(key string) ([]byte, bool, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, true, nil
}

// Set writes value under key with no expiry.
func (s *RedisStore) Set(key string, value []byte) error {
	if err := s.client.Set(context.Background(), key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *RedisStore) Delete(key string) error {
	if err := s.client.Del(context.Background(), key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
