package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранилище ключ-значение поверх Redis
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore создает хранилище поверх клиента Redis
// prefix добавляется ко всем ключам, ttl = 0 - без срока жизни
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get возвращает значение по ключу, ok = false если ключа нет
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrInvalidKey
	}

	value, err := s.client.Get(ctx, s.fullKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - redis get %s: %v", ErrExecQuery, key, err)
	}

	return value, true, nil
}

// Set сохраняет значение по ключу
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}

	if err := s.client.Set(ctx, s.fullKey(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set %s: %v", ErrExecQuery, key, err)
	}
	return nil
}

// Remove удаляет ключ
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	if err := s.client.Del(ctx, s.fullKey(key)).Err(); err != nil {
		return fmt.Errorf("%w: Remove - redis del %s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (s *RedisStore) fullKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}
