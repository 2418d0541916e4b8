package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisClient подмножество команд go-redis, используемых хранилищем
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore хранилище сессий в Redis: JSON значение с TTL.
// Позволяет запускать несколько экземпляров сервиса.
type RedisStore struct {
	client redisClient
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore создает хранилище сессий поверх клиента Redis
func NewRedisStore(client redisClient, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Create создает пустую сессию для комнаты
func (s *RedisStore) Create(ctx context.Context, roomID uuid.UUID) (*Session, error) {
	sess := newSession(roomID, s.now())
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get читает сессию по ID
func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrStorage, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrDecode, err)
	}
	return &sess, nil
}

// Save сохраняет сессию и продлевает TTL
func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = s.now()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: Save - %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, s.key(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - %v", ErrStorage, err)
	}
	return nil
}

// Delete удаляет сессию
func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrStorage, err)
	}
	return nil
}

func (s *RedisStore) key(id uuid.UUID) string {
	return s.prefix + id.String()
}
