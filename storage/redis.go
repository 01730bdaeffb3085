package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/akum103/ats-resume-matcher/config"
)

const resumeKeyPrefix = "resume:"

// RedisResumeStore backs the resume store with one Redis string per user
type RedisResumeStore struct {
	client *redis.Client
}

// NewRedisResumeStore creates a Redis-backed resume store and verifies the
// connection
func NewRedisResumeStore(ctx context.Context, cfg *config.Config) (*RedisResumeStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisResumeStore{client: client}, nil
}

// Close closes the underlying Redis client
func (s *RedisResumeStore) Close() error {
	return s.client.Close()
}

// Save overwrites the stored resume for the user
func (s *RedisResumeStore) Save(ctx context.Context, user, text string) error {
	if err := s.client.Set(ctx, resumeKey(user), text, 0).Err(); err != nil {
		return fmt.Errorf("failed to store resume: %w", err)
	}
	return nil
}

// Load returns the stored resume for the user, if any
func (s *RedisResumeStore) Load(ctx context.Context, user string) (string, bool, error) {
	text, err := s.client.Get(ctx, resumeKey(user)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load resume: %w", err)
	}
	return text, true, nil
}

func resumeKey(user string) string {
	return resumeKeyPrefix + NormalizeUser(user)
}
