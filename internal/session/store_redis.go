package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"aurum/internal/platform/redis"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/platform/sentinel"
)

// RedisStore keeps drafts in Redis as JSON with the session TTL, so an
// abandoned form disappears with its session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func draftKey(sessionID string) string {
	return "aurum:draft:" + sessionID
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, d Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "encode draft")
	}
	if err := s.client.Set(ctx, draftKey(sessionID), payload, s.ttl).Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "save draft")
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (Draft, error) {
	payload, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return Draft{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Draft{}, dErrors.Wrap(err, dErrors.CodeStorage, "load draft")
	}
	var d Draft
	if err := json.Unmarshal(payload, &d); err != nil {
		return Draft{}, dErrors.Wrap(err, dErrors.CodeStorage, "decode draft")
	}
	return d, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "clear draft")
	}
	return nil
}
