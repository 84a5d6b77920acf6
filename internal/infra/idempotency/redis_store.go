package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shareit:idempotency:"

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Reserve(ctx context.Context, key, requestHash string) (*shared.IdempotencyRecord, bool, error) {
	pending, err := json.Marshal(shared.IdempotencyRecord{
		State:       shared.IdempotencyPending,
		RequestHash: requestHash,
	})
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to encode idempotency record")
	}

	ok, err := s.client.SetNX(ctx, keyPrefix+key, pending, s.ttl).Result()
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to reserve idempotency key")
	}
	if ok {
		return nil, true, nil
	}

	existing, err := s.get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		// expired between SETNX and GET; treat as a fresh reservation attempt
		return s.Reserve(ctx, key, requestHash)
	}
	return existing, false, nil
}

func (s *RedisStore) Complete(ctx context.Context, key string, rec shared.IdempotencyRecord) error {
	rec.State = shared.IdempotencyCompleted
	data, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to encode idempotency record")
	}
	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store idempotency record")
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "failed to release idempotency key")
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, key string) (*shared.IdempotencyRecord, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read idempotency record")
	}

	var rec shared.IdempotencyRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, errs.Wrap(err, "failed to decode idempotency record")
	}
	return &rec, nil
}
