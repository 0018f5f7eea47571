package simstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0xNexuz/Tempocash/pkg/config"
	"github.com/0xNexuz/Tempocash/pkg/payment"
)

// RedisClient is the subset of go-redis used by RedisStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// RedisStore keeps records as JSON values under <prefix>:<id>. A settlement
// is claimed with SETNX on <prefix>:<id>:paid before the record is rewritten.
type RedisStore struct {
	client RedisClient
	prefix string
}

// NewRedisStore creates a store on top of an existing redis client.
func NewRedisStore(client RedisClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisClient bootstraps a redis client from configuration and verifies connectivity.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	switch {
	case cfg.URL != "":
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		opts = parsed
	case cfg.Address != "":
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	default:
		return nil, errors.New("redis url or address is required")
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func (s *RedisStore) key(id string) string {
	return s.prefix + ":" + id
}

func (s *RedisStore) paidKey(id string) string {
	return s.key(id) + ":paid"
}

func (s *RedisStore) Get(ctx context.Context, id string) (*payment.Request, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get simulated payment %s: %w", id, err)
	}

	var req payment.Request
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return nil, fmt.Errorf("failed to decode simulated payment %s: %w", id, err)
	}
	return &req, nil
}

func (s *RedisStore) Put(ctx context.Context, req *payment.Request) error {
	existing, err := s.Get(ctx, req.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	merged, err := merge(existing, req)
	if err != nil {
		return err
	}

	if req.IsPaid && (existing == nil || !existing.IsPaid) {
		claimed, err := s.client.SetNX(ctx, s.paidKey(req.ID), req.SettlementTx, 0).Result()
		if err != nil {
			return fmt.Errorf("failed to claim settlement of %s: %w", req.ID, err)
		}
		if !claimed {
			return ErrAlreadyPaid
		}
	}

	body, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to encode simulated payment %s: %w", req.ID, err)
	}
	if err := s.client.Set(ctx, s.key(req.ID), body, 0).Err(); err != nil {
		return fmt.Errorf("failed to put simulated payment %s: %w", req.ID, err)
	}
	return nil
}
