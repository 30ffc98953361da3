package model

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"house_price/internal/domain"
	"house_price/pkg/errcodes"
)

// RedisSource читает артефакт из строкового ключа Redis.
type RedisSource struct {
	client *redis.Client
	key    string
}

func NewRedisSource(client *redis.Client, key string) *RedisSource {
	return &RedisSource{client: client, key: key}
}

func (s *RedisSource) String() string {
	return "redis:" + s.key
}

func (s *RedisSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.NewError(errcodes.ModelUnavailable, fmt.Sprintf("no model under key %q", s.key))
	}

	if err != nil {
		return nil, fmt.Errorf("redis.Get: %w", err)
	}

	return data, nil
}

// Publish кладёт артефакт в Redis без срока жизни.
func Publish(ctx context.Context, client *redis.Client, key string, a *Artifact) error {
	var buf bytes.Buffer

	if err := Encode(&buf, a); err != nil {
		return err
	}

	if err := client.Set(ctx, key, buf.Bytes(), 0).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}
