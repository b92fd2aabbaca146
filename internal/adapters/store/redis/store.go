package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "remit:state:"

// Store keeps client state in Redis as JSON, one key per user.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.StateStore = (*Store)(nil)

// NewClient opens a Redis client and checks the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// NewStore wraps client. A ttl of zero stores keys without expiry.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(userID string) string {
	return keyPrefix + userID
}

func (s *Store) Get(ctx context.Context, userID string) (*domain.ClientState, error) {
	raw, err := s.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read client state: %w", err)
	}
	var state domain.ClientState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode client state: %w", err)
	}
	return &state, nil
}

func (s *Store) Put(ctx context.Context, userID string, state domain.ClientState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode client state: %w", err)
	}
	if err := s.client.Set(ctx, key(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write client state: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete client state: %w", err)
	}
	return nil
}
