package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront-service/models"
)

// ErrCartNotFound is returned when no cart is stored under the session key.
var ErrCartNotFound = errors.New("cart not found")

// DefaultCartTTL bounds how long an untouched cart survives in the store.
const DefaultCartTTL = 24 * time.Hour

// StoreUnavailableError wraps a transport-level failure of the cart store so
// that callers never have to know Redis-native error types.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("cart store unavailable during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// CartStore persists one cart per session key in a TTL-bounded store.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Set(ctx context.Context, cart *models.Cart) error
	Exists(ctx context.Context, sessionID string) (bool, error)
}

// RedisCartStore implements CartStore with one JSON blob per cart.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a RedisCartStore. A non-positive ttl falls back
// to DefaultCartTTL.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Get fetches and decodes the cart stored for sessionID. A missing key is
// ErrCartNotFound; transport failures come back as *StoreUnavailableError.
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, &StoreUnavailableError{Op: "get", Err: err}
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode stored cart: %w", err)
	}
	return &cart, nil
}

// Set writes the cart under its own UUID with a fresh TTL. There is no per-key
// locking or compare-and-swap: concurrent writers for the same session are
// last-write-wins on the whole blob.
func (s *RedisCartStore) Set(ctx context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, s.key(cart.UUID), data, s.ttl).Err(); err != nil {
		return &StoreUnavailableError{Op: "set", Err: err}
	}
	return nil
}

// Exists reports whether a cart is stored for sessionID.
func (s *RedisCartStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(sessionID)).Result()
	if err != nil {
		return false, &StoreUnavailableError{Op: "exists", Err: err}
	}
	return n > 0, nil
}
