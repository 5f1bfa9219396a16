package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/services"
)

// memoryCartStore is an in-memory CartStore for testing.
type memoryCartStore struct {
	carts map[string]*models.Cart
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[string]*models.Cart)}
}

func (s *memoryCartStore) Get(_ context.Context, sessionID string) (*models.Cart, error) {
	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	return cart, nil
}

func (s *memoryCartStore) Set(_ context.Context, cart *models.Cart) error {
	s.carts[cart.UUID] = cart
	return nil
}

func (s *memoryCartStore) Exists(_ context.Context, sessionID string) (bool, error) {
	_, ok := s.carts[sessionID]
	return ok, nil
}

// brokenCartStore fails every call at the transport level.
type brokenCartStore struct{}

var errConnRefused = errors.New("connection refused")

func (brokenCartStore) Get(_ context.Context, _ string) (*models.Cart, error) {
	return nil, &repository.StoreUnavailableError{Op: "get", Err: errConnRefused}
}

func (brokenCartStore) Set(_ context.Context, _ *models.Cart) error {
	return &repository.StoreUnavailableError{Op: "set", Err: errConnRefused}
}

func (brokenCartStore) Exists(_ context.Context, _ string) (bool, error) {
	return false, &repository.StoreUnavailableError{Op: "exists", Err: errConnRefused}
}

func TestGetCart_DefaultWhenMissing(t *testing.T) {
	manager := services.NewCartManager(newMemoryCartStore(), zap.NewNop())

	cart := manager.GetCart(context.Background(), "session-1")
	require.NotNil(t, cart)
	assert.Equal(t, "session-1", cart.UUID)
	assert.Equal(t, models.DefaultPaymentMethod, cart.PaymentMethod)
	assert.Nil(t, cart.Customer)
	assert.Empty(t, cart.Items)
}

func TestGetCart_ReturnsStoredCart(t *testing.T) {
	store := newMemoryCartStore()
	manager := services.NewCartManager(store, zap.NewNop())

	saved := models.NewDefaultCart("session-2")
	saved.AddItem(models.CartItem{
		UUID:        "item-1",
		ProductUUID: "prod-1",
		Price:       decimal.NewFromFloat(10),
		Quantity:    2,
	})
	require.NoError(t, manager.SaveCart(context.Background(), saved))

	cart := manager.GetCart(context.Background(), "session-2")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "prod-1", cart.Items[0].ProductUUID)
}

func TestGetCart_DegradesWhenStoreUnavailable(t *testing.T) {
	manager := services.NewCartManager(brokenCartStore{}, zap.NewNop())

	cart := manager.GetCart(context.Background(), "session-3")
	require.NotNil(t, cart)
	assert.Equal(t, "session-3", cart.UUID)
	assert.Equal(t, models.DefaultPaymentMethod, cart.PaymentMethod)
	assert.Empty(t, cart.Items)
}

func TestSaveCart_PropagatesStoreUnavailable(t *testing.T) {
	manager := services.NewCartManager(brokenCartStore{}, zap.NewNop())

	err := manager.SaveCart(context.Background(), models.NewDefaultCart("session-4"))
	require.Error(t, err)

	var unavailable *repository.StoreUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestCartExists(t *testing.T) {
	store := newMemoryCartStore()
	manager := services.NewCartManager(store, zap.NewNop())

	assert.False(t, manager.CartExists(context.Background(), "session-5"))

	require.NoError(t, manager.SaveCart(context.Background(), models.NewDefaultCart("session-5")))
	assert.True(t, manager.CartExists(context.Background(), "session-5"))
}

func TestCartExists_DegradesToPresentWhenStoreUnavailable(t *testing.T) {
	manager := services.NewCartManager(brokenCartStore{}, zap.NewNop())

	// A broken store must not produce a spurious not-found.
	assert.True(t, manager.CartExists(context.Background(), "session-6"))
}
