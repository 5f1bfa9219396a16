package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront-service/models"
	"storefront-service/repository"
)

// CartManager orchestrates cart retrieval and persistence for a session. The
// session identifier is always passed in explicitly; the manager holds no
// per-request state.
type CartManager struct {
	store  repository.CartStore
	logger *zap.Logger
}

// NewCartManager creates a new CartManager.
func NewCartManager(store repository.CartStore, logger *zap.Logger) *CartManager {
	return &CartManager{store: store, logger: logger}
}

// GetCart returns the cart stored for sessionID. When no cart exists, or the
// store cannot be reached, it returns a fresh default cart bound to the
// session instead of an error: a broken cache must not break browsing. Store
// failures are logged and the returned cart stays ephemeral until saved.
func (m *CartManager) GetCart(ctx context.Context, sessionID string) *models.Cart {
	cart, err := m.store.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			m.logger.Error("Failed to load cart, falling back to default",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
		return models.NewDefaultCart(sessionID)
	}
	return cart
}

// SaveCart persists the cart. Unlike GetCart, store failures propagate: a
// write that went nowhere must be visible to the caller rather than reported
// as success.
func (m *CartManager) SaveCart(ctx context.Context, cart *models.Cart) error {
	return m.store.Set(ctx, cart)
}

// CartExists reports whether a cart is stored for sessionID. A store failure
// is logged and reported as present, so the caller proceeds into GetCart and
// degrades to a default cart instead of answering with a spurious not-found.
func (m *CartManager) CartExists(ctx context.Context, sessionID string) bool {
	exists, err := m.store.Exists(ctx, sessionID)
	if err != nil {
		m.logger.Error("Failed to check cart existence",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return true
	}
	return exists
}
