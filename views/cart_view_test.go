package views_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/views"
)

// mockProductRepository is an in-memory ProductRepository for testing. It
// preserves insertion order for category listings.
type mockProductRepository struct {
	products map[string]*models.Product
	order    []string
}

func newMockProductRepository(products ...*models.Product) *mockProductRepository {
	m := &mockProductRepository{products: make(map[string]*models.Product)}
	for _, p := range products {
		m.products[p.UUID] = p
		m.order = append(m.order, p.UUID)
	}
	return m
}

func (m *mockProductRepository) FindByUUID(_ context.Context, uuid string) (*models.Product, error) {
	p, ok := m.products[uuid]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (m *mockProductRepository) FindActiveByCategory(_ context.Context, category string) ([]models.Product, error) {
	var result []models.Product
	for _, uuid := range m.order {
		p := m.products[uuid]
		if p.IsActive && p.Category == category {
			result = append(result, *p)
		}
	}
	return result, nil
}

func TestRender_Totals(t *testing.T) {
	repo := newMockProductRepository(
		&models.Product{ID: 1, UUID: "prod-1", IsActive: true, Name: "Mug", Price: decimal.NewFromFloat(10)},
		&models.Product{ID: 2, UUID: "prod-2", IsActive: true, Name: "Pen", Price: decimal.NewFromFloat(5)},
	)
	view := views.NewCartView(repo)

	cart := models.NewDefaultCart("session-1")
	cart.AddItem(models.CartItem{UUID: "item-1", ProductUUID: "prod-1", Price: decimal.NewFromFloat(10), Quantity: 2})
	cart.AddItem(models.CartItem{UUID: "item-2", ProductUUID: "prod-2", Price: decimal.NewFromFloat(5), Quantity: 3})

	rendered, err := view.Render(context.Background(), cart)
	require.NoError(t, err)

	require.Len(t, rendered.Items, 2)
	assert.Equal(t, "20", rendered.Items[0].Total.String())
	assert.Equal(t, "15", rendered.Items[1].Total.String())
	assert.Equal(t, "35", rendered.Total.String())
}

func TestRender_PriceFrozenAtAddTime(t *testing.T) {
	product := &models.Product{ID: 1, UUID: "prod-1", IsActive: true, Name: "Mug", Price: decimal.NewFromFloat(10)}
	repo := newMockProductRepository(product)
	view := views.NewCartView(repo)

	cart := models.NewDefaultCart("session-2")
	cart.AddItem(models.CartItem{UUID: "item-1", ProductUUID: "prod-1", Price: product.Price, Quantity: 2})

	// Catalog price changes after the item was added.
	product.Price = decimal.NewFromFloat(12.50)

	rendered, err := view.Render(context.Background(), cart)
	require.NoError(t, err)

	require.Len(t, rendered.Items, 1)
	assert.Equal(t, "10", rendered.Items[0].Price.String(), "line price must stay frozen")
	assert.Equal(t, "20", rendered.Items[0].Total.String())
	assert.Equal(t, "12.5", rendered.Items[0].Product.Price.String(), "embedded product carries the current price")
	assert.Equal(t, "20", rendered.Total.String())
}

func TestRender_MissingProductFails(t *testing.T) {
	view := views.NewCartView(newMockProductRepository())

	cart := models.NewDefaultCart("session-3")
	cart.AddItem(models.CartItem{UUID: "item-1", ProductUUID: "gone", Price: decimal.NewFromFloat(10), Quantity: 1})

	rendered, err := view.Render(context.Background(), cart)
	assert.Nil(t, rendered)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestRender_CustomerName(t *testing.T) {
	view := views.NewCartView(newMockProductRepository())

	cart := models.NewCart("session-4", &models.Customer{
		ID:         7,
		FirstName:  "Ivan",
		LastName:   "Petrov",
		MiddleName: "Sergeevich",
		Email:      "ivan@example.com",
	}, "card", nil)

	rendered, err := view.Render(context.Background(), cart)
	require.NoError(t, err)

	require.NotNil(t, rendered.Customer)
	assert.Equal(t, int64(7), rendered.Customer.ID)
	assert.Equal(t, "Petrov Ivan Sergeevich", rendered.Customer.Name)
	assert.Equal(t, "ivan@example.com", rendered.Customer.Email)
	assert.Equal(t, "card", rendered.PaymentMethod)
}

func TestRender_NoCustomer(t *testing.T) {
	view := views.NewCartView(newMockProductRepository())

	rendered, err := view.Render(context.Background(), models.NewDefaultCart("session-5"))
	require.NoError(t, err)

	assert.Nil(t, rendered.Customer)
	assert.Empty(t, rendered.Items)
	assert.Equal(t, "0", rendered.Total.String())
}

func TestRender_DoesNotMutateCart(t *testing.T) {
	repo := newMockProductRepository(
		&models.Product{ID: 1, UUID: "prod-1", IsActive: true, Price: decimal.NewFromFloat(10)},
	)
	view := views.NewCartView(repo)

	cart := models.NewDefaultCart("session-6")
	cart.AddItem(models.CartItem{UUID: "item-1", ProductUUID: "prod-1", Price: decimal.NewFromFloat(10), Quantity: 2})

	before := len(cart.Items)
	_, err := view.Render(context.Background(), cart)
	require.NoError(t, err)

	assert.Len(t, cart.Items, before)
	assert.Equal(t, "item-1", cart.Items[0].UUID)
}
