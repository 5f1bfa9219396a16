package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"storefront-service/models"
	"storefront-service/repository"
)

// RenderedProduct carries the current catalog attributes of a cart item's
// product. Name and thumbnail may differ from what the buyer saw at add time;
// the line price never does.
type RenderedProduct struct {
	ID        int64           `json:"id"`
	UUID      string          `json:"uuid"`
	Name      string          `json:"name"`
	Thumbnail string          `json:"thumbnail"`
	Price     decimal.Decimal `json:"price"`
}

// RenderedCartItem is one cart line with its computed total.
type RenderedCartItem struct {
	UUID     string          `json:"uuid"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
	Quantity int             `json:"quantity"`
	Product  RenderedProduct `json:"product"`
}

// RenderedCustomer is the customer block of a rendered cart.
type RenderedCustomer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RenderedCart is the response-ready projection of a cart.
type RenderedCart struct {
	UUID          string             `json:"uuid"`
	Customer      *RenderedCustomer  `json:"customer"`
	PaymentMethod string             `json:"payment_method"`
	Items         []RenderedCartItem `json:"items"`
	Total         decimal.Decimal    `json:"total"`
}

// CartView projects a cart into its response shape, resolving current product
// attributes from the catalog and computing totals from the frozen per-item
// prices.
type CartView struct {
	products repository.ProductRepository
}

// NewCartView creates a new CartView.
func NewCartView(products repository.ProductRepository) *CartView {
	return &CartView{products: products}
}

// Render builds the rendered cart. The cart itself is never mutated. A
// product that no longer resolves is an error: silently skipping the line
// would corrupt the totals.
func (v *CartView) Render(ctx context.Context, cart *models.Cart) (*RenderedCart, error) {
	out := &RenderedCart{
		UUID:          cart.UUID,
		PaymentMethod: cart.PaymentMethod,
		Items:         make([]RenderedCartItem, 0, len(cart.Items)),
		Total:         decimal.Zero,
	}

	if c := cart.Customer; c != nil {
		out.Customer = &RenderedCustomer{
			ID:    c.ID,
			Name:  strings.Join([]string{c.LastName, c.FirstName, c.MiddleName}, " "),
			Email: c.Email,
		}
	}

	for _, item := range cart.Items {
		product, err := v.products.FindByUUID(ctx, item.ProductUUID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s: %w", item.ProductUUID, err)
		}

		itemTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		out.Total = out.Total.Add(itemTotal)

		out.Items = append(out.Items, RenderedCartItem{
			UUID:     item.UUID,
			Price:    item.Price,
			Total:    itemTotal,
			Quantity: item.Quantity,
			Product: RenderedProduct{
				ID:        product.ID,
				UUID:      product.UUID,
				Name:      product.Name,
				Thumbnail: product.Thumbnail,
				Price:     product.Price,
			},
		})
	}

	return out, nil
}
