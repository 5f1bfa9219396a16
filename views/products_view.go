package views

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront-service/repository"
)

// ProductListItem is one entry in the category listing.
type ProductListItem struct {
	ID          int64           `json:"id"`
	UUID        string          `json:"uuid"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Thumbnail   string          `json:"thumbnail"`
	Price       decimal.Decimal `json:"price"`
}

// ProductsView projects the active products of a category into their listing
// shape.
type ProductsView struct {
	products repository.ProductRepository
}

// NewProductsView creates a new ProductsView.
func NewProductsView(products repository.ProductRepository) *ProductsView {
	return &ProductsView{products: products}
}

// Render lists the active products of the category in catalog order.
func (v *ProductsView) Render(ctx context.Context, category string) ([]ProductListItem, error) {
	products, err := v.products.FindActiveByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	items := make([]ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, ProductListItem{
			ID:          p.ID,
			UUID:        p.UUID,
			Category:    p.Category,
			Description: p.Description,
			Thumbnail:   p.Thumbnail,
			Price:       p.Price,
		})
	}
	return items, nil
}
