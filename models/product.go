package models

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Products are owned by the catalog; carts hold
// only a product UUID plus a price snapshot, never the product itself.
type Product struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	UUID        string          `gorm:"type:uuid;uniqueIndex" json:"uuid"`
	IsActive    bool            `gorm:"index" json:"is_active"`
	Category    string          `gorm:"index" json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Thumbnail   string          `json:"thumbnail"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
}

// AddToCartRequest is the payload for POST /cart/add. ProductUUID is treated
// as an opaque identifier; format validation is left to the catalog lookup.
type AddToCartRequest struct {
	ProductUUID string `json:"productUuid" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

// ProductsRequest is the payload for GET /products.
type ProductsRequest struct {
	Category string `json:"category" binding:"required"`
}
