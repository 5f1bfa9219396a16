package models

import (
	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod is assigned to carts created without an explicit
// payment choice.
const DefaultPaymentMethod = "default_payment_method"

// Customer is the buyer associated with a cart. The cart only references
// customer data; it never creates or updates customer records.
type Customer struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	Email      string `json:"email"`
}

// CartItem is a single line entry in a cart. Price is a snapshot taken at the
// moment the item was added; later catalog price changes do not affect it.
type CartItem struct {
	UUID        string          `json:"uuid"`
	ProductUUID string          `json:"productUuid"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Cart is the session-scoped aggregate of purchase intent. Its UUID is the
// session identifier, which doubles as the storage key in Redis.
type Cart struct {
	UUID          string     `json:"uuid"`
	Customer      *Customer  `json:"customer"`
	PaymentMethod string     `json:"paymentMethod"`
	Items         []CartItem `json:"items"`
}

// NewCart constructs a cart. An empty payment method falls back to
// DefaultPaymentMethod; a nil item slice becomes an empty one so the
// serialized form is always a JSON array.
func NewCart(uuid string, customer *Customer, paymentMethod string, items []CartItem) *Cart {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	if items == nil {
		items = []CartItem{}
	}
	return &Cart{
		UUID:          uuid,
		Customer:      customer,
		PaymentMethod: paymentMethod,
		Items:         items,
	}
}

// NewDefaultCart returns the empty cart a session starts with: no customer,
// no items, default payment method.
func NewDefaultCart(sessionID string) *Cart {
	return NewCart(sessionID, nil, DefaultPaymentMethod, nil)
}

// AddItem appends an item to the cart. Items are append-only; adding the same
// product twice yields two separate line entries.
func (c *Cart) AddItem(item CartItem) {
	c.Items = append(c.Items, item)
}
