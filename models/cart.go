package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one cart line. Exactly one of SessionID and UserID is set:
// SessionID for anonymous visitors, UserID for signed-in customers.
type CartItem struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	SessionID *string   `json:"session_id,omitempty"`
	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtotal is quantity x unit price for this line.
func (ci *CartItem) Subtotal() decimal.Decimal {
	if ci.Product == nil {
		return decimal.Zero
	}
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Cart is the view returned after every cart read or mutation. TotalPrice
// is recomputed from the lines on each load, never cached.
type Cart struct {
	Items      []CartItem      `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
