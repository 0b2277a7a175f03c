package cart

import (
	"time"

	"campuseats/internal/menu"
	"campuseats/internal/payment"
)

// Line is one cart entry: a snapshot of the menu item plus a quantity.
// A line with quantity 0 never exists; it is removed instead.
type Line struct {
	Item     menu.Item
	Quantity int
}

func (l Line) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// AddOutcome tells the caller whether AddItem inserted a new line or
// bumped an existing one, so the UI can word its toast accordingly.
type AddOutcome string

const (
	OutcomeAdded             AddOutcome = "item added"
	OutcomeQuantityIncreased AddOutcome = "quantity increased"
)

// RequestItem is the immutable per-item snapshot carried on an
// OrderRequest. Category and StallID ride along for reporting.
type RequestItem struct {
	ItemID    string  `validate:"required"`
	Name      string  `validate:"required"`
	Category  string
	StallID   string
	Quantity  int     `validate:"gte=1"`
	UnitPrice float64 `validate:"gte=0"`
	Subtotal  float64
}

// OrderRequest is the checkout handoff record. Created once, never
// mutated; the order collection takes it from here.
type OrderRequest struct {
	OrderNumber   string `validate:"required"`
	Items         []RequestItem
	TotalAmount   float64
	PaymentMethod payment.Method
	PickupTime    string
	PlacedAt      time.Time
}
