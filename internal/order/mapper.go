package order

import (
	"time"

	"campuseats/internal/cart"

	"github.com/google/uuid"
)

// FromRequest turns a checkout handoff record into a pending Order. The
// total is recomputed from the item snapshots so the amount invariant
// holds by construction rather than by trust.
func FromRequest(req cart.OrderRequest, customerRef string) *Order {
	items := make([]Item, 0, len(req.Items))
	var total float64

	for _, ri := range req.Items {
		it := Item{
			ItemID:    ri.ItemID,
			Name:      ri.Name,
			Category:  ri.Category,
			StallID:   ri.StallID,
			Quantity:  ri.Quantity,
			UnitPrice: ri.UnitPrice,
		}
		items = append(items, it)
		total += it.Subtotal()
	}

	now := time.Now()
	return &Order{
		ID:            uuid.New(),
		Number:        req.OrderNumber,
		CustomerRef:   customerRef,
		Items:         items,
		PickupTime:    req.PickupTime,
		PaymentMethod: req.PaymentMethod,
		Status:        StatusPending,
		Total:         total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
