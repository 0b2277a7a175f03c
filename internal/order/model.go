package order

import (
	"fmt"
	"time"

	"campuseats/internal/payment"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"

	// StatusAll is a list filter sentinel, never a stored status.
	StatusAll Status = "all"
)

// transitions is the complete edge set of the order lifecycle. Completed
// and cancelled are terminal; re-applying the current status is illegal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Statuses returns the lifecycle statuses in progression order.
func Statuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return Status(s), nil
	case StatusAll:
		return StatusAll, nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0 && s != StatusAll
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Item is the immutable per-item snapshot an order carries. Prices are
// captured at order time; later menu edits do not touch past orders.
type Item struct {
	ItemID    string
	Name      string
	Category  string
	StallID   string
	Quantity  int
	UnitPrice float64
}

func (i Item) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type Order struct {
	ID            uuid.UUID
	Number        string
	CustomerRef   string
	Items         []Item
	PickupTime    string
	PaymentMethod payment.Method
	Status        Status
	Total         float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
