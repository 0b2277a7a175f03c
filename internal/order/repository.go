package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository is the operator-owned order collection. In-memory only;
// orders survive for the life of the process.
type Repository interface {
	Insert(o *Order)
	Get(id uuid.UUID) (*Order, error)
	List() []*Order
	UpdateStatus(id uuid.UUID, status Status) error
}

type repository struct {
	order  []uuid.UUID
	orders map[uuid.UUID]*Order
}

func NewRepository() Repository {
	return &repository{
		orders: make(map[uuid.UUID]*Order),
	}
}

func (r *repository) Insert(o *Order) {
	r.orders[o.ID] = o
	r.order = append(r.order, o.ID)
}

func (r *repository) Get(id uuid.UUID) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return o, nil
}

// List returns every order in insertion order.
func (r *repository) List() []*Order {
	out := make([]*Order, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.orders[id])
	}
	return out
}

func (r *repository) UpdateStatus(id uuid.UUID, status Status) error {
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}
