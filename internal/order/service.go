package order

import (
	"context"
	"fmt"
	"iter"

	"campuseats/internal/cart"
	"campuseats/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the operator-facing order lifecycle.
type Service interface {
	// CreateOrder inserts a pending order built from a checkout handoff.
	// It always succeeds.
	CreateOrder(ctx context.Context, req cart.OrderRequest, customerRef string) *Order

	// Transition moves an order along the lifecycle edge set. Both
	// failure modes are user-visible rejections; nothing is mutated on
	// failure.
	Transition(ctx context.Context, orderID uuid.UUID, target Status) error

	// ListByStatus yields matching orders in insertion order. The
	// sequence is lazy and restartable; pass StatusAll for every order.
	ListByStatus(status Status) iter.Seq[*Order]

	// ListByCustomer yields the customer's own orders in insertion
	// order; backs the My Orders screen.
	ListByCustomer(customerRef string) iter.Seq[*Order]

	CountsByStatus() map[Status]int
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateOrder(ctx context.Context, req cart.OrderRequest, customerRef string) *Order {
	o := FromRequest(req, customerRef)
	s.repo.Insert(o)

	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", o.ID.String()),
		zap.String("order_number", o.Number),
		zap.String("customer", o.CustomerRef),
		zap.Float64("total", o.Total),
		zap.String("pickup_time", o.PickupTime),
	)

	return o
}

func (s *service) Transition(ctx context.Context, orderID uuid.UUID, target Status) error {
	o, err := s.repo.Get(orderID)
	if err != nil {
		return err
	}

	if !o.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.Status, target)
	}

	if err := s.repo.UpdateStatus(orderID, target); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", o.ID.String()),
		zap.String("order_number", o.Number),
		zap.String("status", string(target)),
	)

	return nil
}

func (s *service) ListByStatus(status Status) iter.Seq[*Order] {
	return func(yield func(*Order) bool) {
		for _, o := range s.repo.List() {
			if status != StatusAll && o.Status != status {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

func (s *service) ListByCustomer(customerRef string) iter.Seq[*Order] {
	return func(yield func(*Order) bool) {
		for _, o := range s.repo.List() {
			if o.CustomerRef != customerRef {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

func (s *service) CountsByStatus() map[Status]int {
	counts := make(map[Status]int, len(Statuses()))
	for _, st := range Statuses() {
		counts[st] = 0
	}
	for _, o := range s.repo.List() {
		counts[o.Status]++
	}
	return counts
}
