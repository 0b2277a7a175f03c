package cart

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"campuseats/internal/menu"
	"campuseats/internal/payment"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// orderSeq backs the human-facing order numbers. Monotonic per process,
// which is all the single-process prototype needs.
var orderSeq atomic.Uint64

func nextOrderNumber() string {
	return fmt.Sprintf("ORD-%06d", orderSeq.Add(1))
}

var validate = newValidator()

func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(orderRequestStructValidation, OrderRequest{})
	return v
}

// orderRequestStructValidation verifies the request total equals the sum
// of (unit price * quantity) of its items, compared in centavos.
func orderRequestStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(OrderRequest)

	var sum float64
	for _, it := range req.Items {
		sum += float64(it.Quantity) * it.UnitPrice
	}

	sumCents := int(math.Round(sum * 100))
	totalCents := int(math.Round(req.TotalAmount * 100))
	if sumCents != totalCents {
		sl.ReportError(req.TotalAmount, "total_amount", "TotalAmount", "total_match_items",
			fmt.Sprintf("items sum %.2f != total %.2f", sum, req.TotalAmount))
	}
}

// Cart is the customer session's pre-checkout selection. One owner, one
// goroutine: no locking here.
type Cart struct {
	SessionID uuid.UUID
	CreatedAt time.Time

	keys  []string
	lines map[string]*Line
}

func New() *Cart {
	return &Cart{
		SessionID: uuid.New(),
		CreatedAt: time.Now(),
		lines:     make(map[string]*Line),
	}
}

// AddItem puts one unit of the item in the cart. A second add of the same
// item bumps the quantity instead of creating a duplicate line.
// Unavailable items are rejected.
func (c *Cart) AddItem(item menu.Item) (AddOutcome, error) {
	if !item.Available {
		return "", fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
	}

	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		return OutcomeQuantityIncreased, nil
	}

	c.lines[item.ID] = &Line{Item: item, Quantity: 1}
	c.keys = append(c.keys, item.ID)
	return OutcomeAdded, nil
}

// UpdateQuantity applies a delta to an existing line. The quantity floors
// at zero, and a zero line is removed outright. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(itemID string, delta int) {
	line, ok := c.lines[itemID]
	if !ok {
		return
	}

	qty := max(0, line.Quantity+delta)
	if qty == 0 {
		c.remove(itemID)
		return
	}
	line.Quantity = qty
}

func (c *Cart) remove(itemID string) {
	delete(c.lines, itemID)
	for i, k := range c.keys {
		if k == itemID {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			return
		}
	}
}

// Lines returns the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, *c.lines[k])
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.keys)
}

func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

func (c *Cart) Clear() {
	c.keys = nil
	c.lines = make(map[string]*Line)
}

// Checkout validates the cart and produces the immutable OrderRequest
// handoff record, clearing the cart on success. On any failure the cart
// is left untouched.
func (c *Cart) Checkout(method payment.Method, pickupTime string) (*OrderRequest, error) {
	if len(c.keys) == 0 {
		return nil, ErrEmptyCart
	}
	if method == "" {
		return nil, ErrMissingPaymentMethod
	}
	if pickupTime == "" {
		return nil, ErrMissingPickupTime
	}

	req := &OrderRequest{
		OrderNumber:   nextOrderNumber(),
		Items:         make([]RequestItem, 0, len(c.keys)),
		PaymentMethod: method,
		PickupTime:    pickupTime,
		PlacedAt:      time.Now(),
	}

	for _, line := range c.Lines() {
		req.Items = append(req.Items, RequestItem{
			ItemID:    line.Item.ID,
			Name:      line.Item.Name,
			Category:  line.Item.Category,
			StallID:   line.Item.StallID,
			Quantity:  line.Quantity,
			UnitPrice: line.Item.Price,
			Subtotal:  line.Subtotal(),
		})
		req.TotalAmount += line.Subtotal()
	}

	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("order request failed validation: %w", err)
	}

	c.Clear()
	return req, nil
}
