package cart

import "errors"

var (
	// -- Checkout validation --
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingPaymentMethod = errors.New("payment method not selected")
	ErrMissingPickupTime    = errors.New("pickup time not selected")

	// -- Resource State --
	ErrItemUnavailable = errors.New("menu item is unavailable")
)
