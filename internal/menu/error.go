package menu

import "errors"

var (
	// -- Resource State --
	ErrItemNotFound  = errors.New("menu item not found")
	ErrStallNotFound = errors.New("stall not found")

	// -- Validation & Input --
	ErrInvalidPrice = errors.New("price must not be negative")
	ErrInvalidSeed  = errors.New("invalid seed data")
)
