package services

import "errors"

// Sentinel errors controllers map onto HTTP statuses. Validation and
// not-found failures are always detected before any write happens.
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrTableNotFound      = errors.New("table not found")

	ErrChannelDisabled  = errors.New("channel not available for this restaurant")
	ErrTableCodeMissing = errors.New("table code is required for dine-in orders")
	ErrInvalidTableCode = errors.New("invalid table code")
	ErrEmptyOrder       = errors.New("order has no items")
	ErrItemUnavailable  = errors.New("item unavailable")

	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
)
