package types

import "github.com/pkg/errors"

var (
	// ErrOrderNotFound is returned when an order is not resident in the book.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidInstrument is returned when an order targets another book.
	ErrInvalidInstrument = errors.New("invalid instrument")
	// ErrInvalidSize is returned for orders with a zero quantity.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidPrice is returned for limit orders without a price.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidTimeInForce is returned for unknown or incoherent time in force values.
	ErrInvalidTimeInForce = errors.New("invalid time in force")
	// ErrUnsupportedTimeInForce is returned when the venue does not support the
	// requested time in force.
	ErrUnsupportedTimeInForce = errors.New("time in force not supported by venue")
	// ErrTradingHalted is returned by the order entry boundary when the
	// trading phase does not accept new orders.
	ErrTradingHalted = errors.New("trading is halted")
	// ErrCancelsNotAllowed is returned by the order entry boundary when the
	// halt settings do not allow cancellations.
	ErrCancelsNotAllowed = errors.New("cancellations not allowed while halted")
)
