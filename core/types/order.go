package types

import (
	"fmt"

	"github.com/Quod-Financial/quantreplay-sub002/libs/num"
)

type Side int8

const (
	SideUnspecified Side = iota
	SideBuy
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	}
	return "unspecified"
}

// Opposite returns the facing side of the book.
func (s Side) Opposite() Side {
	switch s {
	case SideBuy:
		return SideSell
	case SideSell:
		return SideBuy
	}
	return SideUnspecified
}

type OrderType int8

const (
	OrderTypeUnspecified OrderType = iota
	OrderTypeLimit
	OrderTypeMarket
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeLimit:
		return "limit"
	case OrderTypeMarket:
		return "market"
	}
	return "unspecified"
}

type OrderTimeInForce int8

const (
	OrderTimeInForceUnspecified OrderTimeInForce = iota
	// Good for the trading day.
	OrderTimeInForceDay
	// Good until cancelled.
	OrderTimeInForceGTC
	// Immediate or cancel.
	OrderTimeInForceIOC
	// Fill or kill.
	OrderTimeInForceFOK
)

func (tif OrderTimeInForce) String() string {
	switch tif {
	case OrderTimeInForceDay:
		return "day"
	case OrderTimeInForceGTC:
		return "gtc"
	case OrderTimeInForceIOC:
		return "ioc"
	case OrderTimeInForceFOK:
		return "fok"
	}
	return "unspecified"
}

type OrderStatus int8

const (
	OrderStatusUnspecified OrderStatus = iota
	// Resting on the book, or confirmed and matching.
	OrderStatusActive
	// Fully executed.
	OrderStatusFilled
	// Closed partially executed IOC orders.
	OrderStatusPartiallyFilled
	// Cancelled by the owning party.
	OrderStatusCancelled
	// Rejected by the placement policy.
	OrderStatusRejected
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusActive:
		return "active"
	case OrderStatusFilled:
		return "filled"
	case OrderStatusPartiallyFilled:
		return "partially-filled"
	case OrderStatusCancelled:
		return "cancelled"
	case OrderStatusRejected:
		return "rejected"
	}
	return "unspecified"
}

// Order is a single order resting on, or matching against, an order book.
// Remaining only ever decreases, so the executed quantity (Size - Remaining)
// only ever increases. An order with Remaining == 0 is never resident in
// the book.
type Order struct {
	ID          string
	Instrument  string
	Party       string
	Side        Side
	Price       *num.Uint
	Size        uint64
	Remaining   uint64
	TimeInForce OrderTimeInForce
	Type        OrderType
	Status      OrderStatus
	// SeqNum is the submission sequence, it fixes time priority between
	// orders resting at the same price.
	SeqNum    uint64
	CreatedAt int64
}

// Executed returns the executed quantity of the order.
func (o *Order) Executed() uint64 {
	return o.Size - o.Remaining
}

// IsPersistent returns true if the order may rest on the book.
func (o *Order) IsPersistent() bool {
	return (o.TimeInForce == OrderTimeInForceDay ||
		o.TimeInForce == OrderTimeInForceGTC) &&
		o.Type == OrderTypeLimit &&
		o.Remaining > 0
}

func (o Order) Clone() *Order {
	cpy := o
	if o.Price != nil {
		cpy.Price = o.Price.Clone()
	} else {
		cpy.Price = num.UintZero()
	}
	return &cpy
}

func (o Order) String() string {
	return fmt.Sprintf(
		"ID(%s) instrument(%s) party(%s) side(%s) price(%s) size(%v) remaining(%v) timeInForce(%s) type(%s) status(%s) seqNum(%v) createdAt(%v)",
		o.ID,
		o.Instrument,
		o.Party,
		o.Side.String(),
		num.UintToString(o.Price),
		o.Size,
		o.Remaining,
		o.TimeInForce.String(),
		o.Type.String(),
		o.Status.String(),
		o.SeqNum,
		o.CreatedAt,
	)
}

// OrderSubmission is the request to place a new order, before an
// identifier and a submission sequence have been assigned.
type OrderSubmission struct {
	Instrument  string
	Party       string
	Side        Side
	Price       *num.Uint
	Size        uint64
	TimeInForce OrderTimeInForce
	Type        OrderType
}

// IntoOrder builds the order for the given identifier and submission
// sequence number.
func (s OrderSubmission) IntoOrder(id string, seqNum uint64, createdAt int64) *Order {
	price := num.UintZero()
	if s.Price != nil {
		price = s.Price.Clone()
	}
	return &Order{
		ID:          id,
		Instrument:  s.Instrument,
		Party:       s.Party,
		Side:        s.Side,
		Price:       price,
		Size:        s.Size,
		Remaining:   s.Size,
		TimeInForce: s.TimeInForce,
		Type:        s.Type,
		Status:      OrderStatusActive,
		SeqNum:      seqNum,
		CreatedAt:   createdAt,
	}
}

// OrderConfirmation is the result of a placement, successful or not. For
// rejected orders the order status is OrderStatusRejected and no trades are
// attached.
type OrderConfirmation struct {
	Order                 *Order
	Trades                []*Trade
	PassiveOrdersAffected []*Order
}

func (c OrderConfirmation) Rejected() bool {
	return c.Order != nil && c.Order.Status == OrderStatusRejected
}

// TradedValue is the total price * size over all trades of the confirmation.
func (c OrderConfirmation) TradedValue() *num.Uint {
	total := num.UintZero()
	for _, t := range c.Trades {
		size := num.NewUint(t.Size)
		total.AddSum(size.Mul(size, t.Price))
	}
	return total
}

type OrderCancellationConfirmation struct {
	Order *Order
}
