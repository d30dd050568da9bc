package placement

import (
	"time"

	"github.com/Quod-Financial/quantreplay-sub002/core/events"
	"github.com/Quod-Financial/quantreplay-sub002/core/idgeneration"
	"github.com/Quod-Financial/quantreplay-sub002/core/matching"
	"github.com/Quod-Financial/quantreplay-sub002/core/phases"
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/logging"

	"github.com/pkg/errors"
)

// Reject texts reported on the client notification channel.
const (
	RejectNoFacingOrders        = "no facing orders found"
	RejectInsufficientLiquidity = "not enough liquidity to fill FoK order"
)

// Engine translates a submitted order plus its time in force into a single
// outcome against one instrument's order book, emitting notifications in a
// fixed order: the terminal client notification first, then any match
// caused book notifications, then the book addition notification for
// resting orders. One engine owns one instrument's matching state and must
// only ever be driven by a single goroutine.
type Engine struct {
	log *logging.Logger
	cfg Config

	instrument string
	book       *matching.OrderBook
	idgen      *idgeneration.Generator
	listener   events.Listener

	phase phases.Phase
	// submission sequence, fixes time priority between resting orders
	submissions idgeneration.Sequence

	now func() time.Time
}

// New creates a placement engine for one instrument.
func New(
	log *logging.Logger,
	config Config,
	instrument string,
	book *matching.OrderBook,
	idgen *idgeneration.Generator,
	listener events.Listener,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	if listener == nil {
		listener = events.NoopListener{}
	}

	return &Engine{
		log:        log,
		cfg:        config,
		instrument: instrument,
		book:       book,
		idgen:      idgen,
		listener:   listener,
		now:        time.Now,
	}
}

// Book exposes the engine's order book, read only use.
func (e *Engine) Book() *matching.OrderBook {
	return e.book
}

// Phase returns the current trading phase.
func (e *Engine) Phase() phases.Phase {
	return e.phase
}

// EnterPhase moves the instrument to a new trading phase, e.g. on a
// scheduled session transition.
func (e *Engine) EnterPhase(p phases.Phase) {
	e.log.Info("trading phase changed",
		logging.Instrument(e.instrument),
		logging.String("from", e.phase.String()),
		logging.String("to", p.String()))
	e.phase = p
}

// SubmitOrder runs the placement policy for a newly submitted order.
// Business rejects are not errors: the returned confirmation carries the
// order with its terminal status, and the reject has already been emitted
// on the client channel. An error is returned only when the order could
// not be processed at all, identifier collisions included; the book is
// left untouched in that case.
func (e *Engine) SubmitOrder(sub *types.OrderSubmission) (*types.OrderConfirmation, error) {
	if !e.phase.AcceptsOrders() {
		return nil, types.ErrTradingHalted
	}
	if err := e.validateSubmission(sub); err != nil {
		return nil, err
	}

	id, err := e.idgen.NextOrderID()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue order id")
	}
	order := sub.IntoOrder(id, e.submissions.Next(), e.now().UnixNano())

	switch {
	case order.Type == types.OrderTypeMarket || order.TimeInForce == types.OrderTimeInForceIOC:
		return e.submitIOC(order)
	case order.TimeInForce == types.OrderTimeInForceFOK:
		return e.submitFOK(order)
	default:
		return e.submitDay(order)
	}
}

// submitIOC places an immediate-or-cancel order, market orders included.
// The order trades what it can and is never added to the book.
func (e *Engine) submitIOC(order *types.Order) (*types.OrderConfirmation, error) {
	if !e.book.HasFacingOrders(order) {
		return e.reject(order, RejectNoFacingOrders)
	}

	trades, impacted, err := e.confirmAndMatch(order)
	if err != nil {
		return nil, err
	}

	if order.Remaining == 0 {
		order.Status = types.OrderStatusFilled
	} else {
		order.Status = types.OrderStatusPartiallyFilled
	}

	return &types.OrderConfirmation{
		Order:                 order,
		Trades:                trades,
		PassiveOrdersAffected: impacted,
	}, nil
}

// submitFOK places a fill-or-kill order: it trades only if the whole
// quantity can be satisfied immediately, and is never added to the book.
func (e *Engine) submitFOK(order *types.Order) (*types.OrderConfirmation, error) {
	if !e.book.HasFacingOrders(order) {
		return e.reject(order, RejectNoFacingOrders)
	}
	if !e.book.CanFullyTrade(order) {
		return e.reject(order, RejectInsufficientLiquidity)
	}

	trades, impacted, err := e.confirmAndMatch(order)
	if err != nil {
		return nil, err
	}

	order.Status = types.OrderStatusFilled

	return &types.OrderConfirmation{
		Order:                 order,
		Trades:                trades,
		PassiveOrdersAffected: impacted,
	}, nil
}

// submitDay places a day or good-till-cancel limit order: always
// confirmed, matched, and rested on the book if a remainder is left.
func (e *Engine) submitDay(order *types.Order) (*types.OrderConfirmation, error) {
	trades, impacted, err := e.confirmAndMatch(order)
	if err != nil {
		return nil, err
	}

	if order.Remaining > 0 {
		e.book.AddOrder(order)
		e.listener.OnOrderAdded(types.OrderAdded{OrderID: order.ID})
	} else {
		order.Status = types.OrderStatusFilled
	}

	return &types.OrderConfirmation{
		Order:                 order,
		Trades:                trades,
		PassiveOrdersAffected: impacted,
	}, nil
}

// confirmAndMatch emits the placement confirmation and uncrosses the book
// with the order. Facing orders removed by the match are reported on the
// book channel, in trade order. Trades are given market entry ids.
func (e *Engine) confirmAndMatch(order *types.Order) ([]*types.Trade, []*types.Order, error) {
	execID, err := e.idgen.NextExecutionID(order.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to issue execution id")
	}
	e.listener.OnOrderPlacementConfirmation(types.OrderPlacementConfirmation{ExecutionID: execID})

	trades, impacted := e.book.Match(order)

	now := e.now().UnixNano()
	for _, t := range trades {
		t.Timestamp = now
		entryID, err := e.idgen.NextMarketEntryID()
		if err != nil {
			// the trade stands, only its market entry cannot be published
			e.log.Error("failed to issue market entry id", logging.Error(err))
			continue
		}
		t.ID = entryID
	}
	for _, o := range impacted {
		if o.Remaining == 0 {
			e.listener.OnOrderRemoved(types.OrderRemoved{OrderID: o.ID})
		}
	}

	if e.log.IsDebug() {
		e.log.Debug("order confirmed",
			logging.Instrument(e.instrument),
			logging.ExecutionID(execID),
			logging.Int("trades", len(trades)),
			logging.Order(*order))
	}
	return trades, impacted, nil
}

// reject emits the placement reject on the client channel. The order is
// never matched and never added to the book.
func (e *Engine) reject(order *types.Order, text string) (*types.OrderConfirmation, error) {
	execID, err := e.idgen.NextExecutionID(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue execution id")
	}
	order.Status = types.OrderStatusRejected
	e.listener.OnOrderPlacementReject(types.OrderPlacementReject{
		ExecutionID: execID,
		RejectText:  text,
	})

	if e.log.IsDebug() {
		e.log.Debug("order rejected",
			logging.Instrument(e.instrument),
			logging.ExecutionID(execID),
			logging.String("reject-text", text))
	}
	return &types.OrderConfirmation{Order: order}, nil
}

// CancelOrder removes a resting order. Cancellations are gated by the
// trading phase: a halted market accepts them only when its halt settings
// allow cancels.
func (e *Engine) CancelOrder(orderID string) (*types.OrderCancellationConfirmation, error) {
	if !e.phase.AcceptsCancels() {
		return nil, types.ErrCancelsNotAllowed
	}

	order, err := e.book.RemoveOrder(orderID)
	if err != nil {
		return nil, err
	}
	order.Status = types.OrderStatusCancelled
	e.listener.OnOrderRemoved(types.OrderRemoved{OrderID: order.ID})

	return &types.OrderCancellationConfirmation{Order: order}, nil
}

func (e *Engine) validateSubmission(sub *types.OrderSubmission) error {
	if sub.Instrument != e.instrument {
		return types.ErrInvalidInstrument
	}
	if sub.Size == 0 {
		return types.ErrInvalidSize
	}
	switch sub.Type {
	case types.OrderTypeLimit:
		if sub.Price == nil || sub.Price.IsZero() {
			return types.ErrInvalidPrice
		}
	case types.OrderTypeMarket:
		// market orders are IOC-like, they never rest
		if sub.TimeInForce != types.OrderTimeInForceIOC {
			return types.ErrInvalidTimeInForce
		}
	default:
		return types.ErrInvalidTimeInForce
	}

	switch sub.TimeInForce {
	case types.OrderTimeInForceDay, types.OrderTimeInForceGTC:
		if !e.cfg.SupportDayOrders {
			return types.ErrUnsupportedTimeInForce
		}
	case types.OrderTimeInForceIOC:
		if !e.cfg.SupportIOCOrders {
			return types.ErrUnsupportedTimeInForce
		}
	case types.OrderTimeInForceFOK:
		if !e.cfg.SupportFOKOrders {
			return types.ErrUnsupportedTimeInForce
		}
	default:
		return types.ErrInvalidTimeInForce
	}
	return nil
}
