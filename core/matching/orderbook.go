package matching

import (
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/libs/num"
	"github.com/Quod-Financial/quantreplay-sub002/logging"
)

// OrderBook is the per-instrument book of resting limit orders, one side
// for buys and one for sells, in price-time priority. It also carries the
// regular matcher: facing-order detection, full-fill feasibility and the
// trade application itself. Mutated under single-writer discipline, it is
// not safe for concurrent use.
type OrderBook struct {
	log *logging.Logger

	instrument string
	buy        *OrderBookSide
	sell       *OrderBookSide
	ordersByID map[string]*types.Order

	lastTradedPrice *num.Uint

	cfg Config
}

// NewOrderBook creates a new empty book for the given instrument.
func NewOrderBook(log *logging.Logger, config Config, instrument string) *OrderBook {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &OrderBook{
		log:        log,
		instrument: instrument,
		buy:        newSide(log, types.SideBuy),
		sell:       newSide(log, types.SideSell),
		ordersByID: map[string]*types.Order{},
		cfg:        config,
	}
}

// Instrument returns the instrument identifier this book belongs to.
func (b *OrderBook) Instrument() string {
	return b.instrument
}

// sideFor returns the book side holding orders of the given side.
func (b *OrderBook) sideFor(side types.Side) *OrderBookSide {
	if side == types.SideBuy {
		return b.buy
	}
	return b.sell
}

// facingSideFor returns the side an aggressive order trades against.
func (b *OrderBook) facingSideFor(o *types.Order) *OrderBookSide {
	if o.Side == types.SideBuy {
		return b.sell
	}
	return b.buy
}

// AddOrder inserts a resting limit order into its side, preserving
// price-time order. The caller is responsible for the preconditions: a
// limit order for this instrument with a positive remaining quantity.
func (b *OrderBook) AddOrder(o *types.Order) {
	b.sideFor(o.Side).addOrder(o)
	b.ordersByID[o.ID] = o

	if bool(b.cfg.LogPriceLevelsDebug) && b.log.IsDebug() {
		b.log.Debug("order added to book", logging.Order(*o))
	}
}

// RemoveOrder removes a resting order, returning it. Absent orders are
// reported with types.ErrOrderNotFound, callers treat that as a no-op.
func (b *OrderBook) RemoveOrder(orderID string) (*types.Order, error) {
	o, ok := b.ordersByID[orderID]
	if !ok {
		return nil, types.ErrOrderNotFound
	}
	order, err := b.sideFor(o.Side).RemoveOrder(o)
	if err != nil {
		return nil, err
	}
	delete(b.ordersByID, orderID)

	if bool(b.cfg.LogRemovedOrdersDebug) && b.log.IsDebug() {
		b.log.Debug("order removed from book", logging.Order(*order))
	}
	return order, nil
}

// GetOrderByID looks up a resting order.
func (b *OrderBook) GetOrderByID(orderID string) (*types.Order, error) {
	o, ok := b.ordersByID[orderID]
	if !ok {
		return nil, types.ErrOrderNotFound
	}
	return o, nil
}

// HasFacingOrders returns true if the opposite side of the book contains
// at least one order the given order could trade against: price compatible
// for limit orders, any resting order for market orders.
func (b *OrderBook) HasFacingOrders(o *types.Order) bool {
	return b.facingSideFor(o).hasFacing(o)
}

// CanFullyTrade returns true if the price compatible facing liquidity is
// sufficient to fully satisfy the order's remaining quantity. Used for
// fill-or-kill evaluation only.
func (b *OrderBook) CanFullyTrade(o *types.Order) bool {
	return b.facingSideFor(o).facingVolume(o) >= o.Remaining
}

// Match applies trades against facing orders in price-time priority until
// either the aggressive order is exhausted or no compatible facing order
// remains. Each trade is priced at the resting order's price. Facing
// orders going flat are removed from the book as part of the call. The
// call is a no-op for orders already at zero remaining.
func (b *OrderBook) Match(agg *types.Order) ([]*types.Trade, []*types.Order) {
	if agg.Remaining == 0 {
		return nil, nil
	}

	trades, impacted := b.facingSideFor(agg).uncross(agg)

	for _, o := range impacted {
		if o.Remaining == 0 {
			delete(b.ordersByID, o.ID)
		}
	}
	if len(trades) > 0 {
		b.lastTradedPrice = trades[len(trades)-1].Price.Clone()
	}
	return trades, impacted
}

// BestBidPriceAndVolume returns the best buy price and its volume.
func (b *OrderBook) BestBidPriceAndVolume() (*num.Uint, uint64, error) {
	return b.buy.BestPriceAndVolume()
}

// BestAskPriceAndVolume returns the best sell price and its volume.
func (b *OrderBook) BestAskPriceAndVolume() (*num.Uint, uint64, error) {
	return b.sell.BestPriceAndVolume()
}

// LastTradedPrice returns the price of the last trade done on this book,
// nil before the first trade.
func (b *OrderBook) LastTradedPrice() *num.Uint {
	if b.lastTradedPrice == nil {
		return nil
	}
	return b.lastTradedPrice.Clone()
}

// GetVolumeAtPrice returns the resting volume at a price on a side.
func (b *OrderBook) GetVolumeAtPrice(side types.Side, price *num.Uint) (uint64, error) {
	return b.sideFor(side).GetVolume(price)
}

// GetOrderIDs returns the identifiers of every resting order, in no
// particular order.
func (b *OrderBook) GetOrderIDs() []string {
	ids := make([]string, 0, len(b.ordersByID))
	for id := range b.ordersByID {
		ids = append(ids, id)
	}
	return ids
}

// GetTotalNumberOfOrders is the total number of orders in the book.
func (b *OrderBook) GetTotalNumberOfOrders() int64 {
	return b.buy.getOrderCount() + b.sell.getOrderCount()
}

// GetTotalVolume is the total volume resting on the book.
func (b *OrderBook) GetTotalVolume() int64 {
	return b.buy.getTotalVolume() + b.sell.getTotalVolume()
}

// Hash returns a deterministic digest of both sides of the book.
func (b *OrderBook) Hash() []byte {
	return append(b.buy.Hash(), b.sell.Hash()...)
}
