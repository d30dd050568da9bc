package matching

import (
	"encoding/binary"
	"sort"

	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/libs/crypto"
	"github.com/Quod-Financial/quantreplay-sub002/libs/num"
	"github.com/Quod-Financial/quantreplay-sub002/logging"

	"github.com/pkg/errors"
)

// ErrPriceNotFound signals that a price was not found on the book side.
var ErrPriceNotFound = errors.New("price-volume pair not found")

// ErrNoOrdersOnSide signals an empty book side.
var ErrNoOrdersOnSide = errors.New("no orders on the book side")

// OrderBookSide represents a side of the book, either Sell or Buy.
// Levels are kept sorted with the best price last: ascending for buys,
// descending for sells.
type OrderBookSide struct {
	side   types.Side
	log    *logging.Logger
	levels []*PriceLevel
}

func newSide(log *logging.Logger, side types.Side) *OrderBookSide {
	return &OrderBookSide{
		side:   side,
		log:    log,
		levels: []*PriceLevel{},
	}
}

func (s *OrderBookSide) Hash() []byte {
	// 32 bytes for the price + 8 for the volume per level
	output := make([]byte, len(s.levels)*40)
	var i int
	for _, l := range s.levels {
		price := l.price.Bytes()
		copy(output[i:], price[:])
		i += 32
		binary.BigEndian.PutUint64(output[i:], l.volume)
		i += 8
	}
	return crypto.Hash(output)
}

func (s *OrderBookSide) addOrder(o *types.Order) {
	s.getPriceLevel(o.Price).addOrder(o)
}

// BestPriceAndVolume returns the top of book price and volume,
// an error if the side is empty.
func (s *OrderBookSide) BestPriceAndVolume() (*num.Uint, uint64, error) {
	if len(s.levels) <= 0 {
		return num.UintZero(), 0, ErrNoOrdersOnSide
	}
	last := len(s.levels) - 1
	return s.levels[last].price.Clone(), s.levels[last].volume, nil
}

// RemoveOrder removes an order from the book side.
func (s *OrderBookSide) RemoveOrder(o *types.Order) (*types.Order, error) {
	// first find the price level of the order
	var i int
	if o.Side == types.SideBuy {
		i = sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.GTE(o.Price) })
	} else {
		// sell side levels are ordered descending
		i = sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.LTE(o.Price) })
	}
	if i >= len(s.levels) || !s.levels[i].price.EQ(o.Price) {
		return nil, types.ErrOrderNotFound
	}

	oidx := -1
	for idx, order := range s.levels[i].orders {
		if order.ID == o.ID {
			oidx = idx
			break
		}
	}
	if oidx == -1 {
		return nil, types.ErrOrderNotFound
	}

	order := s.levels[i].orders[oidx]
	s.levels[i].removeOrder(oidx)

	if len(s.levels[i].orders) <= 0 {
		s.levels = s.levels[:i+copy(s.levels[i:], s.levels[i+1:])]
	}

	return order, nil
}

func (s *OrderBookSide) getPriceLevelIfExists(price *num.Uint) *PriceLevel {
	var i int
	if s.side == types.SideBuy {
		// buy side levels are ordered ascending
		i = sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.GTE(price) })
	} else {
		// sell side levels are ordered descending
		i = sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.LTE(price) })
	}

	if i < len(s.levels) && s.levels[i].price.EQ(price) {
		return s.levels[i]
	}
	return nil
}

func (s *OrderBookSide) getPriceLevel(price *num.Uint) *PriceLevel {
	var i int
	if s.side == types.SideBuy {
		// buy side levels are ordered ascending
		i = sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.GTE(price) })
	} else {
		// sell side levels are ordered descending
		i = sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.LTE(price) })
	}

	// we found the level, just return it
	if i < len(s.levels) && s.levels[i].price.EQ(price) {
		return s.levels[i]
	}

	// append a new element first to make sure we have enough room,
	// it is overwritten just after by the slice insert
	level := NewPriceLevel(price.Clone())
	s.levels = append(s.levels, nil)
	copy(s.levels[i+1:], s.levels[i:])
	s.levels[i] = level
	return level
}

// GetVolume returns the volume at the given price level.
func (s *OrderBookSide) GetVolume(price *num.Uint) (uint64, error) {
	priceLevel := s.getPriceLevelIfExists(price)
	if priceLevel == nil {
		return 0, ErrPriceNotFound
	}
	return priceLevel.volume, nil
}

// checkPriceFor returns the predicate deciding whether a level on this
// side can trade against the aggressive order. Market orders trade at
// any price.
func (s *OrderBookSide) checkPriceFor(agg *types.Order) func(*num.Uint) bool {
	if agg.Type == types.OrderTypeMarket {
		return func(*num.Uint) bool { return true }
	}
	if agg.Side == types.SideBuy {
		// buying against the sell side: level must not exceed the limit price
		return func(levelPrice *num.Uint) bool { return levelPrice.LTE(agg.Price) }
	}
	return func(levelPrice *num.Uint) bool { return levelPrice.GTE(agg.Price) }
}

// hasFacing reports whether this side holds at least one order the
// aggressive order could trade against.
func (s *OrderBookSide) hasFacing(agg *types.Order) bool {
	if len(s.levels) == 0 {
		return false
	}
	// the best level is at the end of the slice
	return s.checkPriceFor(agg)(s.levels[len(s.levels)-1].price)
}

// facingVolume sums the price compatible volume facing the aggressive
// order, stopping as soon as the order's remaining is covered.
func (s *OrderBookSide) facingVolume(agg *types.Order) uint64 {
	var total uint64
	checkPrice := s.checkPriceFor(agg)
	for i := len(s.levels) - 1; i >= 0; i-- {
		if !checkPrice(s.levels[i].price) {
			break
		}
		total += s.levels[i].volume
		if total >= agg.Remaining {
			break
		}
	}
	return total
}

// uncross applies trades against this side in price-time priority until the
// aggressive order is exhausted or no compatible level remains. Emptied
// levels are removed. It returns the trades and the impacted passive
// orders, in trade order.
func (s *OrderBookSide) uncross(agg *types.Order) ([]*types.Trade, []*types.Order) {
	var (
		trades         []*types.Trade
		impactedOrders []*types.Order
		idx            = len(s.levels) - 1
		filled         bool
	)

	checkPrice := s.checkPriceFor(agg)

	// iterate from the end, price levels are cheaper to remove from the
	// back of the slice
	for !filled && idx >= 0 {
		if !checkPrice(s.levels[idx].price) {
			break
		}
		var (
			ntrades []*types.Trade
			nimpact []*types.Order
		)
		filled, ntrades, nimpact = s.levels[idx].uncross(agg)
		trades = append(trades, ntrades...)
		impactedOrders = append(impactedOrders, nimpact...)
		if len(s.levels[idx].orders) <= 0 {
			idx--
		}
	}

	// nil the emptied levels and resize the slice
	if idx < 0 || len(s.levels[idx].orders) > 0 {
		idx++
	}
	if idx < len(s.levels) {
		for i := idx; i < len(s.levels); i++ {
			s.levels[i] = nil
		}
		s.levels = s.levels[:idx]
	}

	if s.log.IsDebug() && len(trades) > 0 {
		s.log.Debug("uncrossed side",
			logging.String("side", s.side.String()),
			logging.Int("trades", len(trades)),
			logging.Uint64("aggressor-remaining", agg.Remaining))
	}

	return trades, impactedOrders
}

func (s *OrderBookSide) getLevels() []*PriceLevel {
	return s.levels
}

func (s *OrderBookSide) getOrderCount() int64 {
	var orderCount int64
	for _, level := range s.levels {
		orderCount = orderCount + int64(len(level.orders))
	}
	return orderCount
}

func (s *OrderBookSide) getTotalVolume() int64 {
	var volume int64
	for _, level := range s.levels {
		volume = volume + int64(level.volume)
	}
	return volume
}
