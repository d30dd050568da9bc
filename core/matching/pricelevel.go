package matching

import (
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/libs/num"
)

// PriceLevel holds the resting orders at one price, in arrival order.
type PriceLevel struct {
	price  *num.Uint
	orders []*types.Order
	volume uint64
}

func NewPriceLevel(price *num.Uint) *PriceLevel {
	return &PriceLevel{
		price:  price,
		orders: []*types.Order{},
	}
}

func (l *PriceLevel) addOrder(o *types.Order) {
	// orders are appended, so the slice stays sorted by submission sequence
	l.orders = append(l.orders, o)
	l.volume += o.Remaining
}

func (l *PriceLevel) removeOrder(index int) {
	l.reduceVolume(l.orders[index].Remaining)
	copy(l.orders[index:], l.orders[index+1:])
	l.orders = l.orders[:len(l.orders)-1]
}

func (l *PriceLevel) reduceVolume(reduceBy uint64) {
	l.volume -= reduceBy
}

// uncross trades the aggressive order against this level in arrival order
// until either the aggressor or the level is exhausted. It returns whether
// the aggressor was fully filled, the trades done and the passive orders
// impacted, flat ones already removed from the level.
func (l *PriceLevel) uncross(agg *types.Order) (bool, []*types.Trade, []*types.Order) {
	var (
		trades   []*types.Trade
		impacted []*types.Order
		removed  int
	)

	for _, pass := range l.orders {
		trade := newTrade(agg, pass)

		agg.Remaining -= trade.Size
		pass.Remaining -= trade.Size
		l.reduceVolume(trade.Size)

		if pass.Remaining == 0 {
			pass.Status = types.OrderStatusFilled
			removed++
		}

		trades = append(trades, trade)
		impacted = append(impacted, pass)

		if agg.Remaining == 0 {
			break
		}
	}

	if removed > 0 {
		copy(l.orders, l.orders[removed:])
		for i := len(l.orders) - removed; i < len(l.orders); i++ {
			l.orders[i] = nil
		}
		l.orders = l.orders[:len(l.orders)-removed]
	}

	return agg.Remaining == 0, trades, impacted
}

// newTrade creates a trade between two orders for the maximum tradable
// size. The trade price is always the passive (resting) order's price.
func newTrade(agg, pass *types.Order) *types.Trade {
	size := num.MinV(agg.Remaining, pass.Remaining)

	trade := &types.Trade{
		Instrument: agg.Instrument,
		Price:      pass.Price.Clone(),
		Size:       size,
		Aggressor:  agg.Side,
	}
	if agg.Side == types.SideBuy {
		trade.Buyer, trade.Seller = agg.Party, pass.Party
		trade.BuyOrder, trade.SellOrder = agg.ID, pass.ID
	} else {
		trade.Buyer, trade.Seller = pass.Party, agg.Party
		trade.BuyOrder, trade.SellOrder = pass.ID, agg.ID
	}
	return trade
}
