package depth

import (
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/libs/num"
	"github.com/Quod-Financial/quantreplay-sub002/logging"

	"github.com/google/btree"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Level is one aggregated price level of the depth view.
type Level struct {
	Price  *num.Uint
	Volume uint64
	Orders uint64
}

// Book maintains an aggregated market depth view for one instrument, fed
// from order confirmations and cancellations. Like the matching state it
// belongs to a single instrument goroutine and is not safe for concurrent
// use.
type Book struct {
	log *logging.Logger
	cfg Config

	ownParty string

	buy  *btree.BTreeG[*Level]
	sell *btree.BTreeG[*Level]

	recent *lru.Cache[string, *types.Trade]
}

// New creates an empty depth view. ownParty identifies the venue's own
// orders for the exclusion flag.
func New(log *logging.Logger, config Config, ownParty string) *Book {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	size := config.RecentTradeCache
	if size <= 0 {
		size = 1
	}
	recent, err := lru.New[string, *types.Trade](size)
	if err != nil {
		log.Panic("failed to create recent trade cache", logging.Error(err))
	}

	less := func(a, b *Level) bool { return a.Price.LT(b.Price) }
	return &Book{
		log:      log,
		cfg:      config,
		ownParty: ownParty,
		buy:      btree.NewG(8, less),
		sell:     btree.NewG(8, less),
		recent:   recent,
	}
}

func (b *Book) treeFor(side types.Side) *btree.BTreeG[*Level] {
	if side == types.SideBuy {
		return b.buy
	}
	return b.sell
}

func (b *Book) excluded(party string) bool {
	return bool(b.cfg.ExcludeOwnOrders) && party == b.ownParty
}

// OnConfirmation updates the view from a placement confirmation: trades
// reduce the passive side, flat passive orders drop from the order count,
// and a resting remainder is added to its side.
func (b *Book) OnConfirmation(conf *types.OrderConfirmation) {
	if conf == nil || conf.Order == nil || conf.Rejected() {
		return
	}

	passiveSide := conf.Order.Side.Opposite()
	for _, t := range conf.Trades {
		b.recordTrade(t)
		// excluded own orders never contributed volume to the view
		passiveParty := t.Seller
		if passiveSide == types.SideBuy {
			passiveParty = t.Buyer
		}
		if b.excluded(passiveParty) {
			continue
		}
		b.reduce(passiveSide, t.Price, t.Size, 0)
	}
	for _, po := range conf.PassiveOrdersAffected {
		if po.Remaining == 0 && !b.excluded(po.Party) {
			b.reduce(po.Side, po.Price, 0, 1)
		}
	}

	o := conf.Order
	if o.Status == types.OrderStatusActive && o.IsPersistent() && !b.excluded(o.Party) {
		b.add(o.Side, o.Price, o.Remaining)
	}
}

// OnCancel removes a cancelled order's remaining volume from the view.
func (b *Book) OnCancel(o *types.Order) {
	if o == nil || b.excluded(o.Party) {
		return
	}
	b.reduce(o.Side, o.Price, o.Remaining, 1)
}

func (b *Book) add(side types.Side, price *num.Uint, volume uint64) {
	tree := b.treeFor(side)
	lvl, ok := tree.Get(&Level{Price: price})
	if !ok {
		lvl = &Level{Price: price.Clone()}
		tree.ReplaceOrInsert(lvl)
	}
	lvl.Volume += volume
	lvl.Orders++
}

func (b *Book) reduce(side types.Side, price *num.Uint, volume, orders uint64) {
	tree := b.treeFor(side)
	lvl, ok := tree.Get(&Level{Price: price})
	if !ok {
		return
	}
	if volume >= lvl.Volume {
		lvl.Volume = 0
	} else {
		lvl.Volume -= volume
	}
	if orders >= lvl.Orders {
		lvl.Orders = 0
	} else {
		lvl.Orders -= orders
	}
	if lvl.Volume == 0 && lvl.Orders == 0 {
		tree.Delete(lvl)
	}
}

func (b *Book) recordTrade(t *types.Trade) {
	if t.ID == "" {
		return
	}
	b.recent.Add(t.ID, t)
}

// BestBid returns the highest buy level.
func (b *Book) BestBid() (Level, bool) {
	var best *Level
	b.buy.Descend(func(l *Level) bool {
		best = l
		return false
	})
	if best == nil {
		return Level{}, false
	}
	return *best, true
}

// BestAsk returns the lowest sell level.
func (b *Book) BestAsk() (Level, bool) {
	var best *Level
	b.sell.Ascend(func(l *Level) bool {
		best = l
		return false
	})
	if best == nil {
		return Level{}, false
	}
	return *best, true
}

// Levels returns up to maxLevels aggregated levels for a side, best first.
func (b *Book) Levels(side types.Side, maxLevels int) []Level {
	out := make([]Level, 0, maxLevels)
	collect := func(l *Level) bool {
		out = append(out, *l)
		return len(out) < maxLevels
	}
	if side == types.SideBuy {
		b.buy.Descend(collect)
	} else {
		b.sell.Ascend(collect)
	}
	return out
}

// RecentTrades returns the cached trades, oldest first.
func (b *Book) RecentTrades() []*types.Trade {
	keys := b.recent.Keys()
	out := make([]*types.Trade, 0, len(keys))
	for _, k := range keys {
		if t, ok := b.recent.Get(k); ok {
			out = append(out, t)
		}
	}
	return out
}
