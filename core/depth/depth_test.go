package depth_test

import (
	"testing"

	"github.com/Quod-Financial/quantreplay-sub002/core/depth"
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/libs/num"
	"github.com/Quod-Financial/quantreplay-sub002/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestBook(t *testing.T) *depth.Book {
	t.Helper()
	return depth.New(logging.NewTestLogger(), depth.NewDefaultConfig(), "venue")
}

func restingConfirmation(id string, side types.Side, price, size uint64) *types.OrderConfirmation {
	return &types.OrderConfirmation{
		Order: &types.Order{
			ID:          id,
			Party:       "party-" + id,
			Side:        side,
			Price:       num.NewUint(price),
			Size:        size,
			Remaining:   size,
			TimeInForce: types.OrderTimeInForceDay,
			Type:        types.OrderTypeLimit,
			Status:      types.OrderStatusActive,
		},
	}
}

func TestRestingOrdersBuildLevels(t *testing.T) {
	book := getTestBook(t)
	book.OnConfirmation(restingConfirmation("B1", types.SideBuy, 100, 10))
	book.OnConfirmation(restingConfirmation("B2", types.SideBuy, 100, 5))
	book.OnConfirmation(restingConfirmation("B3", types.SideBuy, 99, 7))
	book.OnConfirmation(restingConfirmation("S1", types.SideSell, 101, 3))

	bid, ok := book.BestBid()
	require.True(t, ok)
	assert.True(t, bid.Price.EQ(num.NewUint(100)))
	assert.Equal(t, uint64(15), bid.Volume)
	assert.Equal(t, uint64(2), bid.Orders)

	ask, ok := book.BestAsk()
	require.True(t, ok)
	assert.True(t, ask.Price.EQ(num.NewUint(101)))
	assert.Equal(t, uint64(3), ask.Volume)

	levels := book.Levels(types.SideBuy, 10)
	require.Len(t, levels, 2)
	// best first
	assert.True(t, levels[0].Price.EQ(num.NewUint(100)))
	assert.True(t, levels[1].Price.EQ(num.NewUint(99)))
}

func TestTradesReduceThePassiveSide(t *testing.T) {
	book := getTestBook(t)
	book.OnConfirmation(restingConfirmation("B1", types.SideBuy, 100, 10))

	// an aggressive sell fully fills the resting buy
	passive := &types.Order{
		ID: "B1", Party: "party-B1", Side: types.SideBuy,
		Price: num.NewUint(100), Size: 10, Remaining: 0,
		Status: types.OrderStatusFilled,
	}
	agg := &types.Order{
		ID: "S1", Party: "party-S1", Side: types.SideSell,
		Price: num.NewUint(100), Size: 10, Remaining: 0,
		TimeInForce: types.OrderTimeInForceDay,
		Type:        types.OrderTypeLimit,
		Status:      types.OrderStatusFilled,
	}
	book.OnConfirmation(&types.OrderConfirmation{
		Order: agg,
		Trades: []*types.Trade{{
			ID: "M-0000000001", Price: num.NewUint(100), Size: 10,
			Buyer: "party-B1", Seller: "party-S1",
		}},
		PassiveOrdersAffected: []*types.Order{passive},
	})

	_, ok := book.BestBid()
	assert.False(t, ok)

	trades := book.RecentTrades()
	require.Len(t, trades, 1)
	assert.Equal(t, "M-0000000001", trades[0].ID)
}

func TestRejectedOrdersLeaveTheViewUntouched(t *testing.T) {
	book := getTestBook(t)
	conf := restingConfirmation("B1", types.SideBuy, 100, 10)
	conf.Order.Status = types.OrderStatusRejected
	book.OnConfirmation(conf)

	_, ok := book.BestBid()
	assert.False(t, ok)
}

func TestNonPersistentOrdersAreNotAdded(t *testing.T) {
	book := getTestBook(t)
	conf := restingConfirmation("I1", types.SideBuy, 100, 10)
	conf.Order.TimeInForce = types.OrderTimeInForceIOC
	conf.Order.Status = types.OrderStatusPartiallyFilled
	book.OnConfirmation(conf)

	_, ok := book.BestBid()
	assert.False(t, ok)
}

func TestCancelRemovesVolume(t *testing.T) {
	book := getTestBook(t)
	conf := restingConfirmation("B1", types.SideBuy, 100, 10)
	book.OnConfirmation(conf)

	book.OnCancel(conf.Order)
	_, ok := book.BestBid()
	assert.False(t, ok)
}

func TestOwnOrdersCanBeExcluded(t *testing.T) {
	cfg := depth.NewDefaultConfig()
	cfg.ExcludeOwnOrders = true
	book := depth.New(logging.NewTestLogger(), cfg, "venue")

	conf := restingConfirmation("B1", types.SideBuy, 100, 10)
	conf.Order.Party = "venue"
	book.OnConfirmation(conf)

	_, ok := book.BestBid()
	assert.False(t, ok)

	other := restingConfirmation("B2", types.SideBuy, 100, 5)
	book.OnConfirmation(other)
	bid, ok := book.BestBid()
	require.True(t, ok)
	assert.Equal(t, uint64(5), bid.Volume)
}

func TestTradesAgainstOwnOrdersLeaveOtherVolumeIntact(t *testing.T) {
	cfg := depth.NewDefaultConfig()
	cfg.ExcludeOwnOrders = true
	book := depth.New(logging.NewTestLogger(), cfg, "venue")

	// the venue's own buy at 100 never enters the view
	own := restingConfirmation("B1", types.SideBuy, 100, 10)
	own.Order.Party = "venue"
	book.OnConfirmation(own)

	// a third party buy at the same price does
	book.OnConfirmation(restingConfirmation("B2", types.SideBuy, 100, 5))

	// an aggressive sell fills the own order, the third party level
	// keeps its volume
	book.OnConfirmation(&types.OrderConfirmation{
		Order: &types.Order{
			ID: "S1", Party: "party-S1", Side: types.SideSell,
			Price: num.NewUint(100), Size: 10, Remaining: 0,
			TimeInForce: types.OrderTimeInForceDay,
			Type:        types.OrderTypeLimit,
			Status:      types.OrderStatusFilled,
		},
		Trades: []*types.Trade{{
			ID: "M-0000000001", Price: num.NewUint(100), Size: 10,
			Buyer: "venue", Seller: "party-S1",
		}},
		PassiveOrdersAffected: []*types.Order{{
			ID: "B1", Party: "venue", Side: types.SideBuy,
			Price: num.NewUint(100), Size: 10, Remaining: 0,
			Status: types.OrderStatusFilled,
		}},
	})

	bid, ok := book.BestBid()
	require.True(t, ok)
	assert.Equal(t, uint64(5), bid.Volume)
	assert.Equal(t, uint64(1), bid.Orders)
}

func TestRecentTradesAreBounded(t *testing.T) {
	cfg := depth.NewDefaultConfig()
	cfg.RecentTradeCache = 2
	book := depth.New(logging.NewTestLogger(), cfg, "venue")

	for _, id := range []string{"M-1", "M-2", "M-3"} {
		book.OnConfirmation(&types.OrderConfirmation{
			Order: &types.Order{
				ID: "X", Side: types.SideSell, Price: num.NewUint(1),
				Status: types.OrderStatusFilled,
			},
			Trades: []*types.Trade{{ID: id, Price: num.NewUint(1), Size: 1}},
		})
	}

	trades := book.RecentTrades()
	require.Len(t, trades, 2)
	// the oldest was evicted
	assert.Equal(t, "M-2", trades[0].ID)
	assert.Equal(t, "M-3", trades[1].ID)
}
