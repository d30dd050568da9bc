package types_test

import (
	"testing"

	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionIntoOrder(t *testing.T) {
	sub := types.OrderSubmission{
		Instrument:  "AAPL",
		Party:       "party-A",
		Side:        types.SideBuy,
		Price:       num.NewUint(100),
		Size:        50,
		TimeInForce: types.OrderTimeInForceDay,
		Type:        types.OrderTypeLimit,
	}

	o := sub.IntoOrder("O-0000000001", 3, 1234567890)

	assert.Equal(t, "O-0000000001", o.ID)
	assert.Equal(t, uint64(3), o.SeqNum)
	assert.Equal(t, int64(1234567890), o.CreatedAt)
	assert.Equal(t, uint64(50), o.Remaining)
	assert.Equal(t, types.OrderStatusActive, o.Status)
	assert.Equal(t, uint64(0), o.Executed())

	// the order owns its price
	sub.Price.Add(sub.Price, num.NewUint(1))
	assert.True(t, o.Price.EQ(num.NewUint(100)))
}

func TestOrderIsPersistent(t *testing.T) {
	o := &types.Order{
		TimeInForce: types.OrderTimeInForceDay,
		Type:        types.OrderTypeLimit,
		Remaining:   10,
	}
	assert.True(t, o.IsPersistent())

	o.TimeInForce = types.OrderTimeInForceGTC
	assert.True(t, o.IsPersistent())

	o.TimeInForce = types.OrderTimeInForceIOC
	assert.False(t, o.IsPersistent())

	o.TimeInForce = types.OrderTimeInForceDay
	o.Remaining = 0
	assert.False(t, o.IsPersistent())

	o.Remaining = 10
	o.Type = types.OrderTypeMarket
	assert.False(t, o.IsPersistent())
}

func TestOrderCloneDoesNotAlias(t *testing.T) {
	o := types.Order{ID: "O-1", Price: num.NewUint(100), Remaining: 5}
	cpy := o.Clone()
	cpy.Price.Add(cpy.Price, num.NewUint(1))
	cpy.Remaining = 0

	assert.True(t, o.Price.EQ(num.NewUint(100)))
	assert.Equal(t, uint64(5), o.Remaining)
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, types.SideSell, types.SideBuy.Opposite())
	assert.Equal(t, types.SideBuy, types.SideSell.Opposite())
	assert.Equal(t, types.SideUnspecified, types.SideUnspecified.Opposite())
}

func TestConfirmationTradedValue(t *testing.T) {
	conf := types.OrderConfirmation{
		Order: &types.Order{},
		Trades: []*types.Trade{
			{Price: num.NewUint(100), Size: 3},
			{Price: num.NewUint(101), Size: 2},
		},
	}

	require.False(t, conf.Rejected())
	assert.True(t, conf.TradedValue().EQ(num.NewUint(502)))
}
