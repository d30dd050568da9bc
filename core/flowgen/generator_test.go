package flowgen_test

import (
	"testing"

	"github.com/Quod-Financial/quantreplay-sub002/core/flowgen"
	"github.com/Quod-Financial/quantreplay-sub002/core/instruments"
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/libs/num"
	"github.com/Quod-Financial/quantreplay-sub002/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func u64Ptr(v uint64) *uint64 { return &v }

func testInstrument(t *testing.T) *instruments.Instrument {
	t.Helper()
	in, err := instruments.NewFromListing(instruments.Listing{
		ID:           "AAPL",
		PriceTick:    strPtr("5"),
		QuantityTick: u64Ptr(10),
		MinQuantity:  u64Ptr(10),
		MaxQuantity:  u64Ptr(500),
		PriceSeed:    strPtr("1000"),
	})
	require.NoError(t, err)
	return in
}

func testConfig() flowgen.Config {
	cfg := flowgen.NewDefaultConfig()
	cfg.Seed = 42
	cfg.MinSize = 1
	cfg.MaxSize = 1000
	return cfg
}

func TestFlowIsDeterministicPerSeed(t *testing.T) {
	in := testInstrument(t)
	log := logging.NewTestLogger()

	a := flowgen.New(log, testConfig(), in, true, true, true)
	b := flowgen.New(log, testConfig(), in, true, true, true)

	for i := 0; i < 50; i++ {
		subA, subB := a.Next(), b.Next()
		assert.Equal(t, subA.Side, subB.Side)
		assert.Equal(t, subA.Size, subB.Size)
		assert.Equal(t, subA.TimeInForce, subB.TimeInForce)
		assert.Equal(t, subA.Type, subB.Type)
		if subA.Type == types.OrderTypeLimit {
			assert.True(t, subA.Price.EQ(subB.Price))
		}
	}
}

func TestGeneratedOrdersHonourInstrumentConstraints(t *testing.T) {
	in := testInstrument(t)
	gen := flowgen.New(logging.NewTestLogger(), testConfig(), in, true, true, true)

	for i := 0; i < 200; i++ {
		sub := gen.Next()
		assert.Equal(t, "AAPL", sub.Instrument)
		assert.NotEmpty(t, sub.Party)
		assert.GreaterOrEqual(t, sub.Size, uint64(10))
		assert.LessOrEqual(t, sub.Size, uint64(500))
		assert.Zero(t, sub.Size%10, "size %d not aligned to the quantity tick", sub.Size)

		switch sub.Type {
		case types.OrderTypeLimit:
			require.NotNil(t, sub.Price)
			assert.False(t, sub.Price.IsZero())
			mod := sub.Price.Clone()
			mod.Mod(mod, in.PriceTick)
			assert.True(t, mod.IsZero(), "price %s not aligned to the price tick", sub.Price)
		case types.OrderTypeMarket:
			assert.Equal(t, types.OrderTimeInForceIOC, sub.TimeInForce)
		}
	}
}

func TestFlowRestrictedToSupportedTimeInForce(t *testing.T) {
	in := testInstrument(t)
	gen := flowgen.New(logging.NewTestLogger(), testConfig(), in, true, false, false)

	for i := 0; i < 200; i++ {
		sub := gen.Next()
		assert.Equal(t, types.OrderTimeInForceDay, sub.TimeInForce)
		assert.Equal(t, types.OrderTypeLimit, sub.Type)
	}
}

func TestReferencePriceWalks(t *testing.T) {
	in := testInstrument(t)
	gen := flowgen.New(logging.NewTestLogger(), testConfig(), in, true, true, true)

	start := gen.Reference()
	for i := 0; i < 100; i++ {
		gen.Next()
	}
	assert.NotEqual(t, start.String(), gen.Reference().String())
	// the walk never drops below one tick
	assert.True(t, gen.Reference().GreaterThanOrEqual(num.MustDecimalFromString("5")))
}
