package instruments_test

import (
	"testing"

	"github.com/Quod-Financial/quantreplay-sub002/core/instruments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func u64Ptr(v uint64) *uint64 { return &v }

func TestListingDefaults(t *testing.T) {
	in, err := instruments.NewFromListing(instruments.Listing{ID: "AAPL"})
	require.NoError(t, err)

	assert.Equal(t, "AAPL", in.ID)
	assert.Equal(t, uint64(1), in.PriceTick.Uint64())
	assert.Equal(t, uint64(1), in.QuantityTick)
	assert.Equal(t, uint64(0), in.MinQuantity)
	assert.Equal(t, uint64(0), in.MaxQuantity)
	assert.Equal(t, "100", in.PriceSeed.String())
}

func TestListingFieldsApplied(t *testing.T) {
	in, err := instruments.NewFromListing(instruments.Listing{
		ID:           "AAPL",
		Symbol:       strPtr("Apple Inc"),
		ISIN:         strPtr("US0378331005"),
		PriceTick:    strPtr("5"),
		QuantityTick: u64Ptr(10),
		MinQuantity:  u64Ptr(10),
		MaxQuantity:  u64Ptr(1000),
		PriceSeed:    strPtr("182.5"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Apple Inc", in.Symbol)
	assert.Equal(t, "US0378331005", in.ISIN)
	assert.Equal(t, uint64(5), in.PriceTick.Uint64())
	assert.Equal(t, uint64(10), in.QuantityTick)
	assert.Equal(t, uint64(10), in.MinQuantity)
	assert.Equal(t, uint64(1000), in.MaxQuantity)
	assert.Equal(t, "182.5", in.PriceSeed.String())
}

func TestListingValidation(t *testing.T) {
	_, err := instruments.NewFromListing(instruments.Listing{})
	assert.ErrorIs(t, err, instruments.ErrMissingListingID)

	_, err = instruments.NewFromListing(instruments.Listing{
		ID: "X", PriceTick: strPtr("0"),
	})
	assert.Error(t, err)

	_, err = instruments.NewFromListing(instruments.Listing{
		ID: "X", PriceTick: strPtr("not a number"),
	})
	assert.Error(t, err)

	_, err = instruments.NewFromListing(instruments.Listing{
		ID: "X", QuantityTick: u64Ptr(0),
	})
	assert.Error(t, err)

	_, err = instruments.NewFromListing(instruments.Listing{
		ID: "X", MinQuantity: u64Ptr(100), MaxQuantity: u64Ptr(10),
	})
	assert.Error(t, err)

	_, err = instruments.NewFromListing(instruments.Listing{
		ID: "X", PriceSeed: strPtr("not a price"),
	})
	assert.Error(t, err)
}
