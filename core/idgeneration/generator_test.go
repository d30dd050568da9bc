package idgeneration_test

import (
	"testing"

	"github.com/Quod-Financial/quantreplay-sub002/core/idgeneration"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceStartsAtOne(t *testing.T) {
	var s idgeneration.Sequence

	assert.Equal(t, uint64(0), s.Current())
	assert.Equal(t, uint64(1), s.Next())
	assert.Equal(t, uint64(2), s.Next())
	assert.Equal(t, uint64(2), s.Current())
}

func TestOrderIDsAreMonotonic(t *testing.T) {
	gen := idgeneration.New()

	first, err := gen.NextOrderID()
	require.NoError(t, err)
	second, err := gen.NextOrderID()
	require.NoError(t, err)

	assert.Equal(t, "O-0000000001", first)
	assert.Equal(t, "O-0000000002", second)
	assert.Equal(t, uint64(2), gen.OrderSequence().Current())
	assert.Equal(t, uint64(0), gen.MarketEntrySequence().Current())
}

func TestMarketEntryIDsAreMonotonic(t *testing.T) {
	gen := idgeneration.New()

	first, err := gen.NextMarketEntryID()
	require.NoError(t, err)
	second, err := gen.NextMarketEntryID()
	require.NoError(t, err)

	assert.Equal(t, "M-0000000001", first)
	assert.Equal(t, "M-0000000002", second)
}

func TestExecutionIDsCountPerOrder(t *testing.T) {
	gen := idgeneration.New()

	first, err := gen.NextExecutionID("O-0000000001")
	require.NoError(t, err)
	second, err := gen.NextExecutionID("O-0000000001")
	require.NoError(t, err)
	other, err := gen.NextExecutionID("O-0000000002")
	require.NoError(t, err)

	assert.Equal(t, "O-0000000001-1", first)
	assert.Equal(t, "O-0000000001-2", second)
	// the counter is per order, a second order starts at 1 again
	assert.Equal(t, "O-0000000002-1", other)
}

func TestRestoredIDsCollide(t *testing.T) {
	gen := idgeneration.New()
	gen.Restore("O-0000000001", "M-0000000001", "O-0000000009-1")

	_, err := gen.NextOrderID()
	require.Error(t, err)
	assert.True(t, errors.Is(err, idgeneration.ErrCollisionDetected))

	_, err = gen.NextMarketEntryID()
	require.Error(t, err)
	assert.True(t, errors.Is(err, idgeneration.ErrCollisionDetected))

	_, err = gen.NextExecutionID("O-0000000009")
	require.Error(t, err)
	assert.True(t, errors.Is(err, idgeneration.ErrCollisionDetected))
}

func TestCollisionDoesNotStopTheGenerator(t *testing.T) {
	gen := idgeneration.New()
	gen.Restore("O-0000000001")

	_, err := gen.NextOrderID()
	require.Error(t, err)

	// the sequence advanced past the collision, the next issue succeeds
	id, err := gen.NextOrderID()
	require.NoError(t, err)
	assert.Equal(t, "O-0000000002", id)
}
