package num_test

import (
	"testing"

	"github.com/Quod-Financial/quantreplay-sub002/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintFromString(t *testing.T) {
	u, overflow := num.UintFromString("42", 10)
	require.False(t, overflow)
	assert.Equal(t, uint64(42), u.Uint64())

	_, overflow = num.UintFromString("-1", 10)
	assert.True(t, overflow)

	_, overflow = num.UintFromString("not a number", 10)
	assert.True(t, overflow)

	// one above the 256 bit maximum
	_, overflow = num.UintFromString(
		"115792089237316195423570985008687907853269984665640564039457584007913129639936", 10)
	assert.True(t, overflow)
}

func TestUintArithmetic(t *testing.T) {
	a := num.NewUint(100)
	b := num.NewUint(42)

	assert.Equal(t, uint64(142), num.UintZero().Add(a, b).Uint64())
	assert.Equal(t, uint64(58), num.UintZero().Sub(a, b).Uint64())
	assert.Equal(t, uint64(4200), num.UintZero().Mul(a, b).Uint64())
	assert.Equal(t, uint64(2), num.UintZero().Div(a, b).Uint64())
	assert.Equal(t, uint64(16), num.UintZero().Mod(a, b).Uint64())

	// the operands are left untouched
	assert.Equal(t, uint64(100), a.Uint64())
	assert.Equal(t, uint64(42), b.Uint64())
}

func TestUintCloneDoesNotAlias(t *testing.T) {
	a := num.NewUint(10)
	c := a.Clone()
	c.Add(c, num.NewUint(1))

	assert.Equal(t, uint64(10), a.Uint64())
	assert.Equal(t, uint64(11), c.Uint64())
}

func TestUintComparisons(t *testing.T) {
	small, big := num.NewUint(1), num.NewUint(2)

	assert.True(t, small.LT(big))
	assert.True(t, small.LTE(big))
	assert.True(t, big.GT(small))
	assert.True(t, big.GTE(small))
	assert.True(t, small.NEQ(big))
	assert.True(t, small.EQ(num.NewUint(1)))
	assert.True(t, num.UintZero().IsZero())
}

func TestUintTextRoundTrip(t *testing.T) {
	u := num.MustUintFromString("340282366920938463463374607431768211456")

	text, err := u.MarshalText()
	require.NoError(t, err)

	var back num.Uint
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, u.EQ(&back))

	assert.Error(t, back.UnmarshalText([]byte("-5")))
}

func TestUintMinMax(t *testing.T) {
	a, b := num.NewUint(3), num.NewUint(7)

	assert.Equal(t, uint64(3), num.Min(a, b).Uint64())
	assert.Equal(t, uint64(7), num.Max(a, b).Uint64())
	assert.Equal(t, uint64(3), num.MinV(3, 7))
	assert.Equal(t, uint64(7), num.MaxV(3, 7))
}

func TestDecimalUintConversions(t *testing.T) {
	u := num.NewUint(125)
	d := num.DecimalFromUint(u)
	assert.Equal(t, "125", d.String())

	back, overflow := num.UintFromDecimal(num.MustDecimalFromString("125.9"))
	require.False(t, overflow)
	assert.Equal(t, uint64(125), back.Uint64())

	_, overflow = num.UintFromDecimal(num.MustDecimalFromString("-1"))
	assert.True(t, overflow)
}
