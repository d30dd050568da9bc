package num

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Uint is a wrapper over a 256-bit unsigned integer, used for prices
// and notional amounts so arithmetic can never overflow a machine word.
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint from a uint64.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// UintZero returns a new Uint set to zero.
func UintZero() *Uint {
	return NewUint(0)
}

// UintFromString created a new Uint from a string
// interpreted using the given base. A big.Int is used to
// read the string, so all the bases supported by big.Int are
// supported. The second return value is true in case of error.
func UintFromString(str string, base int) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, base)
	if !ok {
		return UintZero(), true
	}
	return UintFromBig(b)
}

// UintFromBig construct a new Uint with a big.Int,
// the second return value is true if an overflow happened.
func UintFromBig(b *big.Int) (*Uint, bool) {
	if b.Sign() < 0 {
		return UintZero(), true
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return UintZero(), true
	}
	return &Uint{*u}, false
}

// MustUintFromString parses a base-10 Uint or panics.
func MustUintFromString(str string) *Uint {
	u, overflow := UintFromString(str, 10)
	if overflow {
		panic("failed to parse unsigned integer: " + str)
	}
	return u
}

// Clone creates a copy of the Uint so it can be shared without
// aliasing the underlying storage.
func (u Uint) Clone() *Uint {
	return &Uint{u.u}
}

// Copy sets z to x and returns z.
func (z *Uint) Copy(x *Uint) *Uint {
	z.u = x.u
	return z
}

// Add sets z to x+y and returns z.
func (z *Uint) Add(x, y *Uint) *Uint {
	z.u.Add(&x.u, &y.u)
	return z
}

// AddSum adds all the Uints to z, mutating z.
func (z *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		z.u.Add(&z.u, &x.u)
	}
	return z
}

// Sub sets z to x-y and returns z.
func (z *Uint) Sub(x, y *Uint) *Uint {
	z.u.Sub(&x.u, &y.u)
	return z
}

// Mul sets z to x*y and returns z.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.u.Mul(&x.u, &y.u)
	return z
}

// Div sets z to x/y and returns z.
func (z *Uint) Div(x, y *Uint) *Uint {
	z.u.Div(&x.u, &y.u)
	return z
}

// Mod sets z to x mod y and returns z.
func (z *Uint) Mod(x, y *Uint) *Uint {
	z.u.Mod(&x.u, &y.u)
	return z
}

// EQ returns true if u == oth.
func (u Uint) EQ(oth *Uint) bool {
	return u.u.Eq(&oth.u)
}

// NEQ returns true if u != oth.
func (u Uint) NEQ(oth *Uint) bool {
	return !u.u.Eq(&oth.u)
}

// GT returns true if u > oth.
func (u Uint) GT(oth *Uint) bool {
	return u.u.Gt(&oth.u)
}

// GTE returns true if u >= oth.
func (u Uint) GTE(oth *Uint) bool {
	return !u.u.Lt(&oth.u)
}

// LT returns true if u < oth.
func (u Uint) LT(oth *Uint) bool {
	return u.u.Lt(&oth.u)
}

// LTE returns true if u <= oth.
func (u Uint) LTE(oth *Uint) bool {
	return !u.u.Gt(&oth.u)
}

// IsZero returns true if u == 0.
func (u Uint) IsZero() bool {
	return u.u.IsZero()
}

// Uint64 returns the lower 64 bits of u.
func (u Uint) Uint64() uint64 {
	return u.u.Uint64()
}

// Bytes returns the big endian 32 byte representation of u.
func (u Uint) Bytes() [32]byte {
	return u.u.Bytes32()
}

// BigInt returns a big.Int version of u.
func (u Uint) BigInt() *big.Int {
	return u.u.ToBig()
}

func (u Uint) String() string {
	return u.u.ToBig().String()
}

// UintToString returns the string representation, handling nil.
func UintToString(u *Uint) string {
	if u == nil {
		return ""
	}
	return u.String()
}

// MarshalText implements encoding.TextMarshaler so prices can be
// journalled and configured as plain decimal strings.
func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Uint) UnmarshalText(text []byte) error {
	v, overflow := UintFromString(string(text), 10)
	if overflow {
		return errInvalidUint(string(text))
	}
	u.u = v.u
	return nil
}

type errInvalidUint string

func (e errInvalidUint) Error() string {
	return "invalid unsigned integer: " + string(e)
}

// Min returns the smallest of the two Uints, as a clone.
func Min(a, b *Uint) *Uint {
	if a.LT(b) {
		return a.Clone()
	}
	return b.Clone()
}

// Max returns the largest of the two Uints, as a clone.
func Max(a, b *Uint) *Uint {
	if a.GT(b) {
		return a.Clone()
	}
	return b.Clone()
}

// MinV returns the smallest of two uint64s.
func MinV(x, y uint64) uint64 {
	if y < x {
		return y
	}
	return x
}

// MaxV returns the largest of two uint64s.
func MaxV(x, y uint64) uint64 {
	if y > x {
		return y
	}
	return x
}
