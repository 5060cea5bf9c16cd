package bignum

import (
	"crypto/rand"
	"math"
	"math/big"
)

var (
	// ZERO as number "0"
	ZERO = NewInt(0)
	// ONE as number "1"
	ONE = NewInt(1)
	// TWO as number "2"
	TWO = NewInt(2)
	// THREE as number "3"
	THREE = NewInt(3)
)

// Int is an arbitrary-precision signed integer, wrapping math/big so the
// rest of the module depends on a single, swappable numeric capability
// instead of *big.Int directly.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an intrinsic int64.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromString converts a decimal string representation into an Int.
// Returns nil if s is not a valid base-10 integer.
func NewIntFromString(s string) *Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil
	}
	return &Int{v: v}
}

// NewIntFromBytes converts a big-endian byte array into an unsigned Int.
func NewIntFromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// NewIntRnd creates a new random value uniformly distributed in [0,upper).
// Panics if upper is not positive, matching the precondition used
// throughout the discrete-log algorithms (random sampling always happens
// against a positive bound).
func NewIntRnd(upper *Int) *Int {
	r, err := rand.Int(rand.Reader, upper.v)
	if err != nil {
		panic(err)
	}
	return &Int{v: r}
}

// NewIntRndRange returns a random Int in [lower,upper].
func NewIntRndRange(lower, upper *Int) *Int {
	return lower.Add(NewIntRnd(upper.Sub(lower).Add(ONE)))
}

// Bytes returns the big-endian byte representation of the Int.
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// Key returns a value suitable for use as a map key, hashing the Int by
// its binary representation the way a baby-step table must: two equal
// values always produce the same key and no allocation-heavy string
// conversion of the decimal form is required.
func (i *Int) Key() string {
	return string(i.v.Bytes())
}

// String converts an Int to its decimal string representation.
func (i *Int) String() string {
	return i.v.String()
}

// ProbablyPrime reports whether i is prime, using n rounds of Miller-Rabin
// (plus a Baillie-PSW check, courtesy of math/big). The chance of a false
// positive is at most 4^(-n).
func (i *Int) ProbablyPrime(n int) bool {
	return i.v.ProbablyPrime(n)
}

// NextProbablePrime returns the smallest probable prime strictly greater
// than i, tested with n rounds of Miller-Rabin. Repeated calls starting
// from 0 yield the ascending sequence 2, 3, 5, 7, ...
func (i *Int) NextProbablePrime(n int) *Int {
	c := i.Add(ONE)
	if c.Cmp(TWO) < 0 {
		return TWO
	}
	if c.v.Bit(0) == 0 {
		c = c.Add(ONE)
	}
	for !c.ProbablyPrime(n) {
		c = c.Add(TWO)
	}
	return c
}

// Add returns i+j.
func (i *Int) Add(j *Int) *Int {
	return &Int{v: new(big.Int).Add(i.v, j.v)}
}

// Sub returns i-j.
func (i *Int) Sub(j *Int) *Int {
	return &Int{v: new(big.Int).Sub(i.v, j.v)}
}

// Mul returns i*j.
func (i *Int) Mul(j *Int) *Int {
	return &Int{v: new(big.Int).Mul(i.v, j.v)}
}

// Div returns the Euclidean quotient i/j (the one paired with a
// non-negative remainder, as in DivMod).
func (i *Int) Div(j *Int) *Int {
	return &Int{v: new(big.Int).Div(i.v, j.v)}
}

// DivMod returns the quotient and canonical non-negative modulus of i/j.
func (i *Int) DivMod(j *Int) (*Int, *Int) {
	q, m := new(big.Int), new(big.Int)
	q.DivMod(i.v, j.v, m)
	return &Int{v: q}, &Int{v: m}
}

// Mod returns the canonical non-negative residue of i in [0,j).
func (i *Int) Mod(j *Int) *Int {
	return &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// BitLen returns the number of bits required to represent i.
func (i *Int) BitLen() int {
	return i.v.BitLen()
}

// Sign returns -1, 0 or 1 depending on the sign of i.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// IsZero reports whether i is 0.
func (i *Int) IsZero() bool {
	return i.v.Sign() == 0
}

// ModInverse returns the multiplicative inverse of i in the ring Z/jZ and
// true, or (nil,false) when gcd(i,j) != 1 and no inverse exists.
func (i *Int) ModInverse(j *Int) (*Int, bool) {
	r := new(big.Int).ModInverse(i.v, j.v)
	if r == nil {
		return nil, false
	}
	return &Int{v: r}, true
}

// Cmp compares i and j, returning -1, 0 or +1.
func (i *Int) Cmp(j *Int) int {
	return i.v.Cmp(j.v)
}

// Equals reports whether i and j denote the same value.
func (i *Int) Equals(j *Int) bool {
	return i.v.Cmp(j.v) == 0
}

// GCD returns the greatest common divisor of i and j.
func (i *Int) GCD(j *Int) *Int {
	return &Int{v: new(big.Int).GCD(nil, nil, i.v, j.v)}
}

// Pow raises i to the small exponent n (n >= 0), unreduced.
func (i *Int) Pow(n int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, big.NewInt(int64(n)), nil)}
}

// ModPow returns i^n mod m.
func (i *Int) ModPow(n, m *Int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, n.v, m.v)}
}

// Sqrt returns the floor of the square root of i. i must be non-negative.
func (i *Int) Sqrt() *Int {
	return &Int{v: new(big.Int).Sqrt(i.v)}
}

// Abs returns the absolute value of i.
func (i *Int) Abs() *Int {
	return &Int{v: new(big.Int).Abs(i.v)}
}

// Int64 returns the int64 value of i, truncating if i does not fit.
func (i *Int) Int64() int64 {
	return i.v.Int64()
}

// Uint64 returns the uint64 value of i, truncating if i does not fit.
func (i *Int) Uint64() uint64 {
	return i.v.Uint64()
}

// IsInt64 reports whether i's value fits in an int64.
func (i *Int) IsInt64() bool {
	return i.v.IsInt64()
}

// Float64 returns the nearest float64 value of i, saturating to +/-Inf
// when i overflows the float64 range instead of returning a meaningless
// truncated value.
func (i *Int) Float64() float64 {
	f := new(big.Float).SetInt(i.v)
	val, acc := f.Float64()
	if math.IsInf(val, 0) {
		return val
	}
	if acc == big.Above && val == math.MaxFloat64 {
		return math.Inf(1)
	}
	if acc == big.Below && val == -math.MaxFloat64 {
		return math.Inf(-1)
	}
	return val
}
