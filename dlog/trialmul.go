// Package dlog computes the discrete logarithm in (Z/nZ)*: given n, a, b
// it finds the smallest non-negative x with b^x = a (mod n), dispatching
// across trial multiplication, baby-step/giant-step, Pollard's rho,
// Pohlig-Hellman and index calculus depending on the order and n.
package dlog

import (
	"github.com/bfix/dlog/bignum"
	"github.com/bfix/dlog/derr"
	"github.com/bfix/dlog/norder"
)

// TrialMul computes the discrete logarithm of a in base b modulo n by
// exhaustive search: x_i = b^i mod n for i = 0,1,2,..., stopping at the
// first match or after order iterations. It is the naive fallback the
// dispatcher uses only for tiny orders (< 1000).
func TrialMul(n, a, b *bignum.Int, order *bignum.Int) (*bignum.Int, error) {
	a = a.Mod(n)
	b = b.Mod(n)
	if order == nil {
		order = n
	}

	x := bignum.ONE
	i := bignum.ZERO
	for i.Cmp(order) < 0 {
		if x.Equals(a) {
			return i, nil
		}
		x = x.Mul(b).Mod(n)
		i = i.Add(bignum.ONE)
	}
	return nil, derr.LogDoesNotExist("trial_mul exhausted order=%v for n=%v, a=%v, b=%v", order, n, a, b)
}

// TrialMulAuto computes the order via norder.Order when none is given,
// propagating NotRelativelyPrime.
func TrialMulAuto(n, a, b *bignum.Int, order *bignum.Int) (*bignum.Int, error) {
	if order == nil {
		o, err := norder.Order(b.Mod(n), n)
		if err != nil {
			return nil, err
		}
		order = o
	}
	return TrialMul(n, a, b, order)
}
