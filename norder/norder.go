// Package norder computes the multiplicative order of a mod n: the
// smallest k >= 1 with a^k = 1 (mod n).
package norder

import (
	"github.com/bfix/dlog/bignum"
	"github.com/bfix/dlog/derr"
	"github.com/bfix/dlog/factor"
)

// Order returns the order of a mod n, factoring n via factor.FastFactor.
func Order(a, n *bignum.Int) (*bignum.Int, error) {
	if n.Cmp(bignum.ONE) <= 0 {
		return nil, derr.NotRelativelyPrime("n=%v is not > 1", n)
	}
	aMod := a.Mod(n)
	if aMod.Equals(bignum.ONE) {
		return bignum.ONE, nil
	}
	if !aMod.GCD(n).Equals(bignum.ONE) {
		return nil, derr.NotRelativelyPrime("gcd(%v, %v) != 1", aMod, n)
	}
	return OrderWithFactors(a, n, factor.FastFactor(n))
}

// OrderWithFactors computes the order of a mod n the same way Order
// does, but reuses an already-known factorization of n (nFactors),
// avoiding a redundant FastFactor(n) call.
func OrderWithFactors(a, n *bignum.Int, nFactors *factor.Map) (*bignum.Int, error) {
	if n.Cmp(bignum.ONE) <= 0 {
		return nil, derr.NotRelativelyPrime("n=%v is not > 1", n)
	}
	aMod := a.Mod(n)
	if aMod.Equals(bignum.ONE) {
		return bignum.ONE, nil
	}
	if !aMod.GCD(n).Equals(bignum.ONE) {
		return nil, derr.NotRelativelyPrime("gcd(%v, %v) != 1", aMod, n)
	}

	// Over-estimate the group exponent G: for each prime power px^kx of
	// n, contribute (kx-1) copies of px plus the prime factors of
	// px-1 (the Euler-phi contribution of that prime power).
	merged := factor.NewMap()
	for _, pf := range nFactors.Entries() {
		if pf.Exp > 1 {
			merged.Add(pf.Prime, pf.Exp-1)
		}
		phi := factor.FastFactor(pf.Prime.Sub(bignum.ONE))
		for _, qf := range phi.Entries() {
			merged.Add(qf.Prime, qf.Exp)
		}
	}

	groupOrder := bignum.ONE
	for _, mf := range merged.Entries() {
		groupOrder = groupOrder.Mul(mf.Prime.Pow(mf.Exp))
	}

	order := bignum.ONE
	for _, mf := range merged.Entries() {
		p, e := mf.Prime, mf.Exp
		exponent := groupOrder
		for f := 0; f <= e; f++ {
			if !aMod.ModPow(exponent, n).Equals(bignum.ONE) {
				order = order.Mul(p.Pow(e - f + 1))
				break
			}
			exponent = exponent.Div(p)
		}
	}
	return order, nil
}
