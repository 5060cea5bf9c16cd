package dlog

import (
	"github.com/bfix/dlog/bignum"
	"github.com/bfix/dlog/derr"
	"github.com/bfix/dlog/internal/tracelog"
	"github.com/bfix/dlog/norder"
)

// Retries is the number of independent Floyd-cycle attempts PollardRho
// makes before giving up.
const Retries = 10

// pollardStep advances the partition-function walk: state (x,alpha,beta)
// satisfies x = b^alpha * a^beta (mod n). Which branch runs depends on
// x mod 3.
func pollardStep(n, a, b, order, x, alpha, beta *bignum.Int) (*bignum.Int, *bignum.Int, *bignum.Int) {
	switch x.Mod(bignum.THREE).Int64() {
	case 0:
		return a.Mul(x).Mod(n), alpha, beta.Add(bignum.ONE).Mod(order)
	case 1:
		return x.Mul(x).Mod(n), alpha.Mul(bignum.TWO).Mod(order), beta.Mul(bignum.TWO).Mod(order)
	default:
		return b.Mul(x).Mod(n), alpha.Add(bignum.ONE).Mod(order), beta
	}
}

// PollardRho computes the discrete logarithm of a in base b modulo n
// using Pollard's rho: a randomized O(sqrt(order)) algorithm needing
// only constant memory. If order is nil it is computed via norder.Order.
// Randomness is drawn from the OS entropy pool; use PollardRhoWithSource
// for reproducible runs.
func PollardRho(n, a, b, order *bignum.Int) (*bignum.Int, error) {
	return PollardRhoWithSource(n, a, b, order, bignum.OS)
}

// PollardRhoWithSource is PollardRho with an explicit randomness source,
// so tests can seed it for reproducibility.
func PollardRhoWithSource(n, a, b, order *bignum.Int, src bignum.Source) (*bignum.Int, error) {
	a = a.Mod(n)
	b = b.Mod(n)
	if order == nil {
		o, err := norder.Order(b, n)
		if err != nil {
			return nil, err
		}
		order = o
	}

	orderMinus1 := order.Sub(bignum.ONE)

	for attempt := 0; attempt < Retries; attempt++ {
		alpha := bignum.RangeBelow(src, bignum.ONE, orderMinus1)
		beta := bignum.RangeBelow(src, bignum.ONE, orderMinus1)
		seed := b.ModPow(alpha, n).Mul(a.ModPow(beta, n)).Mod(n)

		xt, at, bt := seed, alpha, beta
		xh, ah, bh := seed, alpha, beta

		for i := bignum.ZERO; i.Cmp(order) < 0; i = i.Add(bignum.ONE) {
			xt, at, bt = pollardStep(n, a, b, order, xt, at, bt)
			xh, ah, bh = pollardStep(n, a, b, order, xh, ah, bh)
			xh, ah, bh = pollardStep(n, a, b, order, xh, ah, bh)

			if !xt.Equals(xh) {
				continue
			}
			diff := bt.Sub(bh).Mod(order)
			inv, ok := diff.ModInverse(order)
			if ok {
				e := inv.Mul(ah.Sub(at)).Mod(order)
				if b.ModPow(e, n).Equals(a) {
					return e, nil
				}
			}
			break
		}
		tracelog.Printf(tracelog.DBG, "pollard_rho: attempt %d/%d found no usable collision", attempt+1, Retries)
	}

	return nil, derr.LogDoesNotExist("pollard_rho exhausted %d retries for n=%v, a=%v, b=%v", Retries, n, a, b)
}
