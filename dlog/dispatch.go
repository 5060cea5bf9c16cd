package dlog

import (
	"math"

	"github.com/bfix/dlog/bignum"
	"github.com/bfix/dlog/derr"
	"github.com/bfix/dlog/factor"
	"github.com/bfix/dlog/norder"
)

var thousand = bignum.NewInt(1000)

// DiscreteLog computes the discrete logarithm of a in base b modulo n:
// the smallest non-negative x with b^x = a (mod n). The order of b mod n
// is computed internally.
func DiscreteLog(n, a, b *bignum.Int) (*bignum.Int, error) {
	if n.Cmp(bignum.ONE) < 0 {
		return nil, derr.LogDoesNotExist("n=%v is not a valid modulus", n)
	}
	if n.Equals(bignum.ONE) {
		return bignum.ZERO, nil
	}
	order, err := norder.Order(b.Mod(n), n)
	if err != nil {
		return nil, err
	}
	return DiscreteLogWithOrder(n, a, b, order)
}

// DiscreteLogWithFactors is DiscreteLog, but using a pre-computed
// factorization of n to speed up the order computation.
func DiscreteLogWithFactors(n, a, b *bignum.Int, nFactors *factor.Map) (*bignum.Int, error) {
	if n.Cmp(bignum.ONE) < 0 {
		return nil, derr.LogDoesNotExist("n=%v is not a valid modulus", n)
	}
	if n.Equals(bignum.ONE) {
		return bignum.ZERO, nil
	}
	order, err := norder.OrderWithFactors(b.Mod(n), n, nFactors)
	if err != nil {
		return nil, err
	}
	return DiscreteLogWithOrder(n, a, b, order)
}

// DiscreteLogWithOrder is the front door: given the order of b mod n, it
// routes to trial multiplication, baby-step/giant-step, Pollard's rho,
// Pohlig-Hellman or index calculus.
//
// Decision tree:
//  1. order < 1000                 -> TrialMul
//  2. order probably prime:
//     L = 4*sqrt(ln(n)*ln(ln(n))); L < ln(order)-10 -> IndexCalculus
//     order < shanks MaxOrder                       -> ShanksSteps
//     else                                           -> PollardRho
//  3. otherwise (composite order)  -> PohligHellman
func DiscreteLogWithOrder(n, a, b, order *bignum.Int) (*bignum.Int, error) {
	if n.Cmp(bignum.ONE) < 0 {
		return nil, derr.LogDoesNotExist("n=%v is not a valid modulus", n)
	}
	if n.Equals(bignum.ONE) {
		return bignum.ZERO, nil
	}

	if order.Cmp(thousand) < 0 {
		return TrialMul(n, a, b, order)
	}

	if order.ProbablyPrime(100) {
		logN := math.Log(n.Float64())
		logLogN := math.Log(logN)
		l := 4 * math.Sqrt(logN*logLogN)
		logOrder := math.Log(order.Float64())
		if l < logOrder-10 {
			return IndexCalculus(n, a, b, order)
		}
		if order.Cmp(MaxOrder) < 0 {
			return ShanksSteps(n, a, b, order)
		}
		return PollardRho(n, a, b, order)
	}

	return PohligHellman(n, a, b, order)
}

// NOrder is the multiplicative order of a mod n: the smallest k >= 1
// with a^k = 1 (mod n). It fails with NotRelativelyPrime when
// gcd(a mod n, n) != 1.
func NOrder(a, n *bignum.Int) (*bignum.Int, error) {
	return norder.Order(a, n)
}

// NOrderWithFactors is NOrder, given a pre-computed factorization of n.
func NOrderWithFactors(a, n *bignum.Int, nFactors *factor.Map) (*bignum.Int, error) {
	return norder.OrderWithFactors(a, n, nFactors)
}
