package dlog

import (
	"golang.org/x/sync/errgroup"

	"github.com/bfix/dlog/bignum"
	"github.com/bfix/dlog/crt"
	"github.com/bfix/dlog/derr"
	"github.com/bfix/dlog/factor"
	"github.com/bfix/dlog/norder"
)

// PohligHellman computes the discrete logarithm of a in base b modulo n
// by reducing modulo each prime-power factor of order and recombining
// via the Chinese Remainder Theorem. Each prime-power subgroup is
// independent of the others, so they are solved concurrently: this is
// the one place in the module where a single call fans out internally
// rather than relying on the caller to run independent calls in
// parallel.
//
// Solving a subgroup recurses into the top-level dispatcher
// (DiscreteLogWithOrder) with an explicit prime order; this is the
// module's only internal back-edge, and its depth is bounded by the
// number of distinct prime factors of order.
func PohligHellman(n, a, b, order *bignum.Int) (*bignum.Int, error) {
	a = a.Mod(n)
	b = b.Mod(n)
	if order == nil {
		o, err := norder.Order(b, n)
		if err != nil {
			return nil, err
		}
		order = o
	}

	orderFactors := factor.FastFactor(order).Entries()
	residues := make([]*bignum.Int, len(orderFactors))
	moduli := make([]*bignum.Int, len(orderFactors))

	var g errgroup.Group
	for idx, of := range orderFactors {
		idx, of := idx, of
		moduli[idx] = of.Prime.Pow(of.Exp)
		g.Go(func() error {
			c := bignum.ZERO
			for j := 0; j < of.Exp; j++ {
				gj := b.ModPow(c, n)
				gjInv, ok := gj.ModInverse(n)
				if !ok {
					return derr.LogDoesNotExist("intermediate value has no inverse mod n=%v", n)
				}
				exp := order.Div(of.Prime.Pow(j + 1))
				aj := a.Mul(gjInv).Mod(n).ModPow(exp, n)
				bj := b.ModPow(order.Div(of.Prime), n)

				cj, err := DiscreteLogWithOrder(n, aj, bj, of.Prime)
				if err != nil {
					return err
				}
				c = c.Add(cj.Mul(of.Prime.Pow(j)))
			}
			residues[idx] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	x, ok := crt.Combine(residues, moduli)
	if !ok {
		return nil, derr.LogDoesNotExist("crt could not combine subgroup residues for order=%v", order)
	}
	return x, nil
}
