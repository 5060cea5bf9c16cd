package dlog

import (
	"github.com/bfix/dlog/bignum"
	"github.com/bfix/dlog/derr"
	"github.com/bfix/dlog/norder"
)

// MaxOrder is the order ceiling at or above which ShanksSteps refuses to run:
// its O(sqrt(order)) table would be too large to be practical.
var MaxOrder = bignum.NewInt(1_000_000_000_000)

// ShanksSteps computes the discrete logarithm of a in base b modulo n
// using baby-step/giant-step: a time-memory trade-off of exhaustive
// search using O(sqrt(order)) memory and time.
func ShanksSteps(n, a, b *bignum.Int, order *bignum.Int) (*bignum.Int, error) {
	a = a.Mod(n)
	b = b.Mod(n)
	if order == nil {
		o, err := norder.Order(b, n)
		if err != nil {
			return nil, err
		}
		order = o
	}

	if order.Cmp(MaxOrder) >= 0 {
		return nil, derr.LogDoesNotExist("order=%v exceeds shanks_steps cap %v", order, MaxOrder)
	}

	m := order.Sqrt().Add(bignum.ONE)

	// Baby steps: table of b^i mod n -> i for i in [0,m).
	table := make(map[string]*bignum.Int, int(m.Int64())+1)
	x := bignum.ONE
	for i := bignum.ZERO; i.Cmp(m) < 0; i = i.Add(bignum.ONE) {
		table[x.Key()] = i
		x = x.Mul(b).Mod(n)
	}

	bInv, ok := b.ModInverse(n)
	if !ok {
		return nil, derr.LogDoesNotExist("b=%v has no inverse mod n=%v", b, n)
	}
	z := bInv.ModPow(m, n)

	// Giant steps: y_j = a * z^j mod n for j in [0,m).
	y := a
	for j := bignum.ZERO; j.Cmp(m) < 0; j = j.Add(bignum.ONE) {
		if i, ok := table[y.Key()]; ok {
			return j.Mul(m).Add(i), nil
		}
		y = y.Mul(z).Mod(n)
	}

	return nil, derr.LogDoesNotExist("shanks_steps found no match for n=%v, a=%v, b=%v, order=%v", n, a, b, order)
}
