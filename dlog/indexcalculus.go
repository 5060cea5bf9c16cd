package dlog

import (
	"math"

	"github.com/bfix/dlog/bignum"
	"github.com/bfix/dlog/derr"
	"github.com/bfix/dlog/primes"
)

// isSmooth attempts to factor n completely over factorBase, returning the
// per-prime exponent vector if n is smooth over the base, or (nil,false)
// if a residue larger than 1 remains.
func isSmooth(n *bignum.Int, factorBase []*bignum.Int) ([]int, bool) {
	rem := n
	factors := make([]int, len(factorBase))
	for i, p := range factorBase {
		for rem.Mod(p).IsZero() {
			factors[i]++
			rem = rem.Div(p)
		}
	}
	if !rem.Equals(bignum.ONE) {
		return nil, false
	}
	return factors, true
}

// IndexCalculus computes the discrete logarithm of a in base b modulo n
// using index calculus: a factor base of small primes is built from the
// heuristic smoothness bound, relations among random powers of b are
// collected and reduced against each other via Gaussian elimination
// modulo order, and a's own relation is reduced against the solved base
// until only the answer remains.
//
// order must be given and should be prime; the algorithm is unsuitable
// for small orders and may fail to converge there. It is most effective
// when exp(2*sqrt(log(n)*log(log(n)))) < sqrt(order). Randomness is drawn
// from the OS entropy pool; use IndexCalculusWithSource for reproducible
// runs.
func IndexCalculus(n, a, b, order *bignum.Int) (*bignum.Int, error) {
	return IndexCalculusWithSource(n, a, b, order, bignum.OS)
}

// IndexCalculusWithSource is IndexCalculus with an explicit randomness
// source for the relation search, so tests can seed it for
// reproducibility.
func IndexCalculusWithSource(n, a, b, order *bignum.Int, src bignum.Source) (*bignum.Int, error) {
	if order == nil {
		return nil, derr.LogDoesNotExist("index_calculus requires an explicit order")
	}
	a = a.Mod(n)
	b = b.Mod(n)

	logN := math.Log(n.Float64())
	logLogN := math.Log(logN)
	bound := math.Exp(0.5 * math.Sqrt(logN*logLogN) * (1 + 1/logLogN))
	bBound := int64(bound)

	factorBase := primes.Shared().PrimesBelow(bBound)
	lf := len(factorBase)
	if lf == 0 {
		return nil, derr.LogDoesNotExist("index_calculus: smoothness bound %d yields an empty factor base for n=%v", bBound, n)
	}
	maxTries := 5 * bBound * bBound

	// Find a relation for a: the first x with a*b^x smooth over the base.
	relationA := findRelation(a, b, n, order, factorBase)
	if relationA == nil {
		return nil, derr.LogDoesNotExist("index_calculus found no smooth relation for a over a base of %d primes", lf)
	}
	if relationA.done {
		return relationA.x, nil
	}

	relationVecs := make([][]*bignum.Int, lf) // solved rows, indexed by pivot column
	rel := relationA.vec

	k, kk := 1, int64(0)
	for k < 3*lf && kk < maxTries {
		x := bignum.RangeBelow(src, bignum.ONE, order.Sub(bignum.ONE))
		bx := b.ModPow(x, n)
		factors, ok := isSmooth(bx, factorBase)
		if !ok {
			kk++
			continue
		}
		candidate := make([]*bignum.Int, lf+1)
		for i, f := range factors {
			candidate[i] = bignum.NewInt(int64(f)).Mod(order)
		}
		candidate[lf] = x
		k++
		kk = 0

		index := lf
		for i := 0; i < lf; i++ {
			ri := candidate[i].Mod(order)
			if ri.Sign() > 0 && relationVecs[i] != nil {
				existing := relationVecs[i]
				for j := 0; j <= lf; j++ {
					candidate[j] = candidate[j].Sub(ri.Mul(existing[j])).Mod(order)
				}
			} else {
				candidate[i] = ri
			}
			if candidate[i].Sign() > 0 && index == lf {
				index = i
			}
		}

		if index == lf || relationVecs[index] != nil {
			continue
		}
		rinv, ok := candidate[index].ModInverse(order)
		if !ok {
			continue
		}
		for j := index; j <= lf; j++ {
			candidate[j] = rinv.Mul(candidate[j]).Mod(order)
		}
		relationVecs[index] = candidate

		for i := 0; i < lf; i++ {
			if rel[i].Sign() > 0 && relationVecs[i] != nil {
				rbi := rel[i]
				existing := relationVecs[i]
				for j := 0; j <= lf; j++ {
					rel[j] = rel[j].Sub(rbi.Mul(existing[j])).Mod(order)
				}
			}
			if rel[i].Sign() > 0 {
				break
			}
		}

		allZero := true
		for i := 0; i < lf; i++ {
			if rel[i].Sign() != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			x := order.Sub(rel[lf]).Mod(order)
			if b.ModPow(x, n).Equals(a) {
				return x, nil
			}
			return nil, derr.LogDoesNotExist("index_calculus produced an unverifiable candidate for n=%v, a=%v, b=%v", n, a, b)
		}
	}

	return nil, derr.LogDoesNotExist("index_calculus exhausted its relation search (k=%d, misses=%d) for n=%v", k, kk, n)
}

// relationResult is either an immediate answer (abx hit 1 during the scan
// for a's own relation) or a smoothness relation vector of length lf+1
// (per-prime exponents, then the exponent x of b used to reach it).
type relationResult struct {
	done bool
	x    *bignum.Int
	vec  []*bignum.Int
}

func findRelation(a, b, n, order *bignum.Int, factorBase []*bignum.Int) *relationResult {
	lf := len(factorBase)
	abx := a
	for x := bignum.ZERO; x.Cmp(order) < 0; x = x.Add(bignum.ONE) {
		if abx.Equals(bignum.ONE) {
			return &relationResult{done: true, x: order.Sub(x).Mod(order)}
		}
		if factors, ok := isSmooth(abx, factorBase); ok {
			vec := make([]*bignum.Int, lf+1)
			for i, f := range factors {
				vec[i] = bignum.NewInt(int64(f)).Mod(order)
			}
			vec[lf] = x
			return &relationResult{vec: vec}
		}
		abx = abx.Mul(b).Mod(n)
	}
	return nil
}
