// Package factor provides FastFactor, a bounded trial-division
// factorizer, and Map, the prime-to-exponent factorization it (and the
// rest of the module) trades in.
package factor

import (
	"sort"

	"github.com/bfix/dlog/bignum"
	"github.com/bfix/dlog/primes"
)

// K is the number of small primes FastFactor trial-divides by before
// giving up and taking whatever remains as a single factor.
const K = 1_000_000

type entry struct {
	prime *bignum.Int
	exp   int
}

// Map is a prime -> exponent factorization, representing the product of
// p^e over its entries. The zero value (via NewMap) represents 1.
type Map struct {
	entries map[string]*entry
}

// NewMap returns an empty Map, representing 1.
func NewMap() *Map {
	return &Map{entries: make(map[string]*entry)}
}

// Add accumulates e into the exponent recorded for prime p.
func (m *Map) Add(p *bignum.Int, e int) {
	k := p.Key()
	if ent, ok := m.entries[k]; ok {
		ent.exp += e
		return
	}
	m.entries[k] = &entry{prime: p, exp: e}
}

// Get returns the exponent recorded for p, or (0,false) if p is absent.
func (m *Map) Get(p *bignum.Int) (int, bool) {
	ent, ok := m.entries[p.Key()]
	if !ok {
		return 0, false
	}
	return ent.exp, true
}

// Entry is a single (prime, exponent) pair.
type Entry struct {
	Prime *bignum.Int
	Exp   int
}

// Entries returns the map's (prime, exponent) pairs sorted by ascending
// prime, so callers get deterministic iteration order despite the
// underlying hash map.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, Entry{Prime: e.prime, Exp: e.exp})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Prime.Cmp(out[j].Prime) < 0
	})
	return out
}

// Len returns the number of distinct primes recorded.
func (m *Map) Len() int {
	return len(m.entries)
}

// Product returns the product of p^e over all entries (1 for an empty
// Map), the invariant fast_factor must preserve.
func (m *Map) Product() *bignum.Int {
	prod := bignum.ONE
	for _, e := range m.entries {
		prod = prod.Mul(e.prime.Pow(e.exp))
	}
	return prod
}

// FastFactor decomposes m (m >= 1) by trial division against the first K
// primes from the shared small-prime source. Any residue greater than 1
// left after exhausting those primes is inserted as a single factor with
// exponent 1, even when that residue is itself composite: callers only
// need the multiset of prime-power components they can act on, and the
// remaining value is taken as-is. This is not a general factorer; it is
// sufficient for the magnitudes n_order and Pohlig-Hellman target.
func FastFactor(m *bignum.Int) *Map {
	result := NewMap()
	if m.Cmp(bignum.ONE) <= 0 {
		return result
	}

	rem := m
	sv := primes.Shared()
	for i := 0; i < K && rem.Cmp(bignum.ONE) > 0; i++ {
		p := sv.At(i)
		// Once no remaining prime candidate can divide rem (p*p > rem),
		// the trial division is complete: rem is necessarily prime.
		// Stopping here is equivalent to running out the full K primes,
		// just without the wasted divisions.
		if p.Mul(p).Cmp(rem) > 0 {
			break
		}
		exp := 0
		for rem.Mod(p).IsZero() {
			rem = rem.Div(p)
			exp++
		}
		if exp > 0 {
			result.Add(p, exp)
		}
	}
	if rem.Cmp(bignum.ONE) > 0 {
		result.Add(rem, 1)
	}
	return result
}
