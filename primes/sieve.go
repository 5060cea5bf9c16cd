// Package primes provides the small-prime source that fast_factor and
// the index-calculus factor base consume: a lazy, ascending sequence of
// primes starting at 2, generated by a doubling Sieve of Eratosthenes.
package primes

import (
	"sync"

	"github.com/bfix/dlog/bignum"
)

const initialLimit = 1 << 16

// Sieve is a growable Sieve of Eratosthenes. It exposes primes by index
// rather than by an internal cursor: every lookup is independent of every
// other, so concurrent scans never interleave. Once the sieved table is
// exhausted for a requested index, the limit doubles (repeatedly, if
// needed) and the table is recomputed from scratch.
type Sieve struct {
	mu     sync.Mutex
	limit  int
	table  []bool
	primes []int64
}

// NewSieve returns a Sieve ready to yield primes starting at 2.
func NewSieve() *Sieve {
	s := &Sieve{limit: initialLimit}
	s.grow()
	return s
}

// grow re-sieves up to s.limit. Caller must hold s.mu.
func (s *Sieve) grow() {
	n := s.limit
	composite := make([]bool, n+1)
	var found []int64
	for p := 2; p <= n; p++ {
		if composite[p] {
			continue
		}
		found = append(found, int64(p))
		for m := p * p; m <= n; m += p {
			composite[m] = true
		}
	}
	s.table = composite
	s.primes = found
}

// At returns the i'th prime (0-indexed, ascending), growing the sieve as
// needed. It is stateless and safe for concurrent use: two goroutines
// calling At with different (or the same) indices never observe each
// other's calls, unlike a shared scan cursor.
func (s *Sieve) At(i int) *bignum.Int {
	s.mu.Lock()
	for i >= len(s.primes) {
		s.limit *= 2
		s.grow()
	}
	p := s.primes[i]
	s.mu.Unlock()
	return bignum.NewInt(p)
}

// PrimesBelow returns every prime strictly less than bound, in ascending
// order, growing the sieve as needed. Like At, it holds no state between
// calls, so concurrent callers with different bounds never interfere.
func (s *Sieve) PrimesBelow(bound int64) []*bignum.Int {
	var out []*bignum.Int
	for i := 0; ; i++ {
		p := s.At(i)
		if p.Int64() >= bound {
			return out
		}
		out = append(out, p)
	}
}

// Take returns the first k primes in ascending order.
func (s *Sieve) Take(k int) []*bignum.Int {
	out := make([]*bignum.Int, k)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// shared is the package-level sieve most callers use: rebuilding the
// table per call would dominate the cost of factoring anything but the
// smallest inputs.
var shared = NewSieve()

// Shared returns the process-wide small-prime source.
func Shared() *Sieve {
	return shared
}
