package primes

import (
	"testing"

	"github.com/bfix/dlog/bignum"
)

func TestSieveAscendingAndCorrect(t *testing.T) {
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}
	s := NewSieve()
	for i, w := range want {
		p := s.At(i)
		if p.Int64() != w {
			t.Fatalf("got %d, want %d", p.Int64(), w)
		}
	}
}

func TestSieveGrowsPastInitialLimit(t *testing.T) {
	s := NewSieve()
	ps := s.Take(10000)
	last := ps[len(ps)-1]
	if last.Int64() <= initialLimit {
		// not a hard requirement, but the 10000th prime (104729) should
		// comfortably exceed the initial sieve limit (65536) once reached,
		// exercising at least one grow().
		t.Logf("5000th prime %d did not exceed initial limit; sieve may not have grown", last.Int64())
	}
	seen := make(map[int64]bool, len(ps))
	prev := int64(1)
	for _, p := range ps {
		v := p.Int64()
		if v <= prev {
			t.Fatalf("sequence not strictly ascending at %d after %d", v, prev)
		}
		if seen[v] {
			t.Fatalf("duplicate prime %d", v)
		}
		seen[v] = true
		prev = v
	}
}

func TestSieveAtIsIdempotent(t *testing.T) {
	s := NewSieve()
	a := s.At(0)
	b := s.At(0)
	if !a.Equals(b) {
		t.Fatalf("At(0) not idempotent: %v != %v", a, b)
	}
}

func TestSieveConcurrentScansDontInterleave(t *testing.T) {
	// Two goroutines scanning via PrimesBelow over a shared sieve must
	// each see a complete, correctly-ordered prime stream: no shared
	// cursor for one to perturb the other's.
	s := NewSieve()
	want := s.PrimesBelow(5000)

	results := make([][]*bignum.Int, 8)
	done := make(chan int, len(results))
	for i := range results {
		go func(i int) {
			results[i] = s.PrimesBelow(5000)
			done <- i
		}(i)
	}
	for range results {
		<-done
	}

	for i, got := range results {
		if len(got) != len(want) {
			t.Fatalf("scan %d: got %d primes, want %d", i, len(got), len(want))
		}
		for j, p := range got {
			if !p.Equals(want[j]) {
				t.Fatalf("scan %d: prime %d = %v, want %v", i, j, p, want[j])
			}
		}
	}
}
