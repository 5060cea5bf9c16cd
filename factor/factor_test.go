package factor

import (
	"testing"

	"github.com/bfix/dlog/bignum"
)

func TestFastFactorProductInvariant(t *testing.T) {
	cases := []int64{1, 2, 3, 4, 97, 100, 360, 1024, 999983, 600851475143 % (1 << 40)}
	for _, c := range cases {
		if c <= 0 {
			continue
		}
		n := bignum.NewInt(c)
		fm := FastFactor(n)
		if !fm.Product().Equals(n) {
			t.Fatalf("FastFactor(%d) product = %v, want %d", c, fm.Product(), c)
		}
	}
}

func TestFastFactorKnownFactorization(t *testing.T) {
	n := bignum.NewInt(360) // 2^3 * 3^2 * 5
	fm := FastFactor(n)
	want := map[int64]int{2: 3, 3: 2, 5: 1}
	if fm.Len() != len(want) {
		t.Fatalf("got %d distinct primes, want %d", fm.Len(), len(want))
	}
	for _, e := range fm.Entries() {
		wantExp, ok := want[e.Prime.Int64()]
		if !ok {
			t.Fatalf("unexpected prime %v in factorization", e.Prime)
		}
		if e.Exp != wantExp {
			t.Fatalf("prime %v: exponent %d, want %d", e.Prime, e.Exp, wantExp)
		}
	}
}

func TestFastFactorOfOne(t *testing.T) {
	fm := FastFactor(bignum.ONE)
	if fm.Len() != 0 {
		t.Fatalf("factorization of 1 should be empty, got %d entries", fm.Len())
	}
	if !fm.Product().Equals(bignum.ONE) {
		t.Fatalf("product of empty map should be 1, got %v", fm.Product())
	}
}

func TestFastFactorPrime(t *testing.T) {
	p := bignum.NewInt(999983) // prime
	fm := FastFactor(p)
	if fm.Len() != 1 {
		t.Fatalf("expected a single prime factor, got %d", fm.Len())
	}
	e := fm.Entries()[0]
	if !e.Prime.Equals(p) || e.Exp != 1 {
		t.Fatalf("expected {%v:1}, got {%v:%d}", p, e.Prime, e.Exp)
	}
}
