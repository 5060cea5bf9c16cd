package bignum

import (
	"math"
	"testing"
)

func TestIntBytesRoundTrip(t *testing.T) {
	c := TWO.Pow(256)
	for i := 0; i < 200; i++ {
		a := NewIntRnd(c)
		b := NewIntFromBytes(a.Bytes())
		if !a.Equals(b) {
			t.Fatalf("Bytes()/NewIntFromBytes() round-trip failed for %v", a)
		}
	}
}

func TestModCanonical(t *testing.T) {
	n := NewInt(97)
	a := NewInt(-5)
	m := a.Mod(n)
	if m.Sign() < 0 || m.Cmp(n) >= 0 {
		t.Fatalf("Mod() not canonical: got %v", m)
	}
	if !m.Equals(NewInt(92)) {
		t.Fatalf("Mod() wrong value: got %v, want 92", m)
	}
}

func TestModInverse(t *testing.T) {
	n := NewInt(11)
	a := NewInt(4)
	inv, ok := a.ModInverse(n)
	if !ok {
		t.Fatal("expected inverse to exist")
	}
	if !a.Mul(inv).Mod(n).Equals(ONE) {
		t.Fatalf("inverse %v does not satisfy a*inv = 1 mod n", inv)
	}

	n2 := NewInt(9)
	b := NewInt(6)
	if _, ok := b.ModInverse(n2); ok {
		t.Fatal("expected no inverse for gcd != 1")
	}
}

func TestSqrt(t *testing.T) {
	for i := int64(0); i < 10000; i++ {
		n := NewInt(i)
		r := n.Sqrt()
		if r.Mul(r).Cmp(n) > 0 {
			t.Fatalf("Sqrt(%d) = %v too large", i, r)
		}
		next := r.Add(ONE)
		if next.Mul(next).Cmp(n) <= 0 {
			t.Fatalf("Sqrt(%d) = %v not floor", i, r)
		}
	}
}

func TestNextProbablePrime(t *testing.T) {
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23}
	p := NewInt(0)
	for _, w := range want {
		p = p.NextProbablePrime(40)
		if p.Int64() != w {
			t.Fatalf("NextProbablePrime sequence wrong: got %d, want %d", p.Int64(), w)
		}
	}
}

func TestKeyUniqueness(t *testing.T) {
	a := NewInt(12345)
	b := NewInt(12345)
	c := NewInt(12346)
	if a.Key() != b.Key() {
		t.Fatal("equal values must share a key")
	}
	if a.Key() == c.Key() {
		t.Fatal("distinct values must not share a key")
	}
}

func TestFloat64Saturates(t *testing.T) {
	huge := TWO.Pow(4096)
	f := huge.Float64()
	if !math.IsInf(f, 1) {
		t.Fatalf("expected +Inf for overflowing value, got %v", f)
	}
	small := NewInt(42)
	if small.Float64() != 42.0 {
		t.Fatalf("expected 42.0, got %v", small.Float64())
	}
}
