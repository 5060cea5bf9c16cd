package dlog

import (
	"testing"

	"github.com/bfix/dlog/bignum"
)

func TestShanksStepsKnownCases(t *testing.T) {
	cases := []struct {
		n, a, b, want int64
	}{
		{587, 512, 2, 9},    // S1: 2^9 = 512 mod 587
		{5779, 3528, 6215, 687}, // S4
	}
	for _, c := range cases {
		got, err := ShanksSteps(bignum.NewInt(c.n), bignum.NewInt(c.a), bignum.NewInt(c.b), nil)
		if err != nil {
			t.Fatalf("ShanksSteps(%d,%d,%d) error: %v", c.n, c.a, c.b, err)
		}
		if got.Int64() != c.want {
			t.Fatalf("ShanksSteps(%d,%d,%d) = %v, want %d", c.n, c.a, c.b, got, c.want)
		}
	}
}

func TestShanksStepsRejectsOrderAtCap(t *testing.T) {
	_, err := ShanksSteps(bignum.NewInt(11), bignum.NewInt(2), bignum.NewInt(2), MaxOrder)
	if err == nil {
		t.Fatal("expected ShanksSteps to refuse an order at the MaxOrder cap")
	}
}
