package dlog

import (
	"testing"

	"github.com/bfix/dlog/bignum"
)

func TestIndexCalculusSmallCase(t *testing.T) {
	n := bignum.NewInt(587)
	a := bignum.NewInt(2).Pow(9) // 512
	b := bignum.NewInt(2)
	order := bignum.NewInt(293)
	got, err := IndexCalculusWithSource(n, a, b, order, seededSrc(t, "ic-587"))
	if err != nil {
		t.Fatalf("IndexCalculusWithSource(587,512,2,293): %v", err)
	}
	if got.Int64() != 9 {
		t.Fatalf("IndexCalculusWithSource(587,512,2,293) = %v, want 9", got)
	}
}

func TestIndexCalculusLargeCase(t *testing.T) {
	if testing.Short() {
		t.Skip("relation search over a large modulus is too slow for -short")
	}
	n := bignum.NewIntFromString("24570203447")
	a := bignum.NewIntFromString("23859756228")
	b := bignum.NewInt(2)
	order := bignum.NewIntFromString("12285101723")
	want := bignum.NewIntFromString("4519867240")

	got, err := IndexCalculusWithSource(n, a, b, order, seededSrc(t, "ic-24570203447"))
	if err != nil {
		t.Fatalf("IndexCalculusWithSource(24570203447,...): %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("IndexCalculusWithSource(24570203447,...) = %v, want %v", got, want)
	}
}

func TestIndexCalculusRequiresOrder(t *testing.T) {
	_, err := IndexCalculus(bignum.NewInt(587), bignum.NewInt(512), bignum.NewInt(2), nil)
	if err == nil {
		t.Fatal("expected IndexCalculus to fail without an explicit order")
	}
}
