// Package crt implements the Chinese Remainder Theorem combination the
// rest of the module uses to stitch prime-power subgroup residues (from
// Pohlig-Hellman) back into a single residue.
package crt

import "github.com/bfix/dlog/bignum"

// Combine returns the unique x in [0, prod(m)) with x = r[i] (mod m[i])
// for every i, or (nil,false) when len(r) != len(m), any m[i] is zero, or
// a required modular inverse does not exist (moduli not pairwise
// coprime, or otherwise inconsistent residues).
func Combine(r, m []*bignum.Int) (*bignum.Int, bool) {
	if len(r) != len(m) {
		return nil, false
	}
	prod := bignum.ONE
	for _, mi := range m {
		if mi.IsZero() {
			return nil, false
		}
		prod = prod.Mul(mi)
	}

	sum := bignum.ZERO
	for i := range r {
		pi := prod.Div(m[i])
		inv, ok := pi.ModInverse(m[i])
		if !ok {
			return nil, false
		}
		sum = sum.Add(r[i].Mul(pi).Mul(inv))
	}
	return sum.Mod(prod), true
}
