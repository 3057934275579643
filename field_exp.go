package secp256k1

import "secp256k1.mleku.dev/internal/debug"

// The modular inverse and square root are fixed-exponent powers: a^(p-2) by
// Fermat's little theorem, and a^((p+1)/4) since p = 3 mod 4. Both exponents
// decompose into an all-ones prefix walked ten bits at a time with a small
// set of precomputed windows, so each chain below is a window table driven
// by a square-ten-multiply loop.

// Inv sets r to the modular inverse of a, computed as a^(p-2). The result of
// inverting zero is undefined; correct group code never does it. Input
// magnitude at most 8, output magnitude 1. Safe when r aliases a.
func (r *FieldElement) Inv(a *FieldElement) {
	if debug.Debug {
		az := *a
		debug.Assert(!az.IsZero(), "inverse of zero")
	}

	// Windows 45, 63, 1019 and 1023 realize the exponent
	// p-2 = 0b1{223} 0 1{22} 0000101101
	var a2, a3, a4, a5, a10, a11, a21, a42, a45, a63 FieldElement
	var a126, a252, a504, a1008, a1019, a1023 FieldElement
	a2.Sqr(a)
	a3.Mul(&a2, a)
	a4.Sqr(&a2)
	a5.Mul(&a4, a)
	a10.Sqr(&a5)
	a11.Mul(&a10, a)
	a21.Mul(&a11, &a10)
	a42.Sqr(&a21)
	a45.Mul(&a42, &a3)
	a63.Mul(&a42, &a21)
	a126.Sqr(&a63)
	a252.Sqr(&a126)
	a504.Sqr(&a252)
	a1008.Sqr(&a504)
	a1019.Mul(&a1008, &a11)
	a1023.Mul(&a1019, &a4)

	windows := make([]*FieldElement, 0, 25)
	for i := 0; i < 21; i++ {
		windows = append(windows, &a1023)
	}
	windows = append(windows, &a1019, &a1023, &a1023, &a45)

	x := a63
	for _, w := range windows {
		for j := 0; j < 10; j++ {
			x.Sqr(&x)
		}
		x.Mul(&x, w)
	}
	*r = x
}

// BatchInv computes the inverses of a slice of field elements with a single
// field inversion using Montgomery's trick. Inputs must be nonzero with
// magnitude at most 8; out and a must have the same length and may be the
// same slice.
func BatchInv(out, a []FieldElement) {
	n := len(a)
	if n == 0 {
		return
	}

	// s[i] = a[0] * a[1] * ... * a[i-1]
	s := make([]FieldElement, n)
	s[0] = FieldElementOne
	for i := 1; i < n; i++ {
		s[i].Mul(&s[i-1], &a[i-1])
	}

	// u = (a[0] * ... * a[n-1])^-1
	var u FieldElement
	u.Mul(&s[n-1], &a[n-1])
	u.Inv(&u)

	// out[i] = (a[0] * ... * a[i-1]) * (a[0] * ... * a[i])^-1; walking
	// backwards makes the update in-place safe
	for i := n - 1; i >= 0; i-- {
		var t FieldElement
		t.Mul(&u, &a[i])
		out[i].Mul(&u, &s[i])
		u = t
	}
}

// Sqrt sets r to a modular square root candidate of a, computed as
// a^((p+1)/4). If a is a quadratic residue the candidate squares to a and
// true is returned; otherwise the candidate squares to -a and false is
// returned, with r still set. Input magnitude at most 8, output magnitude 1.
// Safe when r aliases a.
func (r *FieldElement) Sqrt(a *FieldElement) bool {
	// Windows 15, 780, 1022 and 1023 realize the exponent
	// (p+1)/4 = 0b1{223} 0 1{22} 00001100
	var a2, a3, a6, a12, a15, a30, a60, a120, a240, a255 FieldElement
	var a510, a750, a780, a1020, a1022, a1023 FieldElement
	a2.Sqr(a)
	a3.Mul(&a2, a)
	a6.Sqr(&a3)
	a12.Sqr(&a6)
	a15.Mul(&a12, &a3)
	a30.Sqr(&a15)
	a60.Sqr(&a30)
	a120.Sqr(&a60)
	a240.Sqr(&a120)
	a255.Mul(&a240, &a15)
	a510.Sqr(&a255)
	a750.Mul(&a510, &a240)
	a780.Mul(&a750, &a30)
	a1020.Sqr(&a510)
	a1022.Mul(&a1020, &a2)
	a1023.Mul(&a1022, a)

	windows := make([]*FieldElement, 0, 25)
	for i := 0; i < 21; i++ {
		windows = append(windows, &a1023)
	}
	windows = append(windows, &a1022, &a1023, &a1023, &a780)

	x := a15
	for _, w := range windows {
		for j := 0; j < 10; j++ {
			x.Sqr(&x)
		}
		x.Mul(&x, w)
	}

	// Report whether the candidate actually squares back to a
	var check, want FieldElement
	check.Sqr(&x)
	want = *a
	*r = x
	return check.Equal(&want)
}
