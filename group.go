package secp256k1

// GroupElementAffine represents a point on the secp256k1 curve y^2 = x^3 + 7
// in affine coordinates (x, y). The point at infinity is a sentinel flag; the
// stored coordinates are then meaningless.
type GroupElementAffine struct {
	x, y     FieldElement
	infinity bool
}

// GroupElementJacobian represents a curve point in Jacobian projective
// coordinates (x, y, z) with affine meaning (x/z^2, y/z^3). Infinity is again
// a sentinel flag.
type GroupElementJacobian struct {
	x, y, z  FieldElement
	infinity bool
}

// Generator is the standard base point G of secp256k1 in affine coordinates.
var Generator GroupElementAffine

func init() {
	gxBytes := []byte{
		0x79, 0xBE, 0x66, 0x7E, 0xF9, 0xDC, 0xBB, 0xAC, 0x55, 0xA0, 0x62, 0x95, 0xCE, 0x87, 0x0B, 0x07,
		0x02, 0x9B, 0xFC, 0xDB, 0x2D, 0xCE, 0x28, 0xD9, 0x59, 0xF2, 0x81, 0x5B, 0x16, 0xF8, 0x17, 0x98,
	}
	gyBytes := []byte{
		0x48, 0x3A, 0xDA, 0x77, 0x26, 0xA3, 0xC4, 0x65, 0x5D, 0xA4, 0xFB, 0xFC, 0x0E, 0x11, 0x08, 0xA8,
		0xFD, 0x17, 0xB4, 0x48, 0xA6, 0x85, 0x54, 0x19, 0x9C, 0x47, 0xD0, 0x8F, 0xFB, 0x10, 0xD4, 0xB8,
	}

	var gx, gy FieldElement
	if err := gx.SetB32(gxBytes); err != nil {
		panic(err)
	}
	if err := gy.SetB32(gyBytes); err != nil {
		panic(err)
	}
	Generator.SetXY(&gx, &gy)
}

// SetXY sets an affine group element to the point with the given coordinates.
func (r *GroupElementAffine) SetXY(x, y *FieldElement) {
	r.x = *x
	r.y = *y
	r.infinity = false
}

// SetInfinity sets the affine group element to the point at infinity.
func (r *GroupElementAffine) SetInfinity() {
	r.x = FieldElementZero
	r.y = FieldElementZero
	r.infinity = true
}

// IsInfinity returns true if the group element is the point at infinity.
func (r *GroupElementAffine) IsInfinity() bool {
	return r.infinity
}

// X returns the x coordinate of the point.
func (r *GroupElementAffine) X() *FieldElement {
	return &r.x
}

// Y returns the y coordinate of the point.
func (r *GroupElementAffine) Y() *FieldElement {
	return &r.y
}

// IsValid returns true if the element is a non-infinite point on the curve,
// satisfying y^2 = x^3 + 7.
func (r *GroupElementAffine) IsValid() bool {
	if r.infinity {
		return false
	}

	var y2, x2, x3, c FieldElement
	y2.Sqr(&r.y)
	x2.Sqr(&r.x)
	x3.Mul(&x2, &r.x)
	c.SetInt(7)
	x3.Add(&c)
	return y2.Equal(&x3)
}

// SetCompressed sets the element to the point with the given x coordinate and
// y parity. The returned bool reports whether x^3 + 7 was a quadratic
// residue, i.e. whether such a point exists; on false the stored point is not
// on the curve.
func (r *GroupElementAffine) SetCompressed(x *FieldElement, odd bool) bool {
	var x2, x3, c, y FieldElement
	x2.Sqr(x)
	x3.Mul(&x2, x)
	c.SetInt(7)
	c.Add(&x3)
	ok := y.Sqrt(&c)
	if y.IsOdd() != odd {
		y.Negate(&y, 1)
	}
	r.SetXY(x, &y)
	return ok
}

// Neg sets r to the negation of a, mirroring it around the x axis. Infinity
// negates to infinity.
func (r *GroupElementAffine) Neg(a *GroupElementAffine) {
	if a.infinity {
		r.SetInfinity()
		return
	}
	r.x = a.x
	y := a.y
	y.Normalize()
	r.y.Negate(&y, 1)
	r.infinity = false
}

// Equal returns true if two affine group elements represent the same point.
func (r *GroupElementAffine) Equal(a *GroupElementAffine) bool {
	if r.infinity || a.infinity {
		return r.infinity == a.infinity
	}
	return r.x.Equal(&a.x) && r.y.Equal(&a.y)
}

// String renders the point as its affine coordinate pair in hex.
func (r *GroupElementAffine) String() string {
	if r.infinity {
		return "(inf)"
	}
	x, y := r.x, r.y
	return "(" + x.Hex() + "," + y.Hex() + ")"
}

// SetXY sets a Jacobian group element to the point with the given affine
// coordinates, z = 1.
func (r *GroupElementJacobian) SetXY(x, y *FieldElement) {
	r.x = *x
	r.y = *y
	r.z = FieldElementOne
	r.infinity = false
}

// SetAffine lifts an affine group element to Jacobian coordinates with z = 1.
func (r *GroupElementJacobian) SetAffine(a *GroupElementAffine) {
	if a.infinity {
		r.SetInfinity()
		return
	}
	r.x = a.x
	r.y = a.y
	r.z = FieldElementOne
	r.infinity = false
}

// SetInfinity sets the Jacobian group element to the point at infinity.
func (r *GroupElementJacobian) SetInfinity() {
	r.x = FieldElementZero
	r.y = FieldElementZero
	r.z = FieldElementZero
	r.infinity = true
}

// IsInfinity returns true if the group element is the point at infinity.
func (r *GroupElementJacobian) IsInfinity() bool {
	return r.infinity
}

// IsValid returns true if the element is a non-infinite point on the curve.
// In Jacobian coordinates the curve equation clears denominators to
// y^2 = x^3 + 7*z^6.
func (r *GroupElementJacobian) IsValid() bool {
	if r.infinity {
		return false
	}

	var y2, x3, z2, z6 FieldElement
	y2.Sqr(&r.y)
	x3.Sqr(&r.x)
	x3.Mul(&x3, &r.x)
	z2.Sqr(&r.z)
	z6.Sqr(&z2)
	z6.Mul(&z6, &z2)
	z6.MulInt(7)
	x3.Add(&z6)
	return y2.Equal(&x3)
}

// GetAffine converts the point to affine coordinates, writing the result to
// aff. The receiver itself is left either flagged infinite or with z = 1 and
// its coordinates reduced to the canonical affine representative. A point
// with z = 0 converts to infinity.
func (r *GroupElementJacobian) GetAffine(aff *GroupElementAffine) {
	if r.infinity {
		aff.SetInfinity()
		return
	}
	z := r.z
	if z.IsZero() {
		r.SetInfinity()
		aff.SetInfinity()
		return
	}

	// The inverse goes through a temporary so the receiver's z is not
	// clobbered while still needed
	var zi, z2, z3 FieldElement
	zi.Inv(&r.z)
	z2.Sqr(&zi)
	z3.Mul(&zi, &z2)
	r.x.Mul(&r.x, &z2)
	r.y.Mul(&r.y, &z3)
	r.z = FieldElementOne
	r.x.Normalize()
	r.y.Normalize()
	aff.SetXY(&r.x, &r.y)
}

// SetCompressed sets the point from an x coordinate and a y parity bit,
// z = 1. No check is made that x^3 + 7 is a quadratic residue: for an x with
// no curve point this silently produces an invalid point, so callers
// accepting untrusted input must follow with IsValid.
func (r *GroupElementJacobian) SetCompressed(x *FieldElement, odd bool) {
	r.x = *x
	var x2, x3, c FieldElement
	x2.Sqr(&r.x)
	x3.Mul(&r.x, &x2)
	c.SetInt(7)
	c.Add(&x3)
	r.y.Sqrt(&c)
	r.z = FieldElementOne
	r.infinity = false
	if r.y.IsOdd() != odd {
		r.y.Negate(&r.y, 1)
	}
}

// Neg sets r to the negation of a. Infinity negates to infinity.
func (r *GroupElementJacobian) Neg(a *GroupElementJacobian) {
	if a.infinity {
		r.SetInfinity()
		return
	}
	r.x = a.x
	y := a.y
	y.Normalize()
	r.y.Negate(&y, 1)
	r.z = a.z
	r.infinity = false
}

// Double sets r to twice the point a. Doubling infinity, or a point whose y
// is zero (an order-2 point, which does not exist on secp256k1 but is
// handled anyway), yields infinity. Safe when r aliases a.
func (r *GroupElementJacobian) Double(a *GroupElementJacobian) {
	if a.infinity {
		r.SetInfinity()
		return
	}
	y := a.y
	if y.IsZero() {
		r.SetInfinity()
		return
	}

	var t1, t2, t3, t4 FieldElement
	r.z.Mul(&a.y, &a.z)
	r.z.MulInt(2)       // Z' = 2*Y*Z (2)
	t1.Sqr(&a.x)
	t1.MulInt(3)        // T1 = 3*X^2 (3)
	t2.Sqr(&t1)         // T2 = 9*X^4 (1)
	t3.Sqr(&a.y)
	t3.MulInt(2)        // T3 = 2*Y^2 (2)
	t4.Sqr(&t3)
	t4.MulInt(2)        // T4 = 8*Y^4 (2)
	t3.Mul(&a.x, &t3)   // T3 = 2*X*Y^2 (1)
	r.x = t3
	r.x.MulInt(4)       // X' = 8*X*Y^2 (4)
	r.x.Negate(&r.x, 4) // X' = -8*X*Y^2 (5)
	r.x.Add(&t2)        // X' = 9*X^4 - 8*X*Y^2 (6)
	t2.Negate(&t2, 1)   // T2 = -9*X^4 (2)
	t3.MulInt(6)        // T3 = 12*X*Y^2 (6)
	t3.Add(&t2)         // T3 = 12*X*Y^2 - 9*X^4 (8)
	r.y.Mul(&t1, &t3)   // Y' = 36*X^3*Y^2 - 27*X^6 (1)
	t2.Negate(&t4, 2)   // T2 = -8*Y^4 (3)
	r.y.Add(&t2)        // Y' = 36*X^3*Y^2 - 27*X^6 - 8*Y^4 (4)
	r.infinity = false
}

// AddVar sets r to the sum of two Jacobian points. Adding equal points falls
// through to Double, adding a point to its negation yields infinity, and an
// infinite operand passes the other through. Variable time. Safe when r
// aliases a or b.
func (r *GroupElementJacobian) AddVar(a, b *GroupElementJacobian) {
	if a.infinity {
		*r = *b
		return
	}
	if b.infinity {
		*r = *a
		return
	}

	var z22, z12, u1, u2, s1, s2 FieldElement
	z22.Sqr(&b.z)
	z12.Sqr(&a.z)
	u1.Mul(&a.x, &z22)
	u2.Mul(&b.x, &z12)
	s1.Mul(&a.y, &z22)
	s1.Mul(&s1, &b.z)
	s2.Mul(&b.y, &z12)
	s2.Mul(&s2, &a.z)

	// Equal x means the points are equal or negatives of each other
	if u1.Equal(&u2) {
		if s1.Equal(&s2) {
			r.Double(a)
		} else {
			r.SetInfinity()
		}
		return
	}

	var h, i, i2, h2, h3, t FieldElement
	h.Negate(&u1, 1)
	h.Add(&u2)          // H = U2 - U1 (3)
	i.Negate(&s1, 1)
	i.Add(&s2)          // R = S2 - S1 (3)
	i2.Sqr(&i)          // R^2 (1)
	h2.Sqr(&h)          // H^2 (1)
	h3.Mul(&h, &h2)     // H^3 (1)
	r.z.Mul(&a.z, &b.z)
	r.z.Mul(&r.z, &h)   // Z3 = Z1*Z2*H (1)
	t.Mul(&u1, &h2)     // T = U1*H^2 (1)
	r.x = t
	r.x.MulInt(2)       // 2*T (2)
	r.x.Add(&h3)        // 2*T + H^3 (3)
	r.x.Negate(&r.x, 3) // (4)
	r.x.Add(&i2)        // X3 = R^2 - H^3 - 2*T (5)
	r.y.Negate(&r.x, 5) // (6)
	r.y.Add(&t)         // T - X3 (7)
	r.y.Mul(&r.y, &i)   // R*(T - X3) (1)
	h3.Mul(&h3, &s1)
	h3.Negate(&h3, 1)   // -S1*H^3 (2)
	r.y.Add(&h3)        // Y3 = R*(T - X3) - S1*H^3 (3)
	r.infinity = false
}

// AddAffineVar sets r to the sum of a Jacobian point and an affine point,
// the z2 = 1 specialization of AddVar. Variable time. Safe when r aliases a.
func (r *GroupElementJacobian) AddAffineVar(a *GroupElementJacobian, b *GroupElementAffine) {
	if a.infinity {
		r.SetAffine(b)
		return
	}
	if b.infinity {
		*r = *a
		return
	}

	var z12, u1, u2, s1, s2 FieldElement
	z12.Sqr(&a.z)
	u1 = a.x
	u1.Normalize()
	u2.Mul(&b.x, &z12)
	s1 = a.y
	s1.Normalize()
	s2.Mul(&b.y, &z12)
	s2.Mul(&s2, &a.z)

	if u1.Equal(&u2) {
		if s1.Equal(&s2) {
			r.Double(a)
		} else {
			r.SetInfinity()
		}
		return
	}

	var h, i, i2, h2, h3, t FieldElement
	h.Negate(&u1, 1)
	h.Add(&u2)          // H = U2 - U1 (3)
	i.Negate(&s1, 1)
	i.Add(&s2)          // R = S2 - S1 (3)
	i2.Sqr(&i)
	h2.Sqr(&h)
	h3.Mul(&h, &h2)
	r.z = a.z
	r.z.Mul(&r.z, &h)   // Z3 = Z1*H (1)
	t.Mul(&u1, &h2)     // T = U1*H^2 (1)
	r.x = t
	r.x.MulInt(2)
	r.x.Add(&h3)
	r.x.Negate(&r.x, 3)
	r.x.Add(&i2)        // X3 = R^2 - H^3 - 2*T (5)
	r.y.Negate(&r.x, 5)
	r.y.Add(&t)
	r.y.Mul(&r.y, &i)   // R*(T - X3) (1)
	h3.Mul(&h3, &s1)
	h3.Negate(&h3, 1)
	r.y.Add(&h3)        // Y3 = R*(T - X3) - S1*H^3 (3)
	r.infinity = false
}

// Equal returns true if two Jacobian points represent the same curve point,
// comparing their affine forms.
func (r *GroupElementJacobian) Equal(a *GroupElementJacobian) bool {
	rc, ac := *r, *a
	var raff, aaff GroupElementAffine
	rc.GetAffine(&raff)
	ac.GetAffine(&aaff)
	return raff.Equal(&aaff)
}

// String renders the point as its affine coordinate pair in hex.
func (r *GroupElementJacobian) String() string {
	c := *r
	var aff GroupElementAffine
	c.GetAffine(&aff)
	return aff.String()
}
