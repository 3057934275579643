package secp256k1

import (
	"math/bits"

	"secp256k1.mleku.dev/internal/debug"
)

// uint128 represents a 128-bit unsigned integer for field arithmetic
type uint128 struct {
	high, low uint64
}

// mulU64ToU128 multiplies two uint64 values and returns a uint128
func mulU64ToU128(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{high: hi, low: lo}
}

// addMulU128 computes c + a*b and returns the result as uint128
func addMulU128(c uint128, a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	newLo, carry := bits.Add64(c.low, lo, 0)
	newHi, _ := bits.Add64(c.high, hi, carry)
	return uint128{high: newHi, low: newLo}
}

// addU128 adds a uint64 to a uint128
func addU128(c uint128, a uint64) uint128 {
	newLo, carry := bits.Add64(c.low, a, 0)
	newHi, _ := bits.Add64(c.high, 0, carry)
	return uint128{high: newHi, low: newLo}
}

// lo returns the lower 64 bits
func (u uint128) lo() uint64 {
	return u.low
}

// rshift shifts the uint128 right by n bits, n < 64
func (u uint128) rshift(n uint) uint128 {
	return uint128{
		high: u.high >> n,
		low:  (u.low >> n) | (u.high << (64 - n)),
	}
}

// Mul sets r to the product of a and b. Both inputs must have magnitude at
// most 8. Output magnitude is 1 without a normalize call: limbs 0, 2, 3 and 4
// are within their bases, limb 1 may exceed 52 bits by a small carry, and the
// value may still be >= p. Safe when r aliases a or b.
//
// The ten-limb schoolbook product t0..t9 is computed in base 2^52 with a
// running 128-bit carry, then the top half is folded into the bottom by
// multiplying with 0x1000003D10: the reduction constant 2^32 + 977 shifted
// left 4 bits to absorb the 48-bit width of the top limb into the 52-bit
// base. The residual overflow of limb 4 is folded once more into limb 0 with
// the unshifted constant.
func (r *FieldElement) Mul(a, b *FieldElement) {
	debug.Assert(a.magnitude <= 8, "multiplication operand magnitude exceeds 8")
	debug.Assert(b.magnitude <= 8, "multiplication operand magnitude exceeds 8")

	a0, a1, a2, a3, a4 := a.n[0], a.n[1], a.n[2], a.n[3], a.n[4]
	b0, b1, b2, b3, b4 := b.n[0], b.n[1], b.n[2], b.n[3], b.n[4]

	const M = uint64(limb0Max)
	const R = uint64(fieldReductionConstantShifted)

	c := mulU64ToU128(a0, b0)
	t0 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0, b1)
	c = addMulU128(c, a1, b0)
	t1 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0, b2)
	c = addMulU128(c, a1, b1)
	c = addMulU128(c, a2, b0)
	t2 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0, b3)
	c = addMulU128(c, a1, b2)
	c = addMulU128(c, a2, b1)
	c = addMulU128(c, a3, b0)
	t3 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0, b4)
	c = addMulU128(c, a1, b3)
	c = addMulU128(c, a2, b2)
	c = addMulU128(c, a3, b1)
	c = addMulU128(c, a4, b0)
	t4 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a1, b4)
	c = addMulU128(c, a2, b3)
	c = addMulU128(c, a3, b2)
	c = addMulU128(c, a4, b1)
	t5 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a2, b4)
	c = addMulU128(c, a3, b3)
	c = addMulU128(c, a4, b2)
	t6 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a3, b4)
	c = addMulU128(c, a4, b3)
	t7 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a4, b4)
	t8 := c.lo() & M
	c = c.rshift(52)
	t9 := c.lo()

	// Fold the top half into the bottom half
	c = mulU64ToU128(t5, R)
	c = addU128(c, t0)
	t0 = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t1)
	c = addMulU128(c, t6, R)
	t1 = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t2)
	c = addMulU128(c, t7, R)
	r.n[2] = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t3)
	c = addMulU128(c, t8, R)
	r.n[3] = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t4)
	c = addMulU128(c, t9, R)
	r.n[4] = c.lo() & limb4Max
	c = c.rshift(48)

	// Fold the remaining overflow of limb 4 back into limb 0
	c = mulU64ToU128(c.lo(), fieldReductionConstant)
	c = addU128(c, t0)
	r.n[0] = c.lo() & M
	c = c.rshift(52)
	r.n[1] = t1 + c.lo()

	r.magnitude = 1
	r.normalized = false
}

// Sqr sets r to the square of a. The input must have magnitude at most 8.
// Output magnitude is 1. Safe when r aliases a.
//
// Same schedule as Mul with the symmetric cross terms collapsed to doubled
// products.
func (r *FieldElement) Sqr(a *FieldElement) {
	debug.Assert(a.magnitude <= 8, "squaring operand magnitude exceeds 8")

	a0, a1, a2, a3, a4 := a.n[0], a.n[1], a.n[2], a.n[3], a.n[4]

	const M = uint64(limb0Max)
	const R = uint64(fieldReductionConstantShifted)

	c := mulU64ToU128(a0, a0)
	t0 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0*2, a1)
	t1 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0*2, a2)
	c = addMulU128(c, a1, a1)
	t2 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0*2, a3)
	c = addMulU128(c, a1*2, a2)
	t3 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0*2, a4)
	c = addMulU128(c, a1*2, a3)
	c = addMulU128(c, a2, a2)
	t4 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a1*2, a4)
	c = addMulU128(c, a2*2, a3)
	t5 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a2*2, a4)
	c = addMulU128(c, a3, a3)
	t6 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a3*2, a4)
	t7 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a4, a4)
	t8 := c.lo() & M
	c = c.rshift(52)
	t9 := c.lo()

	// Fold the top half into the bottom half
	c = mulU64ToU128(t5, R)
	c = addU128(c, t0)
	t0 = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t1)
	c = addMulU128(c, t6, R)
	t1 = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t2)
	c = addMulU128(c, t7, R)
	r.n[2] = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t3)
	c = addMulU128(c, t8, R)
	r.n[3] = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t4)
	c = addMulU128(c, t9, R)
	r.n[4] = c.lo() & limb4Max
	c = c.rshift(48)

	// Fold the remaining overflow of limb 4 back into limb 0
	c = mulU64ToU128(c.lo(), fieldReductionConstant)
	c = addU128(c, t0)
	r.n[0] = c.lo() & M
	c = c.rshift(52)
	r.n[1] = t1 + c.lo()

	r.magnitude = 1
	r.normalized = false
}
