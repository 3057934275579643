package secp256k1

import (
	"crypto/subtle"
	"errors"
	"unsafe"

	"secp256k1.mleku.dev/internal/debug"
)

// FieldElement represents an element of the field modulo the secp256k1 prime
// p = 2^256 - 2^32 - 977. The value is held as 5 uint64 limbs in base 2^52
// and is lazily reduced: limbs are allowed to exceed 52 bits between
// normalizations. Each element carries a magnitude M meaning every limb is at
// most M*(2^53-1), except the top limb which is at most M*(2^49-1). Every
// operation documents the magnitude it requires of its inputs and the
// magnitude it leaves on its output; the rules are enforced only in builds
// with the debug tag.
type FieldElement struct {
	// n represents sum(i=0..4, n[i] << (i*52)) mod p
	n [5]uint64

	// Verification fields, checked in debug builds
	magnitude  int  // magnitude of the field element
	normalized bool // whether the value is fully reduced to [0, p)
}

// FieldElementStorage represents a field element packed into 4 uint64 words,
// little-endian word order (word 0 holds bits 0..63).
type FieldElementStorage struct {
	n [4]uint64
}

// Field constants
const (
	// Field modulus reduction constant: 2^32 + 977
	fieldReductionConstant = 0x1000003D1
	// Reduction constant shifted into the 52-bit limb geometry, 2^4 * (2^32 + 977)
	fieldReductionConstantShifted = 0x1000003D10

	// Maximum values for normalized limbs
	limb0Max = 0xFFFFFFFFFFFFF // 2^52 - 1
	limb4Max = 0x0FFFFFFFFFFFF // 2^48 - 1

	// Field modulus in the 5x52 limb layout
	fieldModulusLimb0 = 0xFFFFEFFFFFC2F
	fieldModulusLimb1 = 0xFFFFFFFFFFFFF
	fieldModulusLimb2 = 0xFFFFFFFFFFFFF
	fieldModulusLimb3 = 0xFFFFFFFFFFFFF
	fieldModulusLimb4 = 0x0FFFFFFFFFFFF
)

// Field element constants
var (
	// FieldElementOne represents the field element 1
	FieldElementOne = FieldElement{
		n:          [5]uint64{1, 0, 0, 0, 0},
		magnitude:  1,
		normalized: true,
	}

	// FieldElementZero represents the field element 0
	FieldElementZero = FieldElement{
		n:          [5]uint64{0, 0, 0, 0, 0},
		magnitude:  0,
		normalized: true,
	}
)

// SetInt sets a field element to a small non-negative integer. Magnitude 1.
func (r *FieldElement) SetInt(a int) {
	debug.Assert(a >= 0 && a <= 0x7FFF, "field element constant out of range")

	r.n[0] = uint64(a)
	r.n[1] = 0
	r.n[2] = 0
	r.n[3] = 0
	r.n[4] = 0
	r.magnitude = 1
	r.normalized = true
}

// SetB32 sets a field element from a 32-byte big-endian array. Magnitude 1.
func (r *FieldElement) SetB32(b []byte) error {
	if len(b) != 32 {
		return errors.New("field element byte array must be 32 bytes")
	}

	var d [4]uint64
	for i := 0; i < 4; i++ {
		d[i] = uint64(b[31-8*i]) | uint64(b[30-8*i])<<8 | uint64(b[29-8*i])<<16 | uint64(b[28-8*i])<<24 |
			uint64(b[27-8*i])<<32 | uint64(b[26-8*i])<<40 | uint64(b[25-8*i])<<48 | uint64(b[24-8*i])<<56
	}
	r.Set(&d)

	return nil
}

// GetB32 writes the field element to a 32-byte big-endian array, normalizing
// the receiver.
func (r *FieldElement) GetB32(b []byte) {
	if len(b) != 32 {
		panic("field element byte array must be 32 bytes")
	}

	var d [4]uint64
	r.Get(&d)

	for i := 0; i < 4; i++ {
		b[31-8*i] = byte(d[i])
		b[30-8*i] = byte(d[i] >> 8)
		b[29-8*i] = byte(d[i] >> 16)
		b[28-8*i] = byte(d[i] >> 24)
		b[27-8*i] = byte(d[i] >> 32)
		b[26-8*i] = byte(d[i] >> 40)
		b[25-8*i] = byte(d[i] >> 48)
		b[24-8*i] = byte(d[i] >> 56)
	}
}

// Set sets a field element from 4 uint64 words in little-endian word order
// (word 0 holds bits 0..63). Magnitude 1.
func (r *FieldElement) Set(in *[4]uint64) {
	r.n[0] = in[0] & limb0Max
	r.n[1] = ((in[0] >> 52) | (in[1] << 12)) & limb0Max
	r.n[2] = ((in[1] >> 40) | (in[2] << 24)) & limb0Max
	r.n[3] = ((in[2] >> 28) | (in[3] << 36)) & limb0Max
	r.n[4] = in[3] >> 16

	r.magnitude = 1
	r.normalized = false
}

// Get writes the field element to 4 uint64 words in little-endian word order,
// normalizing the receiver. The result is the canonical value in [0, p).
func (r *FieldElement) Get(out *[4]uint64) {
	r.Normalize()

	out[0] = r.n[0] | (r.n[1] << 52)
	out[1] = (r.n[1] >> 12) | (r.n[2] << 40)
	out[2] = (r.n[2] >> 24) | (r.n[3] << 28)
	out[3] = (r.n[3] >> 36) | (r.n[4] << 16)
}

// Normalize reduces a field element to its canonical representation:
// magnitude 1, value in [0, p). Carries are propagated limb by limb; the
// overflow above the top 48 bits of limb 4 is a multiple of 2^256 and folds
// back into limb 0 as a multiple of 2^32 + 977. A single second pass always
// suffices because the folded carry is small.
func (r *FieldElement) Normalize() {
	t0, t1, t2, t3, t4 := r.n[0], r.n[1], r.n[2], r.n[3], r.n[4]

	// Reduce t4 at the start so there will be at most a single carry from
	// the first pass
	x := t4 >> 48
	t4 &= limb4Max

	// First pass brings every limb within its base
	t0 += x * fieldReductionConstant
	t1 += t0 >> 52
	t0 &= limb0Max
	t2 += t1 >> 52
	t1 &= limb0Max
	m := t1
	t3 += t2 >> 52
	t2 &= limb0Max
	m &= t2
	t4 += t3 >> 52
	t3 &= limb0Max
	m &= t3

	// A final subtraction of p is needed iff the value is p + k with
	// 0 <= k < 2^32 + 977: limbs 1..3 all ones, limb 4 all ones, limb 0 at
	// least p's low limb. The first pass can also leave a carry above
	// limb 4; both cases fold the same way.
	x = t4 >> 48
	if t4 == limb4Max && m == limb0Max && t0 >= fieldModulusLimb0 {
		x |= 1
	}

	if x != 0 {
		t0 += x * fieldReductionConstant
		t1 += t0 >> 52
		t0 &= limb0Max
		t2 += t1 >> 52
		t1 &= limb0Max
		t3 += t2 >> 52
		t2 &= limb0Max
		t4 += t3 >> 52
		t3 &= limb0Max

		// Mask off the multiple of 2^256 that was folded down
		t4 &= limb4Max
	}

	r.n[0], r.n[1], r.n[2], r.n[3], r.n[4] = t0, t1, t2, t3, t4
	r.magnitude = 1
	r.normalized = true
}

// NormalizeWeak brings a field element down to magnitude 1 without reducing
// the value into [0, p).
func (r *FieldElement) NormalizeWeak() {
	t0, t1, t2, t3, t4 := r.n[0], r.n[1], r.n[2], r.n[3], r.n[4]

	x := t4 >> 48
	t4 &= limb4Max

	t0 += x * fieldReductionConstant
	t1 += t0 >> 52
	t0 &= limb0Max
	t2 += t1 >> 52
	t1 &= limb0Max
	t3 += t2 >> 52
	t2 &= limb0Max
	t4 += t3 >> 52
	t3 &= limb0Max

	r.n[0], r.n[1], r.n[2], r.n[3], r.n[4] = t0, t1, t2, t3, t4
	r.magnitude = 1
	r.normalized = false
}

// IsZero returns true if the field element represents zero, normalizing the
// receiver.
func (r *FieldElement) IsZero() bool {
	r.Normalize()
	return r.n[0] == 0 && r.n[1] == 0 && r.n[2] == 0 && r.n[3] == 0 && r.n[4] == 0
}

// IsOdd returns true if the canonical value of the field element is odd,
// normalizing the receiver.
func (r *FieldElement) IsOdd() bool {
	r.Normalize()
	return r.n[0]&1 == 1
}

// Equal returns true if two field elements represent the same value. Both
// operands are normalized.
func (r *FieldElement) Equal(a *FieldElement) bool {
	r.Normalize()
	a.Normalize()

	return subtle.ConstantTimeCompare(
		(*[40]byte)(unsafe.Pointer(&r.n[0]))[:40],
		(*[40]byte)(unsafe.Pointer(&a.n[0]))[:40],
	) == 1
}

// Negate sets r to the negation of a, where a is known to have magnitude at
// most m. Computed limb-wise as (m+1)*2p - a, which cannot borrow. Output
// magnitude is m+1. Safe when r aliases a.
func (r *FieldElement) Negate(a *FieldElement, m int) {
	debug.Assert(m >= 0 && m <= 31, "negation bound out of range")
	debug.Assert(a.magnitude <= m, "negation bound smaller than operand magnitude")

	r.n[0] = 2*uint64(m+1)*fieldModulusLimb0 - a.n[0]
	r.n[1] = 2*uint64(m+1)*fieldModulusLimb1 - a.n[1]
	r.n[2] = 2*uint64(m+1)*fieldModulusLimb2 - a.n[2]
	r.n[3] = 2*uint64(m+1)*fieldModulusLimb3 - a.n[3]
	r.n[4] = 2*uint64(m+1)*fieldModulusLimb4 - a.n[4]

	r.magnitude = m + 1
	r.normalized = false
}

// Add adds a field element to the receiver limb-wise. Magnitudes sum.
func (r *FieldElement) Add(a *FieldElement) {
	r.n[0] += a.n[0]
	r.n[1] += a.n[1]
	r.n[2] += a.n[2]
	r.n[3] += a.n[3]
	r.n[4] += a.n[4]

	r.magnitude += a.magnitude
	r.normalized = false
}

// MulInt multiplies the receiver by a small integer. The magnitude is
// multiplied by the same integer; v must be small enough that the limbs
// cannot overflow 64 bits.
func (r *FieldElement) MulInt(v int) {
	debug.Assert(v >= 0 && v <= 32, "integer multiplier out of range")

	uv := uint64(v)
	r.n[0] *= uv
	r.n[1] *= uv
	r.n[2] *= uv
	r.n[3] *= uv
	r.n[4] *= uv

	r.magnitude *= v
	r.normalized = false
}

// ToStorage packs the field element into storage format, normalizing the
// receiver.
func (r *FieldElement) ToStorage(s *FieldElementStorage) {
	r.Get(&s.n)
}

// FromStorage unpacks a field element from storage format. Magnitude 1.
func (r *FieldElement) FromStorage(s *FieldElementStorage) {
	r.Set(&s.n)
}

// Words returns the packed word form of a storage element.
func (s *FieldElementStorage) Words() [4]uint64 {
	return s.n
}

// SetWords sets a storage element from packed word form.
func (s *FieldElementStorage) SetWords(w [4]uint64) {
	s.n = w
}
