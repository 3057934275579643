// Package secp256k1 implements the arithmetic core of the secp256k1 elliptic
// curve: the short Weierstrass curve y^2 = x^3 + 7 over the prime field
// modulo 2^256 - 2^32 - 977.
//
// The field layer represents elements in a lazily-reduced 5x52 limb form
// with an explicit magnitude discipline, and provides addition, negation,
// integer scaling, multiplication, squaring, modular inverse and square
// root, parity, equality and packing. The group layer provides curve points
// in affine and Jacobian coordinates with doubling, addition, affine
// conversion, compressed-point decoding, negation and a curve membership
// check.
//
// The implementation is correctness- and throughput-oriented: operations
// take variable time and no side-channel resistance is promised.
package secp256k1
