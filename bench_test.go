package secp256k1

import (
	"testing"

	btcec "github.com/btcsuite/btcd/btcec/v2"
)

// Benchmarks for the hot arithmetic paths, plus the same group operations
// through the pure-Go btcec implementation for comparison.

var (
	benchFieldA FieldElement
	benchFieldB FieldElement
	benchPoint1 GroupElementJacobian
	benchPoint2 GroupElementJacobian
	benchAffine GroupElementAffine

	benchBtcec1 btcec.JacobianPoint
	benchBtcec2 btcec.JacobianPoint

	benchSinkField FieldElement
	benchSinkPoint GroupElementJacobian
	benchSinkBtcec btcec.JacobianPoint
)

func init() {
	benchFieldA.SetHex(testPointHex1)
	benchFieldB.SetHex(testPointHex2)

	benchPoint1.SetCompressed(&benchFieldA, false)
	benchPoint2.SetCompressed(&benchFieldB, false)
	p2 := benchPoint2
	p2.GetAffine(&benchAffine)

	var xb, yb [32]byte
	benchPoint1.x.GetB32(xb[:])
	benchPoint1.y.GetB32(yb[:])
	benchBtcec1.X.SetByteSlice(xb[:])
	benchBtcec1.Y.SetByteSlice(yb[:])
	benchBtcec1.Z.SetInt(1)

	benchAffine.X().GetB32(xb[:])
	benchAffine.Y().GetB32(yb[:])
	benchBtcec2.X.SetByteSlice(xb[:])
	benchBtcec2.Y.SetByteSlice(yb[:])
	benchBtcec2.Z.SetInt(1)
}

func BenchmarkFieldMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkField.Mul(&benchFieldA, &benchFieldB)
	}
}

func BenchmarkFieldSqr(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkField.Sqr(&benchFieldA)
	}
}

func BenchmarkFieldNormalize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		f := benchFieldA
		f.Normalize()
	}
}

func BenchmarkFieldInv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkField.Inv(&benchFieldA)
	}
}

func BenchmarkFieldSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkField.Sqrt(&benchFieldA)
	}
}

func BenchmarkGroupDouble(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkPoint.Double(&benchPoint1)
	}
}

func BenchmarkGroupAddVar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkPoint.AddVar(&benchPoint1, &benchPoint2)
	}
}

func BenchmarkGroupAddAffineVar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkPoint.AddAffineVar(&benchPoint1, &benchAffine)
	}
}

func BenchmarkGroupGetAffine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		p := benchPoint1
		var aff GroupElementAffine
		p.GetAffine(&aff)
	}
}

// btcec comparison benchmarks

func BenchmarkGroupDoubleBtcec(b *testing.B) {
	for i := 0; i < b.N; i++ {
		btcec.DoubleNonConst(&benchBtcec1, &benchSinkBtcec)
	}
}

func BenchmarkGroupAddVarBtcec(b *testing.B) {
	for i := 0; i < b.N; i++ {
		btcec.AddNonConst(&benchBtcec1, &benchBtcec2, &benchSinkBtcec)
	}
}
