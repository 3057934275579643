// Command secpbench decodes two compressed curve points, validates them and
// times a chain of Jacobian+affine additions.
package main

import (
	"flag"
	"time"

	"secp256k1.mleku.dev"
	"secp256k1.mleku.dev/logger"
)

func main() {
	var (
		x1    = flag.String("x1", "8B30BBE9AE2A990696B22F670709DFF3727FD8BC04D3362C6C7BF458E2846004", "x coordinate of the accumulator point, hex")
		x2    = flag.String("x2", "A357AE915C4A65281309EDF20504740F1EB3333990216B4F81063CB65F2F7E0F", "x coordinate of the added point, hex")
		iters = flag.Int("iters", 100000, "number of point additions")
	)
	flag.Parse()

	log := logger.Logger()

	var f1, f2 secp256k1.FieldElement
	f1.SetHex(*x1)
	f2.SetHex(*x2)

	var g1, g2 secp256k1.GroupElementJacobian
	g1.SetCompressed(&f1, false)
	g2.SetCompressed(&f2, false)
	log.Info().Str("point", g1.String()).Bool("valid", g1.IsValid()).Msg("g1")
	log.Info().Str("point", g2.String()).Bool("valid", g2.IsValid()).Msg("g2")
	if !g1.IsValid() || !g2.IsValid() {
		log.Fatal().Msg("input x coordinate is not on the curve")
	}

	var g2a secp256k1.GroupElementAffine
	g2.GetAffine(&g2a)

	x := g1
	start := time.Now()
	for i := 0; i < *iters; i++ {
		x.AddAffineVar(&x, &g2a)
	}
	elapsed := time.Since(start)

	log.Info().
		Str("result", x.String()).
		Bool("valid", x.IsValid()).
		Int("iters", *iters).
		Dur("took", elapsed).
		Float64("adds_per_sec", float64(*iters)/elapsed.Seconds()).
		Msg("done")
}
