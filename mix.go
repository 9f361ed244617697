package atomicrand

import "math/bits"

// Mixer constants. Each is a 128-bit odd number assembled from two of
// the wyhash primes, written as (high word, low word). Oddness keeps
// the multiplication invertible mod 2^128.
const (
	alphaHi = 0xa0761d6478bd642f
	alphaLo = 0xe7037ed1a0b428db
	betaHi  = 0x8ebc6af09c88c6e3
	betaLo  = 0x589965cc75374cc3
)

// Mix maps a 64-bit word to a well-distributed 64-bit output. The
// input is widened to 128 bits, multiplied by a 128-bit constant, and
// folded by XOR-ing the high half into the low half; the fold is then
// repeated with a second constant. Flipping any single input bit
// changes about half the output bits.
//
// Mix(0) is 0. The generator only ever feeds Mix one zero input per
// 2^64 period, and default seeding runs the entropy word through Mix
// first, so the fixed point is harmless in practice.
func Mix(x uint64) uint64 {
	// x * ALPHA mod 2^128, where ALPHA = alphaHi<<64 | alphaLo. The
	// high word is Mul64's carry plus the wrapping x*alphaHi term.
	hi, lo := bits.Mul64(x, alphaLo)
	hi += x * alphaHi
	x = hi ^ lo

	hi, lo = bits.Mul64(x, betaLo)
	hi += x * betaHi
	return hi ^ lo
}
