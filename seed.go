package atomicrand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
)

// entropySeed derives a starting state from the process entropy
// source, run through the mixer so weakly structured entropy still
// lands at an unpredictable point in the cycle. Consumed once per
// generator construction.
func entropySeed() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic("atomicrand: entropy source unavailable: " + err.Error())
	}
	return Mix(binary.LittleEndian.Uint64(b[:]))
}
