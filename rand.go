// Package atomicrand implements a pseudorandom number generator whose
// entire mutable state is a single 64-bit word updated with one atomic
// fetch-and-add per value. Any number of goroutines can draw values
// through a shared *Rand without locking: the counter follows a
// full-period Weyl sequence, so every concurrent caller observes a
// distinct counter value, and the Mix function turns those counter
// values into statistically well-distributed output.
//
// The generator is not cryptographically secure. It is built for
// high-throughput, non-adversarial use: simulations, shuffling,
// sampling, load-test traffic.
package atomicrand

import (
	"encoding/binary"
	"math/bits"
	rand "math/rand/v2"
	"sync/atomic"
)

// increment is the Weyl sequence step, a 64-bit constant from the
// golden-ratio family. It must be odd: gcd(increment, 2^64) = 1 is
// what guarantees the counter visits all 2^64 states before repeating.
const increment = 0x9E3779B97F4A7FFF

// Fails to compile if the increment is even (the subtraction would
// produce a negative untyped constant).
const _ uint64 = increment%2 - 1

// Rand is a lock-free pseudorandom number generator. All methods are
// safe for concurrent use through a shared *Rand; none of them block
// or allocate.
//
// A *Rand satisfies math/rand/v2's Source interface, so it can feed
// rand.New directly when the richer rand/v2 API is needed.
type Rand struct {
	state atomic.Uint64
}

var _ rand.Source = (*Rand)(nil)

// New returns a generator seeded from the process entropy source, so
// distinct instances start at unpredictable points in the cycle.
func New() *Rand {
	return NewSeeded(entropySeed())
}

// NewSeeded returns a generator starting at the given state. Two
// generators constructed with the same seed produce identical output
// sequences; use this for reproducible test runs.
func NewSeeded(seed uint64) *Rand {
	r := &Rand{}
	r.state.Store(seed)
	return r
}

// step atomically advances the counter and returns the value it held
// before the advance. The fetch-and-add linearizes all updates to the
// one state word, so concurrent callers always receive distinct
// values; no ordering is implied for any other memory.
func (r *Rand) step() uint64 {
	return r.state.Add(increment) - increment
}

// Uint64 returns a pseudorandom 64-bit value. After 2^64 calls the
// counter wraps and the sequence repeats from the seed; that is not an
// error.
func (r *Rand) Uint64() uint64 {
	return Mix(r.step())
}

// Uint32 returns a pseudorandom 32-bit value, taken from the high half
// of Uint64.
func (r *Rand) Uint32() uint32 {
	return uint32(r.Uint64() >> 32)
}

// Uint64n returns a uniform pseudorandom value in [0, n), using a
// single widening multiply to reduce the 64-bit word. Returns 0 if n
// is 0.
func (r *Rand) Uint64n(n uint64) uint64 {
	hi, _ := bits.Mul64(r.Uint64(), n)
	return hi
}

// IntN returns a uniform pseudorandom value in [0, n). It panics if n
// is not positive.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic("atomicrand: IntN called with n <= 0")
	}
	return int(r.Uint64n(uint64(n)))
}

// Float64 returns a uniform pseudorandom value in [0, 1) built from
// the top 53 bits of Uint64, so every result is exactly representable.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Read fills p with pseudorandom bytes. It always returns len(p) and a
// nil error.
func (r *Rand) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], r.Uint64())
		copy(p, b[:])
	}
	return n, nil
}

// Shuffle pseudo-randomizes the order of n elements with a
// Fisher-Yates walk. swap swaps the elements at indexes i and j. It
// panics if n is negative.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("atomicrand: Shuffle called with n < 0")
	}
	for i := n - 1; i > 0; i-- {
		j := int(r.Uint64n(uint64(i + 1)))
		swap(i, j)
	}
}
