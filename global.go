package atomicrand

import "sync"

// The process-wide generator is built on first use. sync.OnceValue
// resolves the construction race: exactly one caller runs New, the
// rest wait for its result, and later accesses are a single atomic
// load.
var global = sync.OnceValue(New)

// Global returns the process-wide generator, constructing it on first
// access. The returned *Rand is safe to use from any goroutine.
func Global() *Rand {
	return global()
}

// Uint64 returns a pseudorandom 64-bit value from the process-wide
// generator.
func Uint64() uint64 {
	return Global().Uint64()
}

// Uint32 returns a pseudorandom 32-bit value from the process-wide
// generator.
func Uint32() uint32 {
	return Global().Uint32()
}

// Uint64n returns a uniform value in [0, n) from the process-wide
// generator.
func Uint64n(n uint64) uint64 {
	return Global().Uint64n(n)
}

// IntN returns a uniform value in [0, n) from the process-wide
// generator. It panics if n is not positive.
func IntN(n int) int {
	return Global().IntN(n)
}

// Float64 returns a uniform value in [0, 1) from the process-wide
// generator.
func Float64() float64 {
	return Global().Float64()
}

// Read fills p with pseudorandom bytes from the process-wide
// generator. It always returns len(p) and a nil error.
func Read(p []byte) (int, error) {
	return Global().Read(p)
}

// Shuffle pseudo-randomizes the order of n elements using the
// process-wide generator.
func Shuffle(n int, swap func(i, j int)) {
	Global().Shuffle(n, swap)
}
