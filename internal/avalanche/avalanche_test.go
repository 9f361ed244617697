package avalanche

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(x uint64) uint64 { return x }

func TestMeasureIdentity(t *testing.T) {
	// The identity function flips exactly the one bit that was
	// flipped on the input, so every per-bit rate is 1/64 and the
	// mean is exactly 1.
	res := Measure(identity, []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0x1234})

	require.Equal(t, 4*64, res.Trials)
	assert.Equal(t, 1.0, res.Mean())
	assert.Equal(t, 0.0, res.StdDev())

	lo, hi := res.BitRange()
	assert.InDelta(t, 1.0/64, lo, 1e-12)
	assert.InDelta(t, 1.0/64, hi, 1e-12)
}

func TestMergeMatchesSinglePass(t *testing.T) {
	inputs := []uint64{1, 2, 3, 4, 5, 6}
	f := func(x uint64) uint64 { return x * 0x9E3779B97F4A7C15 }

	whole := Measure(f, inputs)

	var merged Result
	merged.Merge(Measure(f, inputs[:3]))
	merged.Merge(Measure(f, inputs[3:]))

	assert.Equal(t, whole, merged)
}

func TestEmptyResult(t *testing.T) {
	var res Result

	assert.Equal(t, 0.0, res.Mean())
	assert.Equal(t, 0.0, res.StdDev())

	lo, hi := res.BitRange()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}
