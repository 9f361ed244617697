// Package avalanche measures how well a 64-bit mixing function
// diffuses single-bit input changes. For an ideal mixer, flipping one
// input bit flips each output bit with probability 1/2, so the mean
// number of flipped output bits is 32 and every per-bit flip rate sits
// at 0.5.
package avalanche

import (
	"math"
	"math/bits"
)

// Result accumulates bit-diffusion measurements. One trial is a single
// (input, flipped input bit) pair.
type Result struct {
	Trials   int     // pairs measured
	Flipped  int     // total output bits changed across all trials
	Flipped2 int     // sum of squares, for variance
	PerBit   [64]int // flip count per output bit position
}

// Measure feeds every input through f, flips each of its 64 bits in
// turn, and records how the output changes.
func Measure(f func(uint64) uint64, inputs []uint64) Result {
	var res Result
	for _, x := range inputs {
		base := f(x)
		for bit := 0; bit < 64; bit++ {
			d := base ^ f(x^(1<<bit))
			c := bits.OnesCount64(d)

			res.Trials++
			res.Flipped += c
			res.Flipped2 += c * c
			for out := 0; d != 0; out++ {
				if d&1 != 0 {
					res.PerBit[out]++
				}
				d >>= 1
			}
		}
	}
	return res
}

// Merge folds another result into r, so per-worker measurements can be
// combined.
func (r *Result) Merge(o Result) {
	r.Trials += o.Trials
	r.Flipped += o.Flipped
	r.Flipped2 += o.Flipped2
	for i := range r.PerBit {
		r.PerBit[i] += o.PerBit[i]
	}
}

// Mean returns the average number of output bits flipped per trial.
func (r *Result) Mean() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Flipped) / float64(r.Trials)
}

// StdDev returns the sample standard deviation of flipped bits per
// trial.
func (r *Result) StdDev() float64 {
	if r.Trials < 2 {
		return 0
	}
	mean := r.Mean()
	variance := (float64(r.Flipped2) - float64(r.Trials)*mean*mean) / float64(r.Trials-1)
	return math.Sqrt(variance)
}

// BitRange returns the lowest and highest per-output-bit flip rate.
func (r *Result) BitRange() (lo, hi float64) {
	if r.Trials == 0 {
		return 0, 0
	}
	lo, hi = 1, 0
	for _, n := range r.PerBit {
		rate := float64(n) / float64(r.Trials)
		lo = math.Min(lo, rate)
		hi = math.Max(hi, rate)
	}
	return lo, hi
}
