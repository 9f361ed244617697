package atomicrand

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConstructedOnce(t *testing.T) {
	const goroutines = 16

	instances := make([]*Rand, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances[g] = Global()
		}()
	}
	wg.Wait()

	for _, r := range instances {
		require.Same(t, instances[0], r, "concurrent first access must yield one instance")
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		v := Uint64()
		assert.False(t, seen[v], "duplicate value from global generator")
		seen[v] = true
	}

	assert.EqualValues(t, 0, Uint64n(1))

	for i := 0; i < 100; i++ {
		assert.Less(t, IntN(10), 10)

		f := Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}

	buf := make([]byte, 16)
	n, err := Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	vals := []int{0, 1, 2, 3, 4}
	Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, vals)
}

func BenchmarkGlobalUint64Parallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = Uint64()
		}
	})
}
