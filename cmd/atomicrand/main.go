package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/atomicrand"
	"github.com/lox/atomicrand/internal/avalanche"
)

var headerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Debug bool `help:"Show debug logs" default:"false"`

	Stream    StreamCmd    `cmd:"" help:"Write raw generator output to stdout (pipe into PractRand or dieharder)"`
	Avalanche AvalancheCmd `cmd:"" help:"Measure bit diffusion of the mixing function"`
	Sample    SampleCmd    `cmd:"" help:"Print sample values"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("atomicrand"),
		kong.Description("Tools for the atomicrand single-word lock-free PRNG"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	if cli.Debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx.FatalIfErrorf(ctx.Run())
}

// newRand picks seeding mode: an explicit seed gives a reproducible
// stream, zero falls back to process entropy.
func newRand(seed uint64) *atomicrand.Rand {
	if seed == 0 {
		return atomicrand.New()
	}
	return atomicrand.NewSeeded(seed)
}

type StreamCmd struct {
	Seed  uint64 `help:"Deterministic seed (0 uses process entropy)"`
	Bytes uint64 `help:"Number of bytes to emit (0 streams until stdout closes)"`
	Buf   int    `help:"Write buffer size in bytes" default:"65536"`
}

func (c *StreamCmd) Run() error {
	log.Debug("streaming generator output", "seed", c.Seed, "bytes", c.Bytes, "buf", c.Buf)

	rng := newRand(c.Seed)
	w := bufio.NewWriterSize(os.Stdout, c.Buf)
	buf := make([]byte, 8192)

	var written uint64
	for c.Bytes == 0 || written < c.Bytes {
		n := len(buf)
		if c.Bytes != 0 && c.Bytes-written < uint64(n) {
			n = int(c.Bytes - written)
		}
		rng.Read(buf[:n])
		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("writing stream: %w", err)
		}
		written += uint64(n)
	}
	return w.Flush()
}

type AvalancheCmd struct {
	Samples int    `help:"Number of inputs to test" default:"100000"`
	Seed    uint64 `help:"Seed for input generation (0 uses process entropy)"`
	Counter bool   `help:"Feed sequential counter states instead of random words"`
	Workers int    `help:"Parallel workers (0 uses GOMAXPROCS)"`
}

func (c *AvalancheCmd) Run() error {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rng := newRand(c.Seed)
	inputs := make([]uint64, c.Samples)
	if c.Counter {
		// Walk the same golden-ratio step the generator uses, so the
		// report shows the mixer erasing the counter's arithmetic
		// structure rather than relying on already-random inputs.
		x := rng.Uint64()
		for i := range inputs {
			inputs[i] = x
			x += 0x9E3779B97F4A7FFF
		}
	} else {
		for i := range inputs {
			inputs[i] = rng.Uint64()
		}
	}

	log.Debug("measuring avalanche", "samples", c.Samples, "workers", workers, "counter", c.Counter)

	results := make([]avalanche.Result, workers)
	chunk := (len(inputs) + workers - 1) / workers
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(inputs))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			results[w] = avalanche.Measure(atomicrand.Mix, inputs[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var total avalanche.Result
	for _, r := range results {
		total.Merge(r)
	}

	fmt.Println(headerStyle.Render(" atomicrand avalanche "))
	fmt.Println()
	fmt.Printf("trials             %d\n", total.Trials)
	fmt.Printf("mean bits flipped  %.4f (ideal 32)\n", total.Mean())
	fmt.Printf("std dev            %.4f\n", total.StdDev())
	lo, hi := total.BitRange()
	fmt.Printf("per-bit flip rate  %.4f .. %.4f (ideal 0.5)\n", lo, hi)
	return nil
}

type SampleCmd struct {
	N      int    `help:"Number of values to print" default:"10"`
	Format string `help:"Output format" enum:"dec,hex,float" default:"dec"`
	Seed   uint64 `help:"Deterministic seed (0 uses process entropy)"`
}

func (c *SampleCmd) Run() error {
	rng := newRand(c.Seed)
	for i := 0; i < c.N; i++ {
		switch c.Format {
		case "hex":
			fmt.Printf("%016x\n", rng.Uint64())
		case "float":
			fmt.Printf("%v\n", rng.Float64())
		default:
			fmt.Println(rng.Uint64())
		}
	}
	return nil
}
