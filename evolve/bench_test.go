package evolve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlset/band"
	"github.com/katalvlaran/lvlset/evolve"
	"github.com/katalvlaran/lvlset/grid"
)

// benchmarkRun drives a full harness run over an n×n field with the given
// parameters, reusing one harness so buffer allocation amortizes away.
func benchmarkRun(b *testing.B, n int, p evolve.Params, ws *band.Band) {
	input, err := grid.NewField(grid.Sized(n, n))
	if err != nil {
		b.Fatalf("NewField failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	for i := range input.Data() {
		input.Data()[i] = rng.Float64()*2 - 1
	}

	h, err := evolve.New(offsetStepper(1),
		evolve.WithParams(p), evolve.WithInputBand(ws))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n * n * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := h.Run(input, grid.Region{}); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkHarness_Run_FullGrid measures ten full-grid iterations on 128×128.
func BenchmarkHarness_Run_FullGrid(b *testing.B) {
	benchmarkRun(b, 128, evolve.DefaultParams(), nil)
}

// BenchmarkHarness_Run_NarrowBand measures ten band-restricted iterations
// on 128×128 with a one-row working set.
func BenchmarkHarness_Run_NarrowBand(b *testing.B) {
	const n = 128
	nodes := make([]band.Node, n)
	for x := 0; x < n; x++ {
		nodes[x] = band.Node{Index: []int{x, n / 2}}
	}
	p := evolve.DefaultParams()
	p.SetNarrowBanding(true)
	benchmarkRun(b, n, p, band.FromNodes(nodes))
}

// BenchmarkBufferPair_Swap pins the O(1) role exchange.
func BenchmarkBufferPair_Swap(b *testing.B) {
	var bp evolve.BufferPair
	if err := bp.Allocate(grid.Sized(512, 512), nil, false); err != nil {
		b.Fatalf("Allocate failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bp.Swap()
	}
}
