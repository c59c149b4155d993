package poly

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestBracketRoots(t *testing.T) {
	tests := []struct {
		name string
		p    Polynomial
		want []float64
	}{
		{"quadratic", New(-4, 0, 1), []float64{-2, 2}},
		{"quintic", fromRoots(1, 2, 3, -1, -2), []float64{-2, -1, 1, 2, 3}},
		{"clustered", fromRoots(0.1, 0.3, 0.5, 0.7, 0.9), []float64{0.1, 0.3, 0.5, 0.7, 0.9}},
		{"sextic with complex pairs", fromRoots(0.5, -0.25).Mul(New(1, 0, 1)).Mul(New(2, 1, 1)), []float64{-0.25, 0.5}},
		{"odd without real critical points", New(1, 1, 0, 0, 0, 1), nil},
		{"scaled", fromRoots(-3, -1, 4, 6, 10).Scale(-0.01), []float64{-3, -1, 4, 6, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.BracketRoots()
			if tt.want == nil {
				// x⁵ + x + 1 has exactly one real root.
				require.Len(t, got, 1)
				assert.InDelta(t, 0, tt.p.Eval(got[0]), 1e-9)
				return
			}
			require.Len(t, got, len(tt.want))
			assert.InDeltaSlice(t, tt.want, got, 1e-8)
		})
	}
}

func TestBracketRootsMatchesRoots(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for range 200 {
		n := 5 + rng.IntN(4)
		want := make([]float64, n)
		for i := range want {
			want[i] = float64(i) - 3 + 0.5*rng.Float64()
		}
		p := fromRoots(want...)
		require.InDeltaSlice(t, want, p.BracketRoots(), 1e-7)
		require.InDeltaSlice(t, p.Roots(), p.BracketRoots(), 1e-7)
	}
}

func TestRootsConcurrent(t *testing.T) {
	// Root finding keeps no shared state and may run from many goroutines.
	p := fromRoots(-2, -1, 0.5, 1, 2, 3)
	want := p.Roots()
	g, _ := errgroup.WithContext(context.Background())
	results := make([][]float64, 32)
	for i := range results {
		g.Go(func() error {
			if i%2 == 0 {
				results[i] = p.Roots()
			} else {
				results[i] = p.BracketRoots()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, got := range results {
		assert.InDeltaSlice(t, want, got, 1e-9)
	}
}
