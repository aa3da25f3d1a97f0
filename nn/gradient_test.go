package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gatenet/matrix"
	"github.com/katalvlaran/gatenet/nn"
	"github.com/stretchr/testify/require"
)

// snapshot flattens every parameter, weights first.
func snapshot(t testing.TB, n *nn.Network) []float64 {
	t.Helper()
	var out []float64
	for i := 0; i+1 < n.Layers(); i++ {
		w, err := n.Weight(i)
		require.NoError(t, err)
		out = append(out, w.RawData()...)
	}
	for i := 0; i+1 < n.Layers(); i++ {
		b, err := n.Bias(i)
		require.NoError(t, err)
		out = append(out, b.RawData()...)
	}

	return out
}

func flatGradient(g *nn.Gradient) []float64 {
	var out []float64
	for _, w := range g.Weights {
		out = append(out, w.RawData()...)
	}
	for _, b := range g.Biases {
		out = append(out, b.RawData()...)
	}

	return out
}

func TestEstimateGradientShape(t *testing.T) {
	n := mustNet(t, 2, 3, 1)
	require.NoError(t, n.Randomize(0, 1, rand.New(rand.NewSource(1))))

	g, err := n.EstimateGradient(mustRows(t, orInputs), mustRows(t, orTargets), 0.1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 1}, g.Architecture())
	require.Len(t, g.Weights, 2)
	require.Len(t, g.Biases, 2)
	for i := range g.Weights {
		w, _ := n.Weight(i)
		b, _ := n.Bias(i)
		require.NoError(t, matrix.ValidateSameShape(w, g.Weights[i]))
		require.NoError(t, matrix.ValidateSameShape(b, g.Biases[i]))
	}
}

func TestEstimateGradientRestoresParameters(t *testing.T) {
	n := mustNet(t, 2, 2, 1)
	require.NoError(t, n.Randomize(-1, 1, rand.New(rand.NewSource(9))))
	before := snapshot(t, n)

	_, err := n.EstimateGradient(mustRows(t, orInputs), mustRows(t, orTargets), 0.1)
	require.NoError(t, err)
	require.Equal(t, before, snapshot(t, n))
}

// TestEstimateGradientAtMinimum: a single neuron with x=0, y=0.5 and zero
// parameters sits at the cost minimum. The weight never moves the output so
// its estimate is exactly 0; the bias estimate is positive and shrinks with eps.
func TestEstimateGradientAtMinimum(t *testing.T) {
	in := mustRows(t, [][]float64{{0}})
	out := mustRows(t, [][]float64{{0.5}})

	prev := math.Inf(1)
	for _, eps := range []float64{1e-1, 1e-2, 1e-3} {
		n := mustNet(t, 1, 1)
		g, err := n.EstimateGradient(in, out, eps)
		require.NoError(t, err)

		dw, _ := g.Weights[0].At(0, 0)
		db, _ := g.Biases[0].At(0, 0)
		require.Zero(t, dw)
		require.Greater(t, db, 0.0)
		require.Less(t, db, eps)
		require.Less(t, db, prev)
		prev = db
	}
}

// TestEstimateGradientMatchesAnalytic compares against the closed form
// dC/dw = mean 2(a-y)a(1-a)x and dC/db = mean 2(a-y)a(1-a).
func TestEstimateGradientMatchesAnalytic(t *testing.T) {
	const w0, b0 = 0.3, -0.2
	xs := []float64{0, 1, 0.5}
	ys := []float64{0, 1, 0.25}

	var wantW, wantB float64
	for i := range xs {
		a := matrix.Sigmoid(w0*xs[i] + b0)
		d := 2 * (a - ys[i]) * a * (1 - a)
		wantW += d * xs[i]
		wantB += d
	}
	wantW /= float64(len(xs))
	wantB /= float64(len(xs))

	in := mustRows(t, [][]float64{{xs[0]}, {xs[1]}, {xs[2]}})
	out := mustRows(t, [][]float64{{ys[0]}, {ys[1]}, {ys[2]}})

	prevErr := math.Inf(1)
	for _, eps := range []float64{1e-1, 1e-2, 1e-3} {
		n := mustNet(t, 1, 1)
		w, err := n.Weight(0)
		mustSetParam(t, w, err, [][]float64{{w0}})
		b, err := n.Bias(0)
		mustSetParam(t, b, err, [][]float64{{b0}})

		g, err := n.EstimateGradient(in, out, eps)
		require.NoError(t, err)
		gw, _ := g.Weights[0].At(0, 0)
		gb, _ := g.Biases[0].At(0, 0)

		e := math.Abs(gw-wantW) + math.Abs(gb-wantB)
		require.Less(t, e, prevErr, "eps=%g", eps)
		prevErr = e
	}
	require.Less(t, prevErr, 1e-3)
}

// TestEstimateGradientWorkers: parallel probes give the exact sequential result.
func TestEstimateGradientWorkers(t *testing.T) {
	in := mustRows(t, [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	out := mustRows(t, [][]float64{{0}, {1}, {1}, {0}})

	n := mustNet(t, 2, 4, 3, 1)
	require.NoError(t, n.Randomize(0, 1, rand.New(rand.NewSource(42))))
	before := snapshot(t, n)

	seq, err := n.EstimateGradient(in, out, 0.05)
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 7, 64} {
		par, err := n.EstimateGradient(in, out, 0.05, nn.WithWorkers(workers))
		require.NoError(t, err)
		require.Equal(t, flatGradient(seq), flatGradient(par), "workers=%d", workers)
	}
	require.Equal(t, before, snapshot(t, n))
}

func TestEstimateGradientErrors(t *testing.T) {
	n := mustNet(t, 2, 1)
	in, out := mustRows(t, orInputs), mustRows(t, orTargets)

	for _, eps := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err := n.EstimateGradient(in, out, eps)
		require.ErrorIs(t, err, nn.ErrBadEpsilon, "eps=%g", eps)
	}

	_, err := n.EstimateGradient(in, mustRows(t, [][]float64{{1}}), 0.1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestGradientNorm(t *testing.T) {
	g, err := nn.NewGradient([]int{2, 1})
	require.NoError(t, err)
	require.Zero(t, g.Norm())

	require.NoError(t, g.Weights[0].SetRow(0, []float64{3}))
	require.NoError(t, g.Biases[0].SetRow(0, []float64{4}))
	require.InDelta(t, 5.0, g.Norm(), 1e-15)

	_, err = nn.NewGradient([]int{1})
	require.ErrorIs(t, err, nn.ErrBadArchitecture)
}

func TestApplyGradient(t *testing.T) {
	n := mustNet(t, 2, 1)
	w, err := n.Weight(0)
	mustSetParam(t, w, err, [][]float64{{1}, {2}})

	g, err := nn.NewGradient([]int{2, 1})
	require.NoError(t, err)
	mustSetParam(t, g.Weights[0], nil, [][]float64{{10}, {-10}})
	mustSetParam(t, g.Biases[0], nil, [][]float64{{1}})

	require.NoError(t, n.ApplyGradient(g, 0))
	require.Equal(t, []float64{1, 2, 0}, snapshot(t, n), "rate 0 is a no-op")

	require.NoError(t, n.ApplyGradient(g, 0.5))
	require.Equal(t, []float64{-4, 7, -0.5}, snapshot(t, n))
}

func TestApplyGradientErrors(t *testing.T) {
	n := mustNet(t, 2, 1)
	require.ErrorIs(t, n.ApplyGradient(nil, 0.1), nn.ErrNilGradient)

	g, err := nn.NewGradient([]int{2, 1})
	require.NoError(t, err)
	require.ErrorIs(t, n.ApplyGradient(g, math.NaN()), nn.ErrBadRate)

	other, err := nn.NewGradient([]int{2, 2, 1})
	require.NoError(t, err)
	require.ErrorIs(t, n.ApplyGradient(other, 0.1), matrix.ErrDimensionMismatch)

	wide, err := nn.NewGradient([]int{3, 1})
	require.NoError(t, err)
	require.ErrorIs(t, n.ApplyGradient(wide, 0.1), matrix.ErrDimensionMismatch)

	require.Equal(t, []float64{0, 0, 0}, snapshot(t, n))
}

// TestApplyGradientOverflowKeepsParameters: a step that overflows any cell
// leaves every layer as it was.
func TestApplyGradientOverflowKeepsParameters(t *testing.T) {
	n := mustNet(t, 2, 1)
	g, err := nn.NewGradient([]int{2, 1})
	require.NoError(t, err)
	mustSetParam(t, g.Weights[0], nil, [][]float64{{1}, {1e10}})

	err = n.ApplyGradient(g, 1e300)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, []float64{0, 0, 0}, snapshot(t, n))

	// Overflow in the last layer's biases must not keep earlier layers' updates.
	deep := mustNet(t, 2, 2, 1)
	require.NoError(t, deep.Randomize(0, 1, rand.New(rand.NewSource(2))))
	before := snapshot(t, deep)
	gd, err := nn.NewGradient([]int{2, 2, 1})
	require.NoError(t, err)
	mustSetParam(t, gd.Weights[0], nil, [][]float64{{1, 1}, {1, 1}})
	mustSetParam(t, gd.Biases[1], nil, [][]float64{{1e10}})

	require.ErrorIs(t, deep.ApplyGradient(gd, 1e300), matrix.ErrNaNInf)
	require.Equal(t, before, snapshot(t, deep))
}

// TestDescentStepLowersCost: one small step along the estimate lowers the cost.
func TestDescentStepLowersCost(t *testing.T) {
	n := mustNet(t, 2, 2, 1)
	require.NoError(t, n.Randomize(0, 1, rand.New(rand.NewSource(4))))
	in, out := mustRows(t, orInputs), mustRows(t, orTargets)

	c0, err := n.Cost(in, out)
	require.NoError(t, err)
	g, err := n.EstimateGradient(in, out, 1e-4)
	require.NoError(t, err)
	require.NoError(t, n.ApplyGradient(g, 0.1))
	c1, err := n.Cost(in, out)
	require.NoError(t, err)
	require.Less(t, c1, c0)
}
