package kendall

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/marijana777/asurv/censor"
	"github.com/marijana777/asurv/sample"
)

const tol = 1e-9

func TestBHKPerfectConcordance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	res, err := BHK(x, x, make([]censor.Code, 5))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Tau, tol)
	assert.InDelta(t, 2.449489742783178, res.Z, tol)
	assert.InDelta(t, 0.014305878435429655, res.Prob, tol)
	assert.InDelta(t, 66.66666666666667, res.Variance, tol)
	assert.Equal(t, int64(20), res.Concordance)
	assert.Equal(t, 5, res.N)
	assert.True(t, res.IsCorrelated)
}

func TestBHKPerfectDiscordance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{5, 4, 3, 2, 1}
	res, err := BHK(x, y, make([]censor.Code, 5))
	require.NoError(t, err)

	assert.InDelta(t, -1.0, res.Tau, tol)
	assert.InDelta(t, -2.449489742783178, res.Z, tol)
	assert.InDelta(t, 0.014305878435429655, res.Prob, tol)
}

func TestBHKCensored(t *testing.T) {
	tests := []struct {
		name  string
		ind   []int
		tau   float64
		z     float64
		prob  float64
		sis   int64
		varnc float64
	}{
		{
			name:  "mixed codes",
			ind:   []int{0, 1, 0, -1, 2, 0, -2, 3, 0, -4},
			tau:   0.8653846153846154,
			z:     2.2283440581246223,
			prob:  0.025857580463442935,
			sis:   32,
			varnc: 206.22222222222223,
		},
		{
			name:  "y limits only",
			ind:   []int{0, 0, 1, 0, 0, -1, 0, 0, 1, 0},
			tau:   0.875,
			z:     3.0193176496962755,
			prob:  0.0025334475170878503,
			sis:   56,
			varnc: 344.0,
		},
		{
			name:  "uncensored",
			ind:   make([]int, 10),
			tau:   0.8222222222222222,
			z:     3.3093806066996887,
			prob:  0.0009350263526396278,
			sis:   74,
			varnc: 500.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := BHKInts(tt.ind, fixtureX, fixtureY)
			require.NoError(t, err)

			assert.InDelta(t, tt.tau, res.Tau, tol)
			assert.InDelta(t, tt.z, res.Z, tol)
			assert.InDelta(t, tt.prob, res.Prob, tol)
			assert.InDelta(t, tt.varnc, res.Variance, tol)
			assert.Equal(t, tt.sis, res.Concordance)
			t.Logf("tau=%.4f z=%.4f prob=%.4g", res.Tau, res.Z, res.Prob)
		})
	}
}

func TestBHKTies(t *testing.T) {
	x := []float64{1, 1, 2, 3, 3, 4}
	y := []float64{2, 1, 2, 4, 3, 5}
	res, err := BHK(x, y, make([]censor.Code, 6))
	require.NoError(t, err)

	assert.InDelta(t, 0.989010989010989, res.Tau, tol)
	assert.InDelta(t, 2.3779088001393376, res.Z, tol)
	assert.InDelta(t, 0.017411131570499824, res.Prob, tol)
}

func TestBHKUncensoredMatchesKendall(t *testing.T) {
	x := []float64{0.3, 2.2, 1.7, 5.9, 4.1, 3.3, 8.8, 6.5, 7.2}
	y := []float64{1.1, 0.4, 2.7, 3.9, 5.2, 2.0, 6.6, 8.1, 4.4}
	res, err := BHK(x, y, make([]censor.Code, len(x)))
	require.NoError(t, err)

	want := stat.Kendall(x, y, nil)
	if math.Abs(res.Tau-want) > tol {
		t.Errorf("Uncensored tau %f differs from classical Kendall %f", res.Tau, want)
	}
}

func TestBHKErrors(t *testing.T) {
	codes := make([]censor.Code, 3)

	_, err := BHK([]float64{1, 2, 3}, []float64{1, 2}, codes)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = BHK([]float64{1, 2, 3}, []float64{1, 2, 3}, codes[:2])
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = BHKInts([]int{0, 0}, []float64{1, 2, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = BHK([]float64{1, 2}, []float64{1, 2}, codes[:2])
	assert.ErrorIs(t, err, ErrInsufficientSampleSize)

	_, err = BHK(nil, nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientSampleSize)

	_, err = BHKInts([]int{0, 5, 0}, []float64{1, 2, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, censor.ErrInvalidCode)

	_, err = BHK([]float64{1, 2, 3}, []float64{1, 2, 3}, []censor.Code{0, -7, 0})
	assert.ErrorIs(t, err, censor.ErrInvalidCode)
}

func TestBHKDegenerate(t *testing.T) {
	// All x tied
	_, err := BHK([]float64{2, 2, 2, 2}, []float64{1, 2, 3, 4}, make([]censor.Code, 4))
	assert.ErrorIs(t, err, ErrDegenerateCorrelation)

	// Every x is a lower limit, so no x pair is comparable
	codes := []censor.Code{censor.LowerLimitX, censor.LowerLimitX, censor.LowerLimitX}
	_, err = BHK([]float64{1, 2, 3}, []float64{1, 2, 3}, codes)
	assert.ErrorIs(t, err, ErrDegenerateCorrelation)
}

func TestBHKDeterministic(t *testing.T) {
	n := 200
	x := make([]float64, n)
	y := make([]float64, n)
	codes := make([]censor.Code, n)
	for i := 0; i < n; i++ {
		x[i] = float64((i*37)%101) + 0.5*float64(i%3)
		y[i] = x[i]*0.6 + float64((i*53)%47)
		codes[i] = censor.All[(i*7)%len(censor.All)]
	}

	serial, err := New(&Config{Workers: 1}).Compute(x, y, codes)
	require.NoError(t, err)

	for _, w := range []int{2, 3, 8, 64, 500} {
		res, err := New(&Config{Workers: w}).Compute(x, y, codes)
		require.NoError(t, err)
		assert.Equal(t, *serial, *res, "workers=%d", w)
	}

	again, err := New(&Config{Workers: 1}).Compute(x, y, codes)
	require.NoError(t, err)
	assert.Equal(t, *serial, *again)
}

func TestBHKSample(t *testing.T) {
	s, err := sample.NewFromInts(fixtureX, fixtureY, censor.Ints(fixtureC))
	require.NoError(t, err)

	res, err := BHKSample(s)
	require.NoError(t, err)
	assert.InDelta(t, 0.8653846153846154, res.Tau, tol)

	bad := &sample.Set{X: []float64{1, 2, 3}, Y: []float64{1, 2}, Codes: make([]censor.Code, 3)}
	_, err = BHKSample(bad)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestComputeContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, w := range []int{1, 4} {
		_, err := New(&Config{Workers: w}).ComputeContext(ctx, fixtureX, fixtureY, fixtureC)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: expected context.Canceled, got %v", w, err)
		}
	}
}

func TestConfigAlphaAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// prob is ~0.0259 for the fixture
	res, err := New(&Config{Alpha: 0.01, Logger: logger}).Compute(fixtureX, fixtureY, fixtureC)
	require.NoError(t, err)
	assert.False(t, res.IsCorrelated)
	assert.Contains(t, buf.String(), "computed censored kendall tau")
	assert.Contains(t, buf.String(), "n=10")

	res, err = New(&Config{Alpha: 0.05}).Compute(fixtureX, fixtureY, fixtureC)
	require.NoError(t, err)
	assert.True(t, res.IsCorrelated)

	cfg := DefaultConfig()
	assert.Equal(t, 0.05, cfg.Alpha)
	assert.Nil(t, cfg.Logger)
}
