package kendall

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/marijana777/asurv/censor"
	"github.com/marijana777/asurv/sample"
)

// Config holds estimator settings.
type Config struct {
	Workers int          // Parallel workers (default: GOMAXPROCS)
	Alpha   float64      // Significance level for IsCorrelated (default: 0.05)
	Logger  *slog.Logger // Debug output; nil disables logging
}

// DefaultConfig returns the default estimator configuration.
func DefaultConfig() *Config {
	return &Config{
		Alpha: 0.05,
	}
}

// Result holds the generalized Kendall's tau and its significance.
type Result struct {
	Tau          float64
	Z            float64
	Prob         float64 // Two-sided probability of |Z| under no correlation
	Variance     float64
	Sigma        float64
	Concordance  int64 // Sum of score products over all ordered pairs
	N            int
	IsCorrelated bool
}

// Estimator computes censored Kendall's tau with a fixed configuration.
// It is safe for concurrent use.
type Estimator struct {
	config Config
}

// New creates an Estimator. A nil config uses DefaultConfig.
func New(config *Config) *Estimator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Estimator{config: *config}
}

// BHK computes the statistic with the default configuration.
func BHK(x, y []float64, codes []censor.Code) (*Result, error) {
	return New(nil).Compute(x, y, codes)
}

// BHKInts computes the statistic from codes in the integer convention.
func BHKInts(ind []int, x, y []float64) (*Result, error) {
	if err := checkLengths(len(x), len(y), len(ind)); err != nil {
		return nil, err
	}
	codes, err := censor.FromInts(ind)
	if err != nil {
		return nil, err
	}
	return BHK(x, y, codes)
}

// BHKSample computes the statistic for a validated sample set.
func BHKSample(s *sample.Set) (*Result, error) {
	return New(nil).ComputeSample(s)
}

// Compute runs the estimator on paired values and their censoring codes.
func (e *Estimator) Compute(x, y []float64, codes []censor.Code) (*Result, error) {
	return e.ComputeContext(context.Background(), x, y, codes)
}

// ComputeSample validates s and runs the estimator on it.
func (e *Estimator) ComputeSample(s *sample.Set) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return e.Compute(s.X, s.Y, s.Codes)
}

// ComputeContext is Compute with cancellation between blocks of work.
func (e *Estimator) ComputeContext(ctx context.Context, x, y []float64, codes []censor.Code) (*Result, error) {
	n := len(x)
	if err := checkLengths(n, len(y), len(codes)); err != nil {
		return nil, err
	}
	if n < MinObservations {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientSampleSize, n)
	}
	for i, c := range codes {
		if !c.Valid() {
			return nil, fmt.Errorf("index %d: %w: %d", i, censor.ErrInvalidCode, int8(c))
		}
	}

	workers := e.workers(n)
	s, err := accumulateParallel(ctx, x, y, codes, workers)
	if err != nil {
		return nil, err
	}

	res, err := s.result(n)
	if err != nil {
		return nil, err
	}

	alpha := e.config.Alpha
	if alpha <= 0 {
		alpha = DefaultConfig().Alpha
	}
	res.IsCorrelated = res.Prob < alpha

	if e.config.Logger != nil {
		e.config.Logger.Debug("computed censored kendall tau",
			"n", n,
			"workers", workers,
			"tau", res.Tau,
			"z", res.Z,
			"prob", res.Prob)
	}

	return res, nil
}

func (e *Estimator) workers(n int) int {
	w := e.config.Workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	return w
}

func checkLengths(nx, ny, nc int) error {
	if nx != ny || nx != nc {
		return fmt.Errorf("%w: len(x)=%d len(y)=%d len(codes)=%d", ErrLengthMismatch, nx, ny, nc)
	}
	return nil
}

// sums are the global accumulators of the estimator. Scores are in
// {-1, 0, 1}, so every sum is an exact integer.
type sums struct {
	sis   int64 // sum of iaa[j]*ibb[j]
	asum  int64 // sum of iaa[j]^2
	bsum  int64 // sum of ibb[j]^2
	aasum int64 // sum over i of (sum_j iaa[j])^2
	bbsum int64 // sum over i of (sum_j ibb[j])^2
}

func (s *sums) add(o sums) {
	s.sis += o.sis
	s.asum += o.asum
	s.bsum += o.bsum
	s.aasum += o.aasum
	s.bbsum += o.bbsum
}

// accumulate adds the contributions of reference indices [lo, hi).
//
// The cross term sum_{j,k} iaa[j]*iaa[k] over nonzero pairs equals the
// squared row sum, which keeps each index O(N).
func accumulate(lo, hi int, x, y []float64, codes []censor.Code) sums {
	var s sums
	iaa := make([]int8, len(x))
	ibb := make([]int8, len(y))

	for i := lo; i < hi; i++ {
		CoeffInto(iaa, i, x, codes, XRole)
		CoeffInto(ibb, i, y, codes, YRole)

		var rowA, rowB int64
		for j := range iaa {
			a, b := int64(iaa[j]), int64(ibb[j])
			s.sis += a * b
			s.asum += a * a
			s.bsum += b * b
			rowA += a
			rowB += b
		}
		s.aasum += rowA * rowA
		s.bbsum += rowB * rowB
	}

	return s
}

// accumulateParallel splits the reference indices into contiguous blocks
// and reduces the per-block sums.
func accumulateParallel(ctx context.Context, x, y []float64, codes []censor.Code, workers int) (sums, error) {
	n := len(x)
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return sums{}, err
		}
		return accumulate(0, n, x, y, codes), nil
	}

	blocks := workers * 4
	if blocks > n {
		blocks = n
	}
	size := (n + blocks - 1) / blocks
	partial := make([]sums, blocks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for b := 0; b < blocks; b++ {
		b := b
		lo := b * size
		hi := min(lo+size, n)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[b] = accumulate(lo, hi, x, y, codes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sums{}, err
	}

	var total sums
	for _, p := range partial {
		total.add(p)
	}
	return total, nil
}

// result derives tau, variance, z and the two-sided probability.
func (s sums) result(n int) (*Result, error) {
	nf := float64(n)
	d1 := nf * (nf - 1)
	d2 := d1 * (nf - 2)

	alp := 2 * float64(s.asum) * float64(s.bsum) / d1
	if alp == 0 {
		return nil, fmt.Errorf("%w: no comparable pairs in x or y", ErrDegenerateCorrelation)
	}
	gam := 4 * float64(s.aasum-s.asum) * float64(s.bbsum-s.bsum) / d2
	variance := alp + gam
	if !(variance > 0) {
		return nil, fmt.Errorf("%w: variance %g", ErrDegenerateCorrelation, variance)
	}

	sigma := math.Sqrt(variance)
	z := float64(s.sis) / sigma

	return &Result{
		Tau:         2 * float64(s.sis) / alp,
		Z:           z,
		Prob:        2 * distuv.UnitNormal.CDF(-math.Abs(z)),
		Variance:    variance,
		Sigma:       sigma,
		Concordance: s.sis,
		N:           n,
	}, nil
}
