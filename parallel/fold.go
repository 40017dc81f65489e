package parallel

import (
	"context"
	"fmt"
	"runtime"

	"github.com/npillmayer/summa"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// DefaultSegmentSize is the number of integers folded by a single task,
// if not configured otherwise.
const DefaultSegmentSize = 4096

type config struct {
	workers     int
	segmentSize uint64
}

// Option configures a parallel fold.
type Option func(*config)

// WithWorkers limits the number of segments folded at the same time.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(cfg *config) {
		cfg.workers = n
	}
}

// WithSegmentSize sets the maximum number of integers per segment.
func WithSegmentSize(n uint64) Option {
	return func(cfg *config) {
		cfg.segmentSize = n
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := config{
		workers:     runtime.GOMAXPROCS(0),
		segmentSize: DefaultSegmentSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		return cfg, fmt.Errorf("%w: workers must be positive, is %d", ErrInvalidOption, cfg.workers)
	}
	if cfg.segmentSize == 0 {
		return cfg, fmt.Errorf("%w: segment size must be positive", ErrInvalidOption)
	}
	return cfg, nil
}

// Fold accumulates f(i) for every i of an inclusive range [a, b], using
// monoid m. The result is identical to summa.Fold(f, m)(a, b).
//
// Cancellation of ctx is observed between segments. Fold then returns the
// context's error. If f panics, the panic is recovered and returned as an
// error wrapping ErrFuncPanicked.
func Fold[N constraints.Integer, V any](ctx context.Context, f func(N) V, m summa.Monoid[V],
	a, b N, opts ...Option) (V, error) {
	//
	var zero V
	if f == nil || m == nil {
		return zero, fmt.Errorf("%w: summand and monoid are required", summa.ErrIllegalArguments)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	segments, err := summa.Closed(a, b).Split(cfg.segmentSize)
	if err != nil {
		return zero, err
	}
	if len(segments) == 0 {
		return m.Zero(), nil
	}
	tracer().Debugf("parallel fold over [%d, %d]: %d segments, %d workers",
		a, b, len(segments), cfg.workers)
	fold := summa.Fold(f, m)
	partials := make([]V, len(segments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, seg := range segments {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := foldSegment(fold, seg)
			if err != nil {
				return err
			}
			partials[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("parallel fold over [%d, %d] failed: %v", a, b, err)
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	acc := m.Zero()
	for _, p := range partials {
		acc = m.Add(acc, p)
	}
	return acc, nil
}

func foldSegment[N constraints.Integer, V any](fold func(a, b N) V, seg summa.Range[N]) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: segment %v: %v", ErrFuncPanicked, seg, r)
		}
	}()
	return fold(seg.From, seg.To), nil
}

// Sum calculates f(a) + f(a+1) + … + f(b) concurrently. It returns 0 for
// a > b.
func Sum[N constraints.Integer](ctx context.Context, f summa.Func[N], a, b N, opts ...Option) (N, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: summand is required", summa.ErrIllegalArguments)
	}
	return Fold[N, N](ctx, f, summa.Additive[N]{}, a, b, opts...)
}
