package response

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-quake/dsp/unit"
)

// Request carries one sweep across the offload boundary. Samples may be in
// any supported unit; the runner normalizes to m/s² before computing.
type Request struct {
	Samples    []float64
	SampleRate float64
	Unit       unit.Unit
	Config     Config
}

// Future is the pending outcome of a submitted sweep.
type Future struct {
	done   chan struct{}
	result Result
	err    error
}

// Wait blocks until the sweep finishes or ctx is done. A sweep superseded
// by a newer Submit yields context.Canceled, never a partial result.
func (f *Future) Wait(ctx context.Context) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-f.done:
		return f.result, f.err
	}
}

// Done returns a channel that is closed once the sweep has finished,
// failed, or been discarded.
func (f *Future) Done() <-chan struct{} { return f.done }

// Runner offloads response sweeps so an interactive caller stays
// responsive. At most one sweep is live: submitting a new request first
// cancels and discards any in-flight one. The offloaded and synchronous
// paths run the same pure computation, so identical inputs produce
// identical outputs either way.
type Runner struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	logger *zap.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for retry diagnostics. The default discards
// everything.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Submit starts the sweep on its own goroutine and returns immediately.
// Any previously submitted sweep is canceled and its future reports
// context.Canceled. A failed sweep is retried exactly once synchronously
// before the failure becomes terminal for the returned future.
func (r *Runner) Submit(req Request) *Future {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.mu.Unlock()

	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		samples := unit.ToSI(req.Samples, req.Unit)

		result, err := CalculateContext(ctx, samples, req.SampleRate, req.Config)
		if err != nil && ctx.Err() == nil {
			r.logger.Warn("offloaded response sweep failed, retrying synchronously",
				zap.Error(err),
				zap.Int("samples", len(req.Samples)),
				zap.Float64("sample_rate", req.SampleRate))
			result, err = Calculate(samples, req.SampleRate, req.Config)
		}

		if cerr := ctx.Err(); cerr != nil {
			f.err = cerr
			return
		}

		f.result, f.err = result, err
	}()

	return f
}

// Cancel aborts any in-flight sweep. Its future reports the cancellation.
func (r *Runner) Cancel() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()
}
