package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/smartmd/internal/logging"
	"github.com/yaklabco/smartmd/pkg/config"
	"github.com/yaklabco/smartmd/pkg/core"
	"github.com/yaklabco/smartmd/pkg/fsutil"
)

// Runner processes files through a shared Core. The Core's ruler is
// read-only during a run; each file gets its own pipeline state, and
// the options object is shared read-only across workers.
type Runner struct {
	Core    *core.Core
	Options *config.Options
}

// New creates a Runner around the given core and shared options.
func New(c *core.Core, opts *config.Options) *Runner {
	return &Runner{Core: c, Options: opts}
}

// Run processes opts.Paths concurrently and returns outcomes in input
// order. Per-file failures are recorded on the outcome; Run itself
// fails only on cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{Files: make([]FileOutcome, 0, len(opts.Paths))}
	if len(opts.Paths) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(opts.Paths) {
		jobs = len(opts.Paths)
	}

	workCh := make(chan work)
	outCh := make(chan work)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Write)
		}()
	}

	go func() {
		defer close(workCh)
		for i, path := range opts.Paths {
			select {
			case <-ctx.Done():
				return
			case workCh <- work{index: i, path: path}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; index back into input order, so
	// duplicate paths keep one outcome slot each.
	outcomes := make([]*FileOutcome, len(opts.Paths))
	for w := range outCh {
		outcome := w.outcome
		outcomes[w.index] = &outcome
	}

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// work pairs a path with its position in the input so results can be
// reassembled in input order even when paths repeat.
type work struct {
	index   int
	path    string
	outcome FileOutcome
}

func (r *Runner) worker(ctx context.Context, workCh <-chan work, outCh chan<- work, write bool) {
	for w := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}
		w.outcome = r.processFile(ctx, w.path, write)
		outCh <- w
	}
}

func (r *Runner) processFile(ctx context.Context, path string, write bool) FileOutcome {
	logger := logging.FromContext(ctx)
	outcome := FileOutcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Err = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	state, err := r.Core.Process(string(data), r.Options)
	if err != nil {
		outcome.Err = fmt.Errorf("process %s: %w", path, err)
		return outcome
	}

	outcome.Output = core.RenderText(state.Tokens)
	outcome.Changed = outcome.Output != string(data)

	if write && outcome.Changed {
		written, err := fsutil.WriteAtomicIfChanged(path, []byte(outcome.Output), 0)
		if err != nil {
			outcome.Err = fmt.Errorf("write %s: %w", path, err)
			return outcome
		}
		outcome.Written = written
	}

	logger.Debug("processed file",
		logging.FieldPath, path,
		logging.FieldWrite, outcome.Written,
	)
	return outcome
}
