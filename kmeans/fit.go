// Package kmeans - Fit: the multi-restart front door of the package.
//
// Fit validates once, then runs NumRestarts independent Lloyd restarts and
// keeps the strictly best one. Restarts are scheduling-independent: every
// restart derives its own RNG from (Seed, restart index), results land in a
// slice slot owned by the restart, and selection scans that slice in index
// order - running with Parallel=8 returns the same model as Parallel=1.
package kmeans

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tscluster/series"
)

// Fit clusters ds into k groups and returns the best model across restarts.
//
// Contract:
//   - Selection: strictly lowest inertia wins; equal inertia keeps the
//     lowest restart index.
//   - Isolation: a failing restart is excluded from selection without
//     affecting siblings; if every restart fails, Fit returns
//     ErrAllRestartsFailed wrapping the first (by restart index) cause.
//   - Cancellation: if Options.Ctx ends before all restarts finish, Fit
//     discards partial work and returns the context error, so the model
//     never silently reflects fewer restarts than configured.
//   - ds is never mutated; the model owns deep copies of its centers.
//
// Complexity: O(NumRestarts · iterations · n·k · distance).
func Fit(ds []series.Series, k int, opts Options) (*Model, error) {
	cfg, err := validateFit(ds, k, opts)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, cfg.opts.NumRestarts)
	errs := make([]error, cfg.opts.NumRestarts)

	if cfg.opts.Parallel <= 1 {
		for r := range results {
			results[r], errs[r] = runLloyd(ds, k, cfg, r)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(cfg.opts.Parallel)
		for r := range results {
			r := r
			g.Go(func() error {
				// Errors stay in the restart's own slot; a plain Group keeps
				// one failed restart from cancelling its siblings.
				results[r], errs[r] = runLloyd(ds, k, cfg, r)

				return nil
			})
		}
		_ = g.Wait()
	}

	if err = cfg.opts.Ctx.Err(); err != nil {
		return nil, err
	}

	best := bestResult(results)
	if best == nil {
		return nil, fmt.Errorf("%w: %w", ErrAllRestartsFailed, firstError(errs))
	}

	return &Model{
		Result:   *best,
		metric:   cfg.metric,
		elastic:  cfg.aligner != nil,
		channels: cfg.channels,
		samples:  cfg.samples,
	}, nil
}

// bestResult selects the winner by strictly lowest inertia, scanning in
// restart order so equal inertia resolves to the earliest restart. Nil
// entries (failed restarts) are skipped; all-nil yields nil.
func bestResult(results []*Result) *Result {
	var best *Result
	for _, r := range results {
		if r == nil {
			continue
		}
		if best == nil || r.Inertia < best.Inertia {
			best = r
		}
	}

	return best
}

// firstError returns the first non-nil error in restart order.
func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
