package decoder

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FileResult pairs a batch input path with its outcome.
type FileResult struct {
	Path   string
	Result DecodeResult
	Err    error
}

// DecodeBatch decodes every path concurrently over a bounded worker
// pool. Unlike the intra-file parameter tuner (tuner.go), each file
// here is an independent unit of work with its own cache lookup and
// its own possible fatal error, so golang.org/x/sync/errgroup's
// bounded-concurrency group fits — one file's error does not need to
// be suppressed the way a single tuner candidate's does, it is simply
// attached to that file's FileResult without cancelling the rest.
func (d *Decoder) DecodeBatch(ctx context.Context, paths []string, workers int) []FileResult {
	if workers <= 0 {
		workers = d.cfg.TunerWorkers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i] = FileResult{Path: path, Err: ctx.Err()}
				return nil
			default:
			}
			result, err := d.DecodeFile(path)
			results[i] = FileResult{Path: path, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
