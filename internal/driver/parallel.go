package driver

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CollectSourceFiles expands files and directories into the sorted list of
// source files a run will touch. The UI uses it to seed its file table
// before FormatPathsParallel starts emitting events.
func CollectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	return collectSourceFiles(ctx, paths)
}

// FormatPathsParallel formats files concurrently with at most jobs workers
// (GOMAXPROCS when jobs <= 0). Results keep the order of files. The events
// channel, when non-nil, receives per-file status updates; the caller owns
// the channel and closes it after this returns.
func FormatPathsParallel(ctx context.Context, files []string, opts FormatOptions, jobs int, events chan<- Event) ([]FormatResult, error) {
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(events, Event{File: path, Status: StatusWorking})
			res := formatOne(path, opts)
			results[i] = res

			status := StatusDone
			if res.Err != nil {
				status = StatusError
			}
			emit(events, Event{File: path, Status: status, Changed: res.Changed})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
