package reclaim

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/reclaim/internal/logging"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 200 * time.Millisecond

// Reclaimer deletes target directories concurrently and reports the freed space.
type Reclaimer struct {
	fs  afero.Fs
	opt Options
}

// NewReclaimer creates a Reclaimer deleting from fs.
func NewReclaimer(fs afero.Fs, opt Options) *Reclaimer {
	return &Reclaimer{fs: fs, opt: opt}
}

// Measure returns the metadata size of path: the size attribute the filesystem
// reports for the entry itself, not the sum of everything below it.
func Measure(fs afero.Fs, path string) (uint64, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return 0, err
	}

	if info.Size() < 0 {
		return 0, nil
	}

	return uint64(info.Size()), nil
}

// startProgressReporter invokes hook(done, total) on each tick until ctx is done
// or the returned stop function is called. stop waits for the reporter to exit.
func startProgressReporter(ctx context.Context, done *atomic.Int64, total int, hook func(int, int), interval time.Duration) (stop func()) {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	ticker := time.NewTicker(interval)
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(int(done.Load()), total)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		<-exited
	}
}

// Reclaim deletes every target in its own goroutine and returns the aggregated
// report once all of them have finished. A failing target never stops the others.
//
// Deletions are not cancellable: ctx only carries the logger and stops the
// progress reporter. With opt.Jobs > 0 at most that many deletions run at once.
func (r *Reclaimer) Reclaim(ctx context.Context, targets []string) *Report {
	results := make([]Result, len(targets))

	var (
		group errgroup.Group
		done  atomic.Int64
	)

	if r.opt.Jobs > 0 {
		group.SetLimit(r.opt.Jobs)
	}

	stopProgress := func() {}
	if len(targets) > 0 {
		stopProgress = startProgressReporter(ctx, &done, len(targets), r.opt.Progress, r.opt.ProgressInterval)
	}

	for i, target := range targets {
		group.Go(func() error {
			// Each task owns results[i]; nothing else writes there.
			results[i] = r.reclaimOne(ctx, target)
			done.Add(1)

			return nil
		})
	}

	_ = group.Wait() //nolint:errcheck // tasks report through results, never through the group

	stopProgress()

	if r.opt.Progress != nil && len(targets) > 0 {
		r.opt.Progress(int(done.Load()), len(targets))
	}

	report := Fold(results, r.opt.CountFailed)

	logging.FromContext(ctx).Debug().
		Int("targets", len(targets)).
		Int("deleted", report.Deleted).
		Int("failed", len(report.Failures)).
		Str("freed", humanize.IBytes(report.TotalBytesFreed)).
		Msg("reclaim finished")

	return report
}

// reclaimOne measures and removes a single target.
func (r *Reclaimer) reclaimOne(ctx context.Context, path string) Result {
	log := logging.FromContext(ctx).With().Str("path", path).Logger()

	size, err := Measure(r.fs, path)
	if err != nil {
		log.Warn().Err(err).Msg("size measurement failed, not deleting")

		return Result{Path: path, Err: &MetadataError{Path: path, Err: err}}
	}

	if err := r.fs.RemoveAll(path); err != nil {
		log.Warn().Err(err).Msg("removal failed")

		return Result{Path: path, Size: size, Err: &DeletionError{Path: path, Err: err}}
	}

	log.Debug().Str("size", humanize.IBytes(size)).Msg("removed")

	return Result{Path: path, Size: size}
}
