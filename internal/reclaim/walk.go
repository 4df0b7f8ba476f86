package reclaim

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/spf13/afero"

	"github.com/idelchi/reclaim/internal/logging"
)

// ErrParallelNeedsOsFs is returned when a parallel scan is requested on a non-OS filesystem.
var ErrParallelNeedsOsFs = errors.New("parallel scan requires the OS filesystem")

// collector gathers matches from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu      sync.Mutex
	targets []string
}

func (c *collector) add(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.targets = append(c.targets, path)
}

// sorted returns the collected targets in lexical order, since fastwalk yields
// entries in no particular order.
func (c *collector) sorted() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.targets))
	copy(out, c.targets)
	sort.Strings(out)

	return out
}

// scanParallel walks root with fastwalk. The matching and failure rules are the
// same as for the sequential walk; only the order of discovery differs.
//
//nolint:varnamelen // d is standard for DirEntry
func (s *Scanner) scanParallel(ctx context.Context, root string) ([]string, error) {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return nil, ErrParallelNeedsOsFs
	}

	log := logging.FromContext(ctx)
	found := &collector{targets: make([]string, 0)}

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("error accessing path")

			return &ScanError{Path: path, Err: err}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == root || !d.IsDir() {
			return nil
		}

		if !s.opt.matches(relative(root, path), d.Name()) {
			return nil
		}

		log.Debug().Str("path", path).Msg("found target")
		found.add(path)

		if s.opt.Policy == StopAtMatch {
			return filepath.SkipDir
		}

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return found.sorted(), nil
}
