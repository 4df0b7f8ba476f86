package reclaim

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/idelchi/reclaim/internal/logging"
)

// Scanner walks a directory tree and collects target directories.
type Scanner struct {
	fs  afero.Fs
	opt ScanOptions
}

// NewScanner creates a Scanner reading from fs.
func NewScanner(fs afero.Fs, opt ScanOptions) *Scanner {
	return &Scanner{fs: fs, opt: opt}
}

// frame is one directory level of the explicit traversal stack.
type frame struct {
	dir     string
	entries []os.FileInfo
	next    int
}

// Scan walks root depth-first and returns every matching directory below it.
// The root itself is never a candidate.
//
// Any directory that cannot be read aborts the scan with a *ScanError;
// no partial result is returned.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	if err := s.opt.Validate(); err != nil {
		return nil, err
	}

	if root == "" {
		root = "."
	}

	root = filepath.Clean(root)

	if info, err := s.fs.Stat(root); err != nil {
		return nil, &ScanError{Path: root, Err: err}
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", root)
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("root", root).
		Str("target", s.opt.Target).
		Stringer("match", s.opt.Match).
		Stringer("policy", s.opt.Policy).
		Bool("parallel", s.opt.Parallel).
		Msg("starting scan")

	if s.opt.Parallel {
		return s.scanParallel(ctx, root)
	}

	return s.scanSequential(ctx, root)
}

// scanSequential performs a pre-order walk with an explicit stack so deep trees
// cannot exhaust the goroutine stack. Results follow listing order level by level.
func (s *Scanner) scanSequential(ctx context.Context, root string) ([]string, error) {
	log := logging.FromContext(ctx)

	entries, err := s.readDir(root)
	if err != nil {
		return nil, err
	}

	targets := make([]string, 0)
	stack := []*frame{{dir: root, entries: entries}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]

			continue
		}

		entry := top.entries[top.next]
		top.next++

		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(top.dir, entry.Name())

		if s.opt.matches(relative(root, path), entry.Name()) {
			log.Debug().Str("path", path).Msg("found target")

			targets = append(targets, path)

			if s.opt.Policy == StopAtMatch {
				continue
			}
		}

		children, err := s.readDir(path)
		if err != nil {
			return nil, err
		}

		stack = append(stack, &frame{dir: path, entries: children})
	}

	return targets, nil
}

// relative returns path relative to root, so components of the root itself
// never take part in matching.
func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}

	return rel
}

// readDir lists dir in name order. Entries carry lstat information, so symlinks
// to directories are reported as symlinks and never followed.
func (s *Scanner) readDir(dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, &ScanError{Path: dir, Err: err}
	}

	return entries, nil
}
