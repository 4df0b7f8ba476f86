package reclaim_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// makeTree creates the given paths below root. Paths ending in "/" are
// directories, everything else is a file with content.
func makeTree(t *testing.T, fs afero.Fs, root string, paths ...string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(root, 0o755))

	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(p, "/")))

		if strings.HasSuffix(p, "/") {
			require.NoError(t, fs.MkdirAll(full, 0o755))

			continue
		}

		require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, afero.WriteFile(fs, full, []byte("content of "+p), 0o644))
	}
}

// exists reports whether path is present on fs.
func exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()

	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)

	return ok
}

// faultyFs wraps a filesystem and fails selected calls. It also records calls
// so tests can assert which operations happened.
type faultyFs struct {
	afero.Fs

	openErr   map[string]error
	statErr   map[string]error
	removeErr map[string]error

	// removeDelay slows RemoveAll down so overlapping calls can be observed.
	removeDelay time.Duration

	calls    atomic.Int64
	inFlight atomic.Int64
	maxSeen  atomic.Int64

	mu      sync.Mutex
	removed []string
}

func newFaultyFs(base afero.Fs) *faultyFs {
	return &faultyFs{
		Fs:        base,
		openErr:   map[string]error{},
		statErr:   map[string]error{},
		removeErr: map[string]error{},
	}
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	f.calls.Add(1)

	if err, ok := f.openErr[name]; ok {
		return nil, err
	}

	return f.Fs.Open(name)
}

func (f *faultyFs) Stat(name string) (os.FileInfo, error) {
	f.calls.Add(1)

	if err, ok := f.statErr[name]; ok {
		return nil, err
	}

	return f.Fs.Stat(name)
}

func (f *faultyFs) RemoveAll(path string) error {
	f.calls.Add(1)

	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)

	for {
		seen := f.maxSeen.Load()
		if current <= seen || f.maxSeen.CompareAndSwap(seen, current) {
			break
		}
	}

	if f.removeDelay > 0 {
		time.Sleep(f.removeDelay)
	}

	f.mu.Lock()
	f.removed = append(f.removed, path)
	f.mu.Unlock()

	if err, ok := f.removeErr[path]; ok {
		return err
	}

	return f.Fs.RemoveAll(path)
}

func (f *faultyFs) removedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.removed...)
}
