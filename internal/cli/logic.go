package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/idelchi/reclaim/internal/logging"
	"github.com/idelchi/reclaim/internal/reclaim"
)

// filesystem is the filesystem the commands operate on. Tests may replace it.
//
//nolint:gochecknoglobals // Overridable for tests
var filesystem afero.Fs = afero.NewOsFs()

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// resolveRoot returns the absolute directory to scan, defaulting to the working directory.
func resolveRoot(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}

		return cwd, nil
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	return abs, nil
}

// prepare attaches the logger and scans the root. A scan error aborts the command.
func prepare(ctx context.Context, options Options, stderr io.Writer) (context.Context, string, []string, error) {
	ctx = logging.WithContext(ctx, logging.New(logging.Config{
		Debug:   options.Debug,
		Output:  stderr,
		NoColor: options.NoColor || !isTerminal(stderr),
	}))

	root, err := resolveRoot(options.Path)
	if err != nil {
		return ctx, "", nil, err
	}

	targets, err := reclaim.NewScanner(filesystem, options.ScanOptions()).Scan(ctx, root)
	if err != nil {
		return ctx, root, nil, fmt.Errorf("scanning %q: %w", root, err)
	}

	return ctx, root, targets, nil
}

func runDelete(ctx context.Context, options Options, stdout, stderr io.Writer) error {
	ctx, root, targets, err := prepare(ctx, options, stderr)
	if err != nil {
		return err
	}

	// Nested matches from --match-all go away with their ancestor.
	targets = reclaim.Outermost(targets)

	printer := newPrinter(stdout, options)

	if len(targets) == 0 {
		if printer.json {
			return PrintJSON(reclaim.Fold(nil, options.CountFailed), stdout)
		}

		return printer.NothingFound(options.Target, root)
	}

	if !printer.json {
		if err := printer.Targets(options.Target, targets); err != nil {
			return err
		}
	}

	enableProgress := !printer.json && !options.Debug && isTerminal(stderr)

	var progressHook func(done, total int)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(done, total int) {
			fmt.Fprintf(stderr, "\r\033[2KDeleting… %d/%d\r", done, total)
		}
	}

	report := reclaim.NewReclaimer(filesystem, reclaim.Options{
		Jobs:        options.Jobs,
		CountFailed: options.CountFailed,
		Progress:    progressHook,
	}).Reclaim(ctx, targets)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if printer.json {
		return PrintJSON(report, stdout)
	}

	return printer.Report(report)
}

func runList(ctx context.Context, options Options, stdout, stderr io.Writer) error {
	ctx, root, targets, err := prepare(ctx, options, stderr)
	if err != nil {
		return err
	}

	printer := newPrinter(stdout, options)

	if len(targets) == 0 && !printer.json {
		return printer.NothingFound(options.Target, root)
	}

	listing := Listing{Targets: make([]ListEntry, 0, len(targets))}

	for _, target := range targets {
		entry := ListEntry{Path: target}

		size, err := reclaim.Measure(filesystem, target)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("path", target).Msg("size measurement failed")
			entry.Error = err.Error()
		}

		entry.Size = size
		listing.TotalBytes += size
		entry.RunningTotal = listing.TotalBytes
		listing.Targets = append(listing.Targets, entry)
	}

	if printer.json {
		return PrintJSON(listing, stdout)
	}

	return printer.List(options.Target, listing)
}
