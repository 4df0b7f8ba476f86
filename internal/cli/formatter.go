package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/reclaim/internal/reclaim"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// ListEntry is a single matched directory in list mode.
type ListEntry struct {
	// Path is the matched directory.
	Path string `json:"path"`
	// Size is the measured size in bytes.
	Size uint64 `json:"size"`
	// RunningTotal is the sum of sizes up to and including this entry.
	RunningTotal uint64 `json:"running_total"`
	// Error is set when the size could not be measured.
	Error string `json:"error,omitempty"`
}

// Listing is the result of list mode.
type Listing struct {
	// Targets are the matched directories in scan order.
	Targets []ListEntry `json:"targets"`
	// TotalBytes is the sum of all sizes.
	TotalBytes uint64 `json:"total_bytes"`
}

// PrintJSON outputs v in indented JSON format.
func PrintJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// printer renders human-readable output.
type printer struct {
	w       io.Writer
	json    bool
	palette palette
}

func newPrinter(w io.Writer, options Options) printer {
	return printer{
		w:       w,
		json:    options.Output == "json",
		palette: newPalette(!options.NoColor && isTerminal(w)),
	}
}

// NothingFound reports an empty scan.
func (p printer) NothingFound(target, root string) error {
	_, err := fmt.Fprintf(p.w, "No %s directories found inside %s.\n", target, root)

	return err
}

// Targets lists the directories about to be deleted.
func (p printer) Targets(target string, targets []string) error {
	fmt.Fprintln(p.w, p.palette.header(fmt.Sprintf("Deleting the following %s directories:", target)))

	for _, path := range targets {
		if _, err := fmt.Fprintf(p.w, "- %s\n", path); err != nil {
			return err
		}
	}

	return nil
}

// Report outputs the aggregate result of a deletion run, followed by one
// warning per failed directory.
//
//nolint:forbidigo // This function prints output to the console.
func (p printer) Report(report *reclaim.Report) error {
	w := tabwriter.NewWriter(p.w, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nSummary:\t")
	fmt.Fprintf(w, "Deleted:\t%s directories\n", humanize.Comma(int64(report.Deleted)))
	fmt.Fprintf(w, "Freed:\t%s\n", reclaim.FormatSize(report.TotalBytesFreed))

	if len(report.Failures) > 0 {
		fmt.Fprintf(w, "Failed:\t%s directories\n", humanize.Comma(int64(len(report.Failures))))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(p.w)

	if len(report.Failures) == 0 {
		_, err := fmt.Fprintln(p.w, p.palette.success("Done."))

		return err
	}

	fmt.Fprintln(p.w, p.palette.warning("The following directories could not be removed:"))

	for _, failure := range report.Failures {
		if _, err := fmt.Fprintf(p.w, "%s %s: %s\n", p.palette.failure("!"), failure.Path, failure.Reason); err != nil {
			return err
		}
	}

	return nil
}

// List outputs every match with its size and a running total.
//
//nolint:forbidigo // This function prints output to the console.
func (p printer) List(target string, listing Listing) error {
	fmt.Fprintln(p.w, p.palette.header(fmt.Sprintf("Found the following %s directories:", target)))

	w := tabwriter.NewWriter(p.w, 0, 4, TabSpacing, ' ', 0)

	for _, entry := range listing.Targets {
		if entry.Error != "" {
			fmt.Fprintf(w, "- %s\t%s\t%s\n", entry.Path, "?", p.palette.failure(entry.Error))

			continue
		}

		fmt.Fprintf(w, "- %s\t%s\t(total %s)\n",
			entry.Path, reclaim.FormatSize(entry.Size), reclaim.FormatSize(entry.RunningTotal))
	}

	fmt.Fprintf(w, "\nTotal:\t%s in %s directories\t\n",
		reclaim.FormatSize(listing.TotalBytes), humanize.Comma(int64(len(listing.Targets))))

	return w.Flush()
}
