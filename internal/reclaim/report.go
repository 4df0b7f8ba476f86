package reclaim

// Result is the outcome of reclaiming a single target.
type Result struct {
	// Path is the target directory.
	Path string
	// Size is the metadata size measured before deletion (0 if measuring failed).
	Size uint64
	// Err is nil on success.
	Err error
}

// OK reports whether the target was removed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Failure is a target that could not be reclaimed.
type Failure struct {
	// Path is the target directory.
	Path string `json:"path"`
	// Reason describes why the target was not removed.
	Reason string `json:"reason"`
	// Size is the measured size of the target.
	Size uint64 `json:"size"`
}

// Report summarizes a reclaim run.
type Report struct {
	// TotalBytesFreed is the summed size of removed targets.
	TotalBytesFreed uint64 `json:"total_bytes_freed"`
	// Deleted is the number of removed targets.
	Deleted int `json:"deleted"`
	// Failures lists the targets that were not removed.
	Failures []Failure `json:"failures"`
}

// Fold combines results into a Report. The result order does not affect the
// total; failures keep the order they appear in results.
//
// With countFailed the sizes of failed targets are added to the total as well.
func Fold(results []Result, countFailed bool) *Report {
	report := &Report{Failures: make([]Failure, 0)}

	for _, res := range results {
		if !res.OK() {
			report.Failures = append(report.Failures, Failure{
				Path:   res.Path,
				Reason: res.Err.Error(),
				Size:   res.Size,
			})

			if countFailed {
				report.TotalBytesFreed += res.Size
			}

			continue
		}

		report.Deleted++
		report.TotalBytesFreed += res.Size
	}

	return report
}
