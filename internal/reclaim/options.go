package reclaim

import (
	"errors"
	"strings"
	"time"
)

// DefaultTarget is the directory name searched for when none is given.
const DefaultTarget = "node_modules"

// MatchMode selects how a directory is compared against the target name.
type MatchMode int

const (
	// MatchPath matches when the directory's path below the scan root contains the
	// target as a substring.
	MatchPath MatchMode = iota
	// MatchName matches when the directory's base name equals the target.
	MatchName
)

// String returns the flag spelling of the mode.
func (m MatchMode) String() string {
	switch m {
	case MatchName:
		return "name"
	default:
		return "path"
	}
}

// Policy decides whether the walk continues below a matched directory.
type Policy int

const (
	// StopAtMatch skips the contents of a matched directory.
	StopAtMatch Policy = iota
	// MatchAll keeps descending into matched directories and records nested matches.
	MatchAll
)

// String returns a readable name of the policy.
func (p Policy) String() string {
	if p == MatchAll {
		return "match-all"
	}

	return "stop-at-match"
}

// ScanOptions configures a Scanner.
type ScanOptions struct {
	// Target is the name searched for.
	Target string
	// Match selects substring-of-path or exact-name matching.
	Match MatchMode
	// Policy selects stop-at-match or match-all traversal.
	Policy Policy
	// Parallel selects the fastwalk based walker. Requires the OS filesystem.
	Parallel bool
}

// Validate reports whether the options can drive a scan.
func (o ScanOptions) Validate() error {
	if strings.TrimSpace(o.Target) == "" {
		return errors.New("target name cannot be empty")
	}

	return nil
}

// matches reports whether a directory satisfies the options. rel is the
// directory's path relative to the scan root and name its base name.
func (o ScanOptions) matches(rel, name string) bool {
	if o.Match == MatchName {
		return name == o.Target
	}

	return strings.Contains(rel, o.Target)
}

// Options configures a Reclaimer.
type Options struct {
	// Jobs caps the number of concurrent deletions (<=0 = unbounded).
	Jobs int
	// CountFailed adds the measured size of failed deletions to the freed total.
	CountFailed bool
	// Progress is called periodically with the number of finished and total tasks.
	Progress func(done, total int)
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}
