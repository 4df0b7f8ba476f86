package reclaim

import "fmt"

// ScanError is returned when a directory cannot be read during a scan.
// Any ScanError aborts the whole scan.
type ScanError struct {
	// Path is the directory that could not be read.
	Path string
	// Err is the underlying I/O error.
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("reading directory %q: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// MetadataError is recorded when a target's size could not be read before deletion.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("measuring size of %q: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

// DeletionError is recorded when a target could not be removed.
type DeletionError struct {
	Path string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("removing %q: %v", e.Path, e.Err)
}

func (e *DeletionError) Unwrap() error {
	return e.Err
}
