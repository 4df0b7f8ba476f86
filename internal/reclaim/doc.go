// Package reclaim finds directories matching a target name and removes them.
//
// A Scanner walks a directory tree depth-first and collects every directory
// whose path matches the target, without descending into matches unless the
// match-all policy is selected. A Reclaimer then deletes each target in its
// own goroutine, measuring the directory's metadata size right before
// removal, and folds the per-target results into a single Report once every
// deletion has finished.
package reclaim
