// Package types provides shared types used across the weight codebase.
package types

import "fmt"

// Candidate is a filesystem path produced by expanding one glob pattern,
// before any classification. A candidate may denote a directory, a symlink,
// or an entry that no longer exists.
type Candidate struct {
	Path    string
	Pattern string // pattern that produced this candidate
}

// SizedFile is the successful outcome of reading one file's metadata.
type SizedFile struct {
	Path string
	Size uint64
}

// ProcessingError records a failed metadata read for one file.
type ProcessingError struct {
	Path string
	Err  error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("failed to read metadata for %s: %v", e.Path, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// Outcome is the result of sizing one file. Exactly one of Sized or Failed
// is non-nil: every file handed to the sizer produces one outcome, never
// both, never neither.
type Outcome struct {
	Sized  *SizedFile
	Failed *ProcessingError
}

// Summary aggregates all outcomes of a run. Files plus Errors always equals
// the number of files handed to the sizer. Computed once, never mutated.
type Summary struct {
	TotalBytes uint64
	Files      int
	Errors     int
}

// Semaphore implements a counting semaphore using a buffered channel.
// It limits concurrent access to a resource by blocking when the limit is reached.
type Semaphore chan struct{}

// NewSemaphore creates a semaphore that allows up to n concurrent acquisitions.
func NewSemaphore(n int) Semaphore { return make(chan struct{}, n) }

// Acquire blocks until a slot is available, then claims it.
func (s Semaphore) Acquire() { s <- struct{}{} }

// Release frees a slot, unblocking one waiting Acquire call.
func (s Semaphore) Release() { <-s }
