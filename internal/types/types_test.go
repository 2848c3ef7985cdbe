package types

import (
	"errors"
	"strings"
	"testing"
)

// TestProcessingErrorMessage tests the error message names the path and cause.
func TestProcessingErrorMessage(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ProcessingError{Path: "/data/locked.bin", Err: cause}

	if !strings.Contains(err.Error(), "/data/locked.bin") {
		t.Errorf("message missing path: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("message missing cause: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through Unwrap")
	}
}

// TestSemaphoreBasic tests basic semaphore acquire/release.
func TestSemaphoreBasic(t *testing.T) {
	sem := NewSemaphore(2)

	// Should be able to acquire twice without blocking
	sem.Acquire()
	sem.Acquire()

	// Release one
	sem.Release()

	// Should be able to acquire again
	sem.Acquire()

	// Clean up
	sem.Release()
	sem.Release()
}
