// Package sizer reads file metadata and produces one outcome per file.
//
// # Contract
//
// Every file handed to the sizer yields exactly one outcome: a SizedFile on
// success or a ProcessingError on failure — never both, never neither. A
// failed metadata read (file deleted since screening, permission revoked,
// I/O error) is terminal for that file only; the batch always runs to
// completion.
//
// # Concurrency Model
//
// A fixed worker pool consumes file indices and writes each outcome to its
// own slot in a pre-allocated slice. Workers never share a write target, so
// the reduction is conflict-free and the output preserves input order,
// keeping verbose report lines stable across runs.
package sizer

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/snatvb/weight/internal/progress"
	"github.com/snatvb/weight/internal/types"
)

// Sizer reads byte lengths for a batch of screened files.
//
// The sizer is designed for single-use: create with New(), call Run() once.
type Sizer struct {
	// Config (immutable, set by New)
	files   []types.Candidate // Screened regular files to size
	workers int               // Worker pool size
	showBar bool              // Whether to display progress
}

// New creates a Sizer for the given files.
func New(files []types.Candidate, workers int, showBar bool) *Sizer {
	return &Sizer{
		files:   files,
		workers: workers,
		showBar: showBar,
	}
}

// stats tracks sizing progress.
type stats struct {
	total      int
	sizedBytes atomic.Uint64
	errors     atomic.Int64
	startTime  time.Time
}

func (s *stats) String() string {
	return fmt.Sprintf("Sized %s across %s files in %.1fs",
		humanize.IBytes(s.sizedBytes.Load()),
		humanize.Comma(int64(s.total)-s.errors.Load()),
		time.Since(s.startTime).Seconds())
}

// Run reads metadata for every file and returns outcomes in input order.
func (s *Sizer) Run() []types.Outcome {
	bar := progress.New(s.showBar, int64(len(s.files)))
	st := &stats{total: len(s.files), startTime: time.Now()}
	bar.Describe(st)

	outcomes := make([]types.Outcome, len(s.files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = s.size(s.files[i], st)
				bar.Add(1)
			}
		}()
	}
	for i := range s.files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	bar.Finish(st)
	return outcomes
}

// size performs the single metadata read for one file.
//
// The file was a regular file at screening time, but that was then: this
// read is the authoritative one, and its failure is the one per-file error
// the run reports.
func (s *Sizer) size(f types.Candidate, st *stats) types.Outcome {
	info, err := os.Stat(f.Path)
	if err != nil {
		st.errors.Add(1)
		return types.Outcome{Failed: &types.ProcessingError{Path: f.Path, Err: err}}
	}
	size := uint64(info.Size())
	st.sizedBytes.Add(size)
	return types.Outcome{Sized: &types.SizedFile{Path: f.Path, Size: size}}
}
