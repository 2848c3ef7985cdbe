// Package screener classifies candidate paths, keeping only regular files.
//
// # Overview
//
// The screener is the narrowing stage between pattern expansion and metadata
// collection. Every candidate gets an explicit verdict — file, or skipped
// with a reason — rather than a nullable result, so debug logging stays
// uniform and dropped candidates are never ambiguous.
//
// Symlinks are resolved before classification: a symlink to a regular file
// is kept, a symlink to a directory (or a dangling one) is skipped. A
// non-file candidate is not an error; it is silently dropped unless debug
// tracing is active.
//
// The verdict is a point-in-time statement. A file can be deleted between
// screening and the sizer's metadata read; that race is accepted and shows
// up as a per-file error in the final tally, not as a screener defect.
//
// # Concurrency Model
//
// A fixed worker pool consumes candidate indices and writes each decision
// to its own slot in a pre-allocated slice. Workers never share a write
// target, so no locking is needed and the output preserves discovery order.
package screener

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/snatvb/weight/internal/progress"
	"github.com/snatvb/weight/internal/trace"
	"github.com/snatvb/weight/internal/types"
)

// Verdict is the classification of one candidate path.
type Verdict int

const (
	VerdictFile    Verdict = iota // Regular file (after symlink resolution)
	VerdictSkipped                // Anything else: directory, special file, missing
)

// Decision pairs a candidate with its verdict. Reason is set only for
// skipped candidates.
type Decision struct {
	Candidate types.Candidate
	Verdict   Verdict
	Reason    string
}

// Screener classifies candidates into regular files and skipped entries.
//
// The screener is designed for single-use: create with New(), call Run() once.
type Screener struct {
	// Config (immutable, set by New)
	candidates []types.Candidate // Candidates to classify
	workers    int               // Worker pool size
	showBar    bool              // Whether to display progress
	tr         *trace.Log        // Debug diagnostics
}

// New creates a Screener for the given candidates.
func New(candidates []types.Candidate, workers int, showBar bool, tr *trace.Log) *Screener {
	return &Screener{
		candidates: candidates,
		workers:    workers,
		showBar:    showBar,
		tr:         tr,
	}
}

// stats tracks screening progress.
type stats struct {
	total     int
	kept      atomic.Int64
	startTime time.Time
}

func (s *stats) String() string {
	return fmt.Sprintf("Screened %s candidates, kept %s files in %.1fs",
		humanize.Comma(int64(s.total)),
		humanize.Comma(s.kept.Load()),
		time.Since(s.startTime).Seconds())
}

// Run classifies all candidates and returns the kept files in discovery order.
func (s *Screener) Run() []types.Candidate {
	bar := progress.New(s.showBar, int64(len(s.candidates)))
	st := &stats{total: len(s.candidates), startTime: time.Now()}
	bar.Describe(st)

	// Disjoint indexed writes: worker i owns decisions[j] for the indices
	// it consumes, so no synchronization beyond the job channel is needed.
	decisions := make([]Decision, len(s.candidates))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				decisions[i] = classify(s.candidates[i])
				if decisions[i].Verdict == VerdictFile {
					st.kept.Add(1)
				}
				bar.Add(1)
			}
		}()
	}
	for i := range s.candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	bar.Finish(st)

	files := make([]types.Candidate, 0, st.kept.Load())
	for _, d := range decisions {
		if d.Verdict == VerdictFile {
			s.tr.Printf("    ✓ %s (added)", d.Candidate.Path)
			files = append(files, d.Candidate)
		} else {
			s.tr.Printf("    ✗ %s (skipped: %s)", d.Candidate.Path, d.Reason)
		}
	}
	return files
}

// classify stats one candidate and decides its verdict.
// os.Stat follows symlinks, so the verdict describes the link target.
func classify(c types.Candidate) Decision {
	info, err := os.Stat(c.Path)
	switch {
	case err != nil:
		return Decision{Candidate: c, Verdict: VerdictSkipped, Reason: reason(err)}
	case info.IsDir():
		return Decision{Candidate: c, Verdict: VerdictSkipped, Reason: "directory"}
	case !info.Mode().IsRegular():
		return Decision{Candidate: c, Verdict: VerdictSkipped, Reason: "not a regular file"}
	default:
		return Decision{Candidate: c, Verdict: VerdictFile}
	}
}

// reason shortens stat errors for debug output.
func reason(err error) string {
	if os.IsNotExist(err) {
		return "does not exist"
	}
	return err.Error()
}
