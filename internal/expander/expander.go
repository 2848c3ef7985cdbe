// Package expander expands glob patterns into candidate filesystem paths.
//
// # Concurrency Model
//
// Expansion is a fan-out/fan-in over directories:
//
//  1. WALKER GOROUTINES (fan-out)
//     - One goroutine per directory discovered under a pattern's base
//     - Concurrency limited by semaphore (walkerSem)
//     - Each walker: acquires semaphore → lists directory → emits matches →
//       releases semaphore → spawns child walkers for matching subtrees
//
//  2. COLLECTOR GOROUTINE (fan-in)
//     - Single goroutine that drains resultCh into a slice
//     - Runs until resultCh is closed
//
//  3. MAIN GOROUTINE (orchestrator)
//     - Spawns initial walkers (one entry point per pattern)
//     - Waits for all walkers (walkerWg.Wait), closes resultCh,
//       waits for the collector
//
// Patterns are expanded independently and candidates are not deduplicated
// across patterns: a path matched by two patterns appears twice, once per
// match. Directory symlinks are matched as entries but never descended into,
// which keeps the walk cycle-free.
//
// Directory read failures (permission denied, vanished subtree) are
// non-fatal: they are sent to the error channel as warnings and the subtree
// is omitted from the candidate set.
package expander

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/snatvb/weight/internal/progress"
	"github.com/snatvb/weight/internal/trace"
	"github.com/snatvb/weight/internal/types"
)

// Expander turns glob patterns into candidate paths using parallel
// directory traversal.
//
// The expander is designed for single-use: create with New(), call Run() once.
type Expander struct {
	// Config (immutable, set by New)
	patterns []string   // Glob patterns to expand (validated by the caller)
	workers  int        // Max concurrent directory reads
	showBar  bool       // Whether to display progress
	errCh    chan error // Non-fatal enumeration warnings
	tr       *trace.Log // Debug diagnostics

	// Runtime (initialized in Run)
	walkerWg  sync.WaitGroup       // Tracks in-flight walker goroutines
	walkerSem types.Semaphore      // Limits concurrent directory reads
	resultCh  chan types.Candidate // Fan-in channel: walkers → collector
	stats     *stats               // Atomic counters for progress tracking
	bar       *progress.Bar        // Progress display (thread-safe)
}

// New creates an Expander for the given patterns.
func New(patterns []string, workers int, showBar bool, errCh chan error, tr *trace.Log) *Expander {
	return &Expander{
		patterns: patterns,
		workers:  workers,
		showBar:  showBar,
		errCh:    errCh,
		tr:       tr,
	}
}

// stats tracks expansion progress using atomic counters for lock-free
// updates from any walker goroutine.
type stats struct {
	patterns   int
	candidates atomic.Int64 // Paths matched across all patterns
	walkedDirs atomic.Int64 // Directories listed
	startTime  time.Time
}

func (s *stats) String() string {
	return fmt.Sprintf("Expanded %d patterns into %s candidates (%s dirs walked) in %.1fs",
		s.patterns,
		humanize.Comma(s.candidates.Load()),
		humanize.Comma(s.walkedDirs.Load()),
		time.Since(s.startTime).Seconds())
}

// Run expands all patterns and returns the combined candidate set.
//
// Coordination sequence mirrors the walker/collector pattern:
//  1. Start collector goroutine (drains resultCh → results slice)
//  2. Spawn walkers, one entry point per pattern (fan-out begins)
//  3. walkerWg.Wait, close(resultCh), collector drains, return
func (e *Expander) Run() []types.Candidate {
	e.walkerSem = types.NewSemaphore(e.workers)
	e.bar = progress.New(e.showBar, -1)
	e.stats = &stats{patterns: len(e.patterns), startTime: time.Now()}
	e.bar.Describe(e.stats)
	e.resultCh = make(chan types.Candidate, 1000) // Buffer smooths producer/consumer rates

	var results []types.Candidate
	collectorWg := sync.WaitGroup{}

	collectorWg.Add(1)
	go func() {
		for c := range e.resultCh {
			results = append(results, c)
		}
		collectorWg.Done()
	}()

	matched := make([]atomic.Int64, len(e.patterns))
	for i, p := range e.patterns {
		e.expandPattern(p, &matched[i])
	}

	// Shutdown sequence: wait for producers, then signal consumer, then wait for consumer
	e.walkerWg.Wait()
	close(e.resultCh)
	collectorWg.Wait()

	e.bar.Finish(e.stats)
	for i, p := range e.patterns {
		e.tr.Printf("  pattern %q matched %d paths", p, matched[i].Load())
	}
	return results
}

// expandPattern spawns the walk for one pattern.
//
// A pattern with no metacharacters is a literal lookup: the path is a
// candidate iff it exists. Anything else is split into a meta-free base
// directory and a glob remainder, then walked from the base.
func (e *Expander) expandPattern(pattern string, matched *atomic.Int64) {
	e.tr.Labeled("Processing pattern", "%s", pattern)

	if !hasMeta(pattern) {
		e.walkerWg.Add(1)
		go func() {
			defer e.walkerWg.Done()
			e.walkerSem.Acquire()
			defer e.walkerSem.Release()
			if _, err := os.Lstat(pattern); err == nil {
				e.emit(filepath.Clean(pattern), pattern, matched)
			}
		}()
		return
	}

	base, glob := splitPattern(pattern)
	if _, err := os.Stat(base); err != nil {
		// Non-existent base is a normal zero-match expansion, not an error.
		e.tr.Printf("  base %q does not exist, pattern matches nothing", base)
		return
	}
	e.walkDirectory(base, ".", glob, pattern, matched)
}

// walkDirectory spawns a goroutine to process one directory and recursively
// spawn children whose subtrees can still produce matches.
//
// Semaphore pattern:
//   - walkerWg.Add(1) BEFORE goroutine spawn (prevents race with Wait)
//   - acquire semaphore at goroutine start (blocks if at concurrency limit)
//   - release semaphore AFTER listing but BEFORE spawning children
//
// rel is the '/'-separated path of dir relative to base ("." for base
// itself); glob matching always operates on rel, never on OS paths.
func (e *Expander) walkDirectory(base, rel, glob, pattern string, matched *atomic.Int64) {
	e.walkerWg.Add(1) // Increment BEFORE spawn to prevent race with Wait()
	go func() {
		defer e.walkerWg.Done()

		e.walkerSem.Acquire()
		defer e.walkerSem.Release()

		dir := filepath.Join(base, filepath.FromSlash(rel))
		entries, err := e.listDirectory(dir)
		if err != nil {
			e.sendWarning(fmt.Errorf("cannot read %s: %w", dir, err))
			return
		}
		e.stats.walkedDirs.Add(1)

		var subdirs []string
		for _, entry := range entries {
			entryRel := entry.Name()
			if rel != "." {
				entryRel = rel + "/" + entry.Name()
			}
			if doublestar.MatchUnvalidated(glob, entryRel) {
				e.emit(filepath.Join(base, filepath.FromSlash(entryRel)), pattern, matched)
			}
			// IsDir is false for symlinks to directories, so symlinked
			// subtrees are matched as entries but never walked.
			if entry.IsDir() && canDescend(glob, entryRel) {
				subdirs = append(subdirs, entryRel)
			}
		}
		e.bar.Describe(e.stats)

		// Recursive fan-out: spawn walker for each viable subdirectory
		for _, sub := range subdirs {
			e.walkDirectory(base, sub, glob, pattern, matched)
		}
	}()
}

// listDirectory reads a single directory in batches.
//
// Batched ReadDir (1000 entries per batch) bounds memory when listing
// directories with millions of entries. This is the only place directory
// I/O occurs, protected by walkerSem.
func (e *Expander) listDirectory(dirPath string) ([]os.DirEntry, error) {
	dir, err := os.Open(dirPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dir.Close() }()

	const batchSize = 1000
	var entries []os.DirEntry
	for {
		batch, err := dir.ReadDir(batchSize)
		if len(batch) == 0 {
			if err != nil && err != io.EOF {
				return entries, err
			}
			break
		}
		entries = append(entries, batch...)
	}
	return entries, nil
}

// emit sends one candidate to the collector and updates counters.
func (e *Expander) emit(path, pattern string, matched *atomic.Int64) {
	e.resultCh <- types.Candidate{Path: path, Pattern: pattern} // May block briefly if buffer full
	matched.Add(1)
	e.stats.candidates.Add(1)
	e.tr.Printf("  found path: %s", path)
}

// sendWarning sends a non-fatal enumeration warning if a channel is wired.
func (e *Expander) sendWarning(err error) {
	if e.errCh != nil {
		e.errCh <- err
	}
}
