package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/snatvb/weight/internal/expander"
	"github.com/snatvb/weight/internal/reporter"
	"github.com/snatvb/weight/internal/screener"
	"github.com/snatvb/weight/internal/sizer"
	"github.com/snatvb/weight/internal/trace"
	"github.com/spf13/cobra"
)

// weightOptions holds CLI flags.
type weightOptions struct {
	threads    int
	verbose    bool
	debug      bool
	noProgress bool
}

// newWeightCmd creates the root command.
func newWeightCmd() *cobra.Command {
	opts := &weightOptions{threads: runtime.NumCPU()}

	cmd := &cobra.Command{
		Use:   "weight [patterns...]",
		Short: "Calculate total size of files matching glob patterns",
		Long: `Calculates the aggregate byte size of all regular files matching one or
more shell-style glob patterns (*, **, ?, [...]).

Brace expansion ({a,b}) is not supported; supply separate patterns instead.
Per-file errors are reported but never fail the run: only an invalid pattern
or an invalid worker-pool size exits non-zero.`,
		Example: `  weight '**/*.png' '**/*.jpg' '**/*.dds'
  weight -v '*.png'
  weight --threads 4 '**/*.go'`,
		Version:      version + " (" + commit + ")",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runWeight(args, opts)
		},
	}

	// Bind flags to options
	cmd.Flags().IntVarP(&opts.threads, "threads", "t", opts.threads, "Number of parallel workers")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print one line per sized file")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "Print diagnostic trace")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Disable progress output")

	return cmd
}

// drainWarnings consumes enumeration warnings and writes them to stderr.
// Clears progress bar line before printing to avoid visual collision.
func drainWarnings(warnings <-chan error) {
	for err := range warnings {
		fmt.Fprintf(os.Stderr, "\r\033[KWarning: %v\n", err)
	}
}

// runWeight executes the pipeline: expand → screen → size → report.
// Each stage fully materializes its output before the next begins.
func runWeight(patterns []string, opts *weightOptions) error {
	if opts.threads < 1 {
		return fmt.Errorf("invalid --threads: must be at least 1, got %d", opts.threads)
	}
	if err := validatePatterns(patterns); err != nil {
		return err
	}

	tr := trace.New(opts.debug, os.Stdout)
	if err := printEnvironment(tr, patterns); err != nil {
		return err
	}

	showProgress := !opts.noProgress

	// Shared warning channel for non-fatal enumeration errors
	warnings := make(chan error, 100)
	go drainWarnings(warnings)
	defer close(warnings)

	rep := reporter.New(os.Stdout, os.Stderr, opts.verbose, tr)

	// Phase 1: expand patterns into candidate paths
	candidates := expander.New(patterns, opts.threads, showProgress, warnings, tr).Run()

	// Phase 2: keep only regular files
	files := screener.New(candidates, opts.threads, showProgress, tr).Run()
	if len(files) == 0 {
		rep.ReportEmpty()
		return nil
	}

	// Phase 3: read sizes
	rep.Announce(len(files))
	outcomes := sizer.New(files, opts.threads, showProgress).Run()

	// Phase 4: fold outcomes into the summary
	rep.Report(outcomes)
	return nil
}

// printEnvironment emits the debug preamble. An unreadable working
// directory is fatal in debug mode: nothing downstream could match anyway.
func printEnvironment(tr *trace.Log, patterns []string) error {
	if !tr.Enabled() {
		return nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "unable to get current dir"
	}
	tr.Labeled("Current directory", "%s", cwd)
	tr.Labeled("Patterns", "%q", patterns)
	if _, err := os.ReadDir("."); err != nil {
		return fmt.Errorf("cannot read current directory: %w", err)
	}
	tr.Printf("✓ current directory is readable")
	return nil
}
