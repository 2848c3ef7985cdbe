// Package reporter folds sizing outcomes into the final report.
//
// The report is a single pass over a pre-collected outcome set: a running
// total of successful byte lengths, a success counter, an error counter.
// No state machine, no retries — a failed file is terminal for that file
// and nothing else.
//
// The total accumulates in a uint64, giving a ceiling of 2^64-1 bytes
// (~16 EiB). Past the ceiling the total saturates and a warning is printed;
// it never silently wraps.
package reporter

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fatih/color"
	"github.com/snatvb/weight/internal/trace"
	"github.com/snatvb/weight/internal/types"
)

var (
	pathStyle  = color.New(color.FgBlue).SprintFunc()
	sizeStyle  = color.New(color.FgGreen).SprintFunc()
	totalStyle = color.New(color.FgMagenta, color.Bold).SprintFunc()
	okStyle    = color.New(color.FgGreen).SprintFunc()
	headStyle  = color.New(color.FgCyan, color.Bold).SprintFunc()
	badStyle   = color.New(color.FgRed, color.Bold).SprintFunc()
	warnStyle  = color.New(color.FgYellow).SprintFunc()
	tipStyle   = color.New(color.FgBlue, color.Bold).SprintFunc()
	hintStyle  = color.New(color.FgCyan).SprintFunc()
)

// Reporter renders the run's outcome to its output streams: report and
// verbose lines on out, per-file errors and warnings on errOut.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	tr      *trace.Log
}

// New creates a Reporter.
func New(out, errOut io.Writer, verbose bool, tr *trace.Log) *Reporter {
	return &Reporter{out: out, errOut: errOut, verbose: verbose, tr: tr}
}

// Announce prints the transition line between screening and sizing.
func (r *Reporter) Announce(files int) {
	fmt.Fprintf(r.out, "%s %s files, calculating sizes...\n",
		okStyle("Found"), totalStyle(files))
}

// Report folds all outcomes into a Summary and renders it.
//
// Successes add to the total (saturating at 2^64-1) and, in verbose mode,
// print one line each. Failures print to the error stream and are tallied;
// they never affect the total.
func (r *Reporter) Report(outcomes []types.Outcome) types.Summary {
	var sum types.Summary
	overflowed := false

	for _, o := range outcomes {
		switch {
		case o.Sized != nil:
			if sum.TotalBytes > math.MaxUint64-o.Sized.Size {
				sum.TotalBytes = math.MaxUint64
				overflowed = true
			} else {
				sum.TotalBytes += o.Sized.Size
			}
			sum.Files++
			if r.verbose {
				fmt.Fprintf(r.out, "%s: %s\n",
					pathStyle(o.Sized.Path), sizeStyle(FormatSize(o.Sized.Size)))
			}
		case o.Failed != nil:
			sum.Errors++
			fmt.Fprintf(r.errOut, "%s: %v\n", badStyle("Error"), o.Failed)
		}
	}

	if overflowed {
		fmt.Fprintf(r.errOut, "%s: total size exceeds %d bytes, reporting the ceiling\n",
			warnStyle("Warning"), uint64(math.MaxUint64))
	}

	fmt.Fprintf(r.out, "\n%s\n", headStyle("--- Summary ---"))
	fmt.Fprintf(r.out, "%s: %d\n", okStyle("Files processed"), sum.Files)
	if sum.Errors > 0 {
		fmt.Fprintf(r.out, "%s: %d\n", badStyle("Errors"), sum.Errors)
	}
	fmt.Fprintf(r.out, "%s: %s\n", okStyle("Total size"), totalStyle(FormatSize(sum.TotalBytes)))

	return sum
}

// ReportEmpty prints the no-match notice. This is a normal outcome, not an
// error: the exit status stays zero. With debug tracing active it also
// prints troubleshooting guidance for the usual causes.
func (r *Reporter) ReportEmpty() {
	fmt.Fprintln(r.out, warnStyle("No files found matching the patterns"))

	if !r.tr.Enabled() {
		fmt.Fprintf(r.out, "%s Use %s flag for debug information\n",
			tipStyle("Tip:"), hintStyle("--debug"))
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "unknown"
	}
	fmt.Fprintf(r.out, "\n%s\n", hintStyle("Debug suggestions:"))
	fmt.Fprintf(r.out, "• Current directory: %s\n", warnStyle(cwd))
	fmt.Fprintln(r.out, "• Try running from the directory where your files are located")
	fmt.Fprintln(r.out, "• Check if the file extensions are correct")
	fmt.Fprintf(r.out, "• Brace expansion is not supported: use %s instead of %s\n",
		okStyle("**/*.png **/*.jpg"), badStyle("**/*.{png,jpg}"))
	fmt.Fprintf(r.out, "• Try a simpler pattern like %s or %s\n",
		okStyle("*.png"), okStyle("./**/*.png"))
	fmt.Fprintf(r.out, "• Check directory permissions with: %s\n", hintStyle("ls -la"))
}
