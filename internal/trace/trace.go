// Package trace provides the --debug diagnostic printer.
//
// Trace output is for humans chasing "why did my pattern match nothing":
// working directory, per-pattern match counts, per-candidate verdicts.
// It goes to stdout alongside the report, matching the tool's historical
// behavior, and is entirely absent unless --debug is set.
package trace

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var label = color.New(color.FgBlue, color.Bold).SprintFunc()

// Log prints diagnostic lines when enabled and swallows them otherwise.
// The zero value is a disabled log.
type Log struct {
	w       io.Writer
	enabled bool
}

// New creates a Log writing to w. If enabled=false all methods are no-ops.
func New(enabled bool, w io.Writer) *Log {
	return &Log{w: w, enabled: enabled}
}

// Enabled reports whether the log emits anything.
func (l *Log) Enabled() bool { return l != nil && l.enabled }

// Printf writes one formatted diagnostic line.
func (l *Log) Printf(format string, args ...any) {
	if l.Enabled() {
		fmt.Fprintf(l.w, format+"\n", args...)
	}
}

// Labeled writes a "Label: value" diagnostic line with a highlighted label.
func (l *Log) Labeled(name string, format string, args ...any) {
	if l.Enabled() {
		fmt.Fprintf(l.w, "%s: %s\n", label(name), fmt.Sprintf(format, args...))
	}
}
