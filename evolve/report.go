package evolve

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Event is what a Reporter receives: the initial candidate (Iteration 0,
// Elapsed 0) or an accepted improvement.
type Event struct {
	Member    any
	Score     float64
	Elapsed   time.Duration
	Iteration int
}

// String formats the event with FormatReport.
func (ev Event) String() string {
	return FormatReport(ev.Member, ev.Score, ev.Elapsed)
}

// Reporter consumes verbose trace events. It must not affect the search.
type Reporter interface {
	Report(ev Event)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(ev Event)

// Report calls f(ev).
func (f ReporterFunc) Report(ev Event) { f(ev) }

// FormatReport renders one trace line: the member's text, its score to four
// decimal places and the elapsed time, separated by tabs.
func FormatReport(member any, score float64, elapsed time.Duration) string {
	return fmt.Sprintf("%v\t%.4f\t%v", member, score, elapsed)
}

// WriterReporter writes one FormatReport line per event to W.
// Write errors are dropped; reporting never fails a run.
type WriterReporter struct {
	W io.Writer
}

// NewWriterReporter returns a WriterReporter over w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{W: w}
}

// Report implements Reporter.
func (r *WriterReporter) Report(ev Event) {
	_, _ = fmt.Fprintln(r.W, ev.String())
}

// LogReporter emits events as structured zap entries at debug level.
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter returns a LogReporter; a nil logger yields a no-op reporter.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LogReporter{logger: logger}
}

// Report implements Reporter.
func (r *LogReporter) Report(ev Event) {
	r.logger.Debug("improvement",
		zap.Stringer("member", stringer{ev.Member}),
		zap.Float64("score", ev.Score),
		zap.Duration("elapsed", ev.Elapsed),
		zap.Int("iteration", ev.Iteration),
	)
}

// stringer defers member formatting until the entry is actually written.
type stringer struct{ v any }

func (s stringer) String() string { return fmt.Sprint(s.v) }

// multiReporter fans an event out to several reporters in order.
type multiReporter []Reporter

func (m multiReporter) Report(ev Event) {
	for _, r := range m {
		r.Report(ev)
	}
}

// MultiReporter combines reporters; nil entries are skipped.
func MultiReporter(reporters ...Reporter) Reporter {
	out := make(multiReporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}
