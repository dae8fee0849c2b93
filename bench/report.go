package bench

import (
	"fmt"
	"io"
)

// TextReporter prints one "name: seconds" line per batch and a blank line after every round.
// With Verbose, the line also carries decodes per second and throughput.
type TextReporter struct {
	w       io.Writer
	Verbose bool
}

// NewTextReporter creates a new TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report implements the Reporter interface.
func (t *TextReporter) Report(res Result) {
	if t.Verbose {
		fmt.Fprintf(t.w, "%s: %f (%.0f decodes/s, %.2f MB/s)\n", res.Strategy, res.Elapsed.Seconds(), res.PerSecond(), res.Throughput())
		return
	}

	fmt.Fprintf(t.w, "%s: %f\n", res.Strategy, res.Elapsed.Seconds())
}

// EndRound implements the Reporter interface.
func (t *TextReporter) EndRound(int) {
	fmt.Fprintln(t.w)
}

// Collector keeps every result, it is meant for tests and programmatic use.
type Collector struct {
	Results []Result
	Rounds  int
}

// Report implements the Reporter interface.
func (c *Collector) Report(res Result) {
	c.Results = append(c.Results, res)
}

// EndRound implements the Reporter interface.
func (c *Collector) EndRound(int) {
	c.Rounds++
}
