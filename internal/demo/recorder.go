package demo

import "fmt"

// Line is one seq-stamped transcript line.
type Line struct {
	Seq  int64  `json:"seq"`
	Text string `json:"text"`
}

// Recorder collects the output lines of a single demo run.
// Lines are stamped with the run's logical clock in emission order.
type Recorder struct {
	clock Sequencer
	lines []Line
}

// NewRecorder creates a recorder stamping lines from clock.
func NewRecorder(clock Sequencer) *Recorder {
	return &Recorder{clock: clock}
}

// Printf appends a formatted line to the transcript.
func (r *Recorder) Printf(format string, args ...any) {
	r.lines = append(r.lines, Line{
		Seq:  r.clock.Next(),
		Text: fmt.Sprintf(format, args...),
	})
}

// Lines returns the recorded lines in emission order.
func (r *Recorder) Lines() []Line {
	return r.lines
}
