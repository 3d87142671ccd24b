package callstack

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nickwells/timer.mod/timer"
	"github.com/nickwells/verbose.mod/verbose"
)

const maxStackWidth = 24

// Stack records the stages of a run and, if timings are wanted or verbose
// mode is on, reports how long each took. Reports are written to W (or to
// standard error if W is nil) so that they do not mix with the results.
type Stack struct {
	ShowTimings bool
	W           io.Writer
	stack       []string
}

// reporting returns true if the stack should report anything
func (s *Stack) reporting() bool {
	return s.ShowTimings || verbose.IsOn()
}

// w returns the writer for reports
func (s *Stack) w() io.Writer {
	if s.W == nil {
		return os.Stderr
	}

	return s.W
}

// Start records the start of a stage, reporting it if required, and
// returns the function to be called when the stage ends.
func (s *Stack) Start(tag, msg string) func() {
	s.stack = append(s.stack, tag)

	if !s.reporting() {
		return s.popStack
	}

	if verbose.IsOn() && msg != "" {
		fmt.Fprintln(s.w(), s.Tag(), msg)
	}

	return timer.Start(tag, s)
}

// Printf writes a tagged message if verbose mode is on
func (s *Stack) Printf(format string, args ...any) {
	if !verbose.IsOn() {
		return
	}

	fmt.Fprintf(s.w(), s.Tag()+" "+format, args...)
}

// Tag returns a tag reflecting the current stage, indented by the stack
// depth and padded to a constant width.
func (s *Stack) Tag() string {
	if len(s.stack) == 0 {
		return strings.Repeat(".", maxStackWidth) + ":"
	}

	t := strings.Repeat("|  ", len(s.stack)-1) + s.stack[len(s.stack)-1]
	if len(t) < maxStackWidth {
		t += strings.Repeat(".", maxStackWidth-len(t))
	}

	return t + ":"
}

// Depth returns the number of stages currently running
func (s *Stack) Depth() int {
	return len(s.stack)
}

// popStack removes the last stage
func (s *Stack) popStack() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Act satisfies the timer.Action interface. It reports the time taken by
// the stage in milliseconds.
func (s *Stack) Act(_ string, d time.Duration) {
	tag := s.Tag()
	s.popStack()

	fmt.Fprintf(s.w(), "%s%10.3f msecs\n",
		tag, float64(d/time.Microsecond)/1000.0)
}
