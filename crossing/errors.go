package crossing

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/thlorenz/raycast/util"
)

// ErrNotBracketed is returned when both ends of a segment (or every position of a path) share the same validity, so
// there is no transition to search for.
var ErrNotBracketed = errors.New("Positions do not bracket a crossing")

// NonConvergenceError is returned together with a best-effort result when the iteration cap was reached before the
// bracket became narrower than the requested epsilon.
type NonConvergenceError struct {
	Iterations int
	Width      float64
	Epsilon    float64
	stack      util.CallStack
}

func newNonConvergenceError(iterations int, width float64, epsilon float64) *NonConvergenceError {
	return &NonConvergenceError{
		Iterations: iterations,
		Width:      width,
		Epsilon:    epsilon,
		stack:      util.CurrentStack(1),
	}
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("Crossing search did not converge after %d iterations: bracket width %g is not below %g", e.Iterations, e.Width, e.Epsilon)
}

func (e *NonConvergenceError) Format(s fmt.State, verb rune) {
	util.FormatError(s, verb, e.Error(), e.stack)
}
