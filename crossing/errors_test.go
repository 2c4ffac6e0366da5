package crossing

import (
	"fmt"
	"github.com/thlorenz/raycast/util"
	"testing"
)

func TestNonConvergenceError_format(t *testing.T) {
	// Arrange
	err := newNonConvergenceError(3, 0.5, 0.1)
	message := "Crossing search did not converge after 3 iterations: bracket width 0.5 is not below 0.1"

	// Act & Assert
	util.AssertEqual(t, message, fmt.Sprintf("%s", err))
	util.AssertEqual(t, message, fmt.Sprintf("%v", err))
	util.AssertEqual(t, fmt.Sprintf("%q", message), fmt.Sprintf("%q", err))
	util.AssertMatch(t, `(?s)^`+message+`\n.*TestNonConvergenceError_format`, fmt.Sprintf("%+v", err))
}
