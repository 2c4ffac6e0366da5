package util

import (
	"fmt"
	"runtime"
	"strings"
)

// CallStack holds the program counters of the function creating an error.
type CallStack []uintptr

// CurrentStack captures the stack of the caller, skipping the given number of additional frames. With skip=0 the
// first frame is the function calling CurrentStack.
func CurrentStack(skip int) CallStack {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(2+skip, pcs[:])
	return pcs[0:n]
}

func (s CallStack) String() string {
	var sb strings.Builder

	for _, pc := range s {
		f := runtime.FuncForPC(pc)
		if f == nil {
			continue
		}
		file, line := f.FileLine(pc)
		sb.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", f.Name(), file, line))
	}

	return sb.String()
}

// FormatError renders an error message for the fmt verbs %s, %q and %v. With %+v the call stack follows the message.
func FormatError(s fmt.State, verb rune, message string, stack CallStack) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s\n%s", message, stack.String())
			return
		}
		fmt.Fprint(s, message)
	case 's':
		fmt.Fprint(s, message)
	case 'q':
		fmt.Fprintf(s, "%q", message)
	}
}
