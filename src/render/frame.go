package render

import (
	"fmt"
	"path/filepath"
	"runtime"
)

type stackFrame struct {
	function string
	file     string
	line     int
}

// callerFrame describes the frame skip levels above its caller.
func callerFrame(skip int) (stackFrame, bool) {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return stackFrame{}, false
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return newStackFrame(frame), true
}

func newStackFrame(frame runtime.Frame) stackFrame {
	f := stackFrame{function: frame.Function, file: frame.File, line: frame.Line}
	if f.function == "" {
		f.function = "unknown"
	}
	return f
}

func (f stackFrame) String() string {
	if f.file == "" {
		return f.function
	}
	return fmt.Sprintf("%s (%s:%d)", f.function, filepath.Base(f.file), f.line)
}
