package render

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFormat = errors.New("render: unknown image format")
	ErrInvalidScale  = errors.New("render: invalid scale factor")
)

// newError annotates err with the frame that called into the package.
func newError(err error) error {
	if err == nil {
		return nil
	}
	frame, ok := callerFrame(2)
	if !ok {
		return fmt.Errorf("render error: %w", err)
	}
	return fmt.Errorf("render error: %w on %s", err, frame.String())
}

// OrPanic runs the finalizers and panics when err is non-nil.
func OrPanic(err error, finalizers ...func()) {
	if err == nil {
		return
	}
	for _, fn := range finalizers {
		fn()
	}
	panic(err)
}

// CheckError recovers a panic into *err. It must be deferred.
func CheckError(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(error); ok {
			*err = e
			return
		}
		*err = fmt.Errorf("%+v", v)
	}
}
