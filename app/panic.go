package app

import (
	"context"
	"fmt"
	"strings"
)

// PanicError is returned by a step that panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// safeStep runs Step and turns a panic into a *PanicError after logging the
// stack one line at a time.
func (r *Runtime) safeStep(ctx context.Context) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		pe := &PanicError{Value: v, Stack: captureStack()}
		r.logPanic(pe)
		err = pe
	}()
	return r.Step(ctx)
}

func (r *Runtime) logPanic(pe *PanicError) {
	if r.log == nil {
		return
	}
	r.log.WriteLineString(fmt.Sprintf("Desk Buddy panic: %v", pe.Value))
	if len(pe.Stack) == 0 {
		r.log.WriteLineString("stack: unavailable")
		return
	}
	for _, line := range strings.Split(string(pe.Stack), "\n") {
		if line == "" {
			continue
		}
		r.log.WriteLineString(line)
	}
}
