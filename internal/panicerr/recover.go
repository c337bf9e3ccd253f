// Package panicerr isolates a puzzle solution from the runner: a solution
// that panics on malformed input, or calls runtime.Goexit, comes back as an
// ordinary error instead of taking the whole run down.
package panicerr

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// Error describes a function that did not return normally.
type Error struct {
	Name  string      // what was running, e.g. a day key
	Value interface{} // the recovered panic value
	Stack []byte      // stack of the panicking goroutine
	Exit  bool        // runtime.Goexit was called instead
}

func (e *Error) Error() string { return fmt.Sprint(e) }

// Format adds the panic stack under the %+v verb.
func (e *Error) Format(f fmt.State, c rune) {
	switch {
	case e.Exit && e.Name == "":
		io.WriteString(f, "runtime.Goexit called")
	case e.Exit:
		fmt.Fprintf(f, "%s called runtime.Goexit", e.Name)
	case e.Name == "":
		fmt.Fprintf(f, "panicked: %v", e.Value)
	default:
		fmt.Fprintf(f, "%s panicked: %v", e.Name, e.Value)
	}
	if !e.Exit && c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\npanic stack: %s", e.Stack)
	}
}

// Unwrap returns the panic value when it is itself an error.
func (e *Error) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Recover runs f on a goroutine of its own and waits for it, returning f's
// error, or an *Error if f panicked or exited its goroutine.
func Recover(name string, f func() error) error {
	done := make(chan error, 1)
	go func() {
		returned := false
		defer func() {
			if returned {
				return
			}
			if v := recover(); v != nil {
				done <- &Error{Name: name, Value: v, Stack: debug.Stack()}
			} else {
				done <- &Error{Name: name, Exit: true}
			}
		}()
		err := f()
		returned = true
		done <- err
	}()
	return <-done
}

func asError(err error) (*Error, bool) {
	var e *Error
	return e, errors.As(err, &e)
}

// IsExit reports whether err records a runtime.Goexit call.
func IsExit(err error) bool {
	e, ok := asError(err)
	return ok && e.Exit
}

// IsPanic reports whether err records a recovered panic.
func IsPanic(err error) bool {
	e, ok := asError(err)
	return ok && !e.Exit
}

// PanicStack returns the stack trace recorded with a recovered panic, or "".
func PanicStack(err error) string {
	if e, ok := asError(err); ok && !e.Exit {
		return string(e.Stack)
	}
	return ""
}
