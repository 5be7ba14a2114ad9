// Package errors marks errors with the location where they are raised.
//
// Use this for internal faults, which are logged but never shown to clients:
//
//	return xe.Wrap(err)
//
// Message of a wrapped error is like
//
//	@ pkg.Func "/path/to/file.go" l42 <- cause
//
// so chained wraps read as a stack trace.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// Located is an error with the location where it is created.
type Located struct {
	file     string
	line     int
	funcname string
	note     string
	err      error
}

func (e *Located) File() string {
	return e.file
}

func (e *Located) Line() int {
	return e.line
}

func (e *Located) Func() string {
	return e.funcname
}

func (e *Located) Error() string {
	if e.note == "" {
		return fmt.Sprintf(`@ %s "%s" l%d <- %s`, e.funcname, e.file, e.line, e.err)
	}
	return fmt.Sprintf(`@ %s "%s" l%d (%s) <- %s`, e.funcname, e.file, e.line, e.note, e.err)
}

func (e *Located) Unwrap() error {
	return e.err
}

func New(text string) error {
	return locate("", errors.New(text), 1)
}

// Wrap marks err with the location of the caller. nil is kept nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return locate("", err, 1)
}

func WrapWithNote(note string, err error) error {
	if err == nil {
		return nil
	}
	return locate(note, err, 1)
}

func locate(note string, err error, depth int) error {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		file, line = "?", -1
	}
	funcname := "(unknown func)"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcname = fn.Name()
	}

	return &Located{
		funcname: funcname,
		file:     file,
		line:     line,
		note:     note,
		err:      err,
	}
}
