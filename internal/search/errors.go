package search

import "errors"

// ErrModel is returned when a Model fails to supply or preprocess an
// initial solution. Use errors.Is(err, ErrModel) to check for this error.
// Both failure points occur before the first loop iteration, so a caller
// never observes partial search state on error.
var ErrModel = &ModelError{}

// ModelError wraps a failure raised by a Model before the search starts.
type ModelError struct {
	Op  string // "generate random solution" or "preprocess solution"
	Err error
}

func (e *ModelError) Error() string {
	if e.Op == "" {
		return "model error"
	}
	if e.Err != nil {
		return "model error: " + e.Op + ": " + e.Err.Error()
	}
	return "model error: " + e.Op
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

func (e *ModelError) Is(target error) bool {
	_, ok := target.(*ModelError)
	return ok
}

func newModelError(op string, err error) *ModelError {
	var me *ModelError
	if errors.As(err, &me) {
		return me
	}
	return &ModelError{Op: op, Err: err}
}
