package errs

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
)

type ErrType string

const (
	INTERNAL_ERROR  ErrType = "INTERNAL ERROR"
	BAD_INPUT_ERROR ErrType = "BAD INPUT ERROR"
	UNKNOWN_ERROR   ErrType = "UNKNOWN ERROR"
)

// InternalError is a failure of igcpp itself (files, toolchain wiring).
type InternalError struct {
	message string
	wrapped error
}

func NewInternalError(message string) *InternalError {
	return &InternalError{
		message: message,
	}
}

func (e *InternalError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *InternalError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

// BadInputError is caused by invalid user input.
type BadInputError struct {
	message string
	wrapped error
}

func NewBadInputError(message string) *BadInputError {
	return &BadInputError{
		message: message,
	}
}

func (e *BadInputError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *BadInputError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

// HandleError classifies an error and prints it for the user.
func HandleError(err error) {
	var internalErr *InternalError
	var badInputErr *BadInputError
	var errType ErrType
	switch {
	case errors.As(err, &internalErr):
		errType = INTERNAL_ERROR
	case errors.As(err, &badInputErr):
		errType = BAD_INPUT_ERROR
	default:
		errType = UNKNOWN_ERROR
	}
	fmt.Printf("\n%s\n\n", color.RedString("[%s]\n %s", errType, err.Error()))
}
