package errors

import "fmt"

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return e.msg
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

// PanicError carries a value recovered from a panic so it can travel as an error.
type PanicError struct {
	Recovered interface{}
}

func NewPanicError(recovered interface{}) *PanicError {
	return &PanicError{Recovered: recovered}
}

func (e *PanicError) Error() string {
	if err, ok := e.Recovered.(error); ok {
		return fmt.Sprintf("recovered from panic: %s", err.Error())
	}
	return fmt.Sprintf("recovered from panic: %v", e.Recovered)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Recovered.(error)
	return err
}
