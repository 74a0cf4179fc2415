package cpu

import "fmt"

// NotRunning reports that Step was invoked while the engine was not in the
// Running state. It is the one error a caller can always recover
// from without a Reset.
type NotRunning struct {
	State State
}

func (e *NotRunning) Error() string {
	return fmt.Sprintf("cpu: not running (state=%s)", e.State)
}

// DivisionByZero reports a DIV instruction whose divisor cell is zero.
type DivisionByZero struct{}

func (e *DivisionByZero) Error() string { return "cpu: division by zero" }
