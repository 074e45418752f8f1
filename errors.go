package pushdown

import "fmt"

// InvalidOperationError indicates an operation that is not valid given the
// current configuration, such as a second rule for an existing key.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

// ArgumentError indicates an invalid argument was passed.
type ArgumentError struct {
	ParamName string
	Message   string
}

func (e *ArgumentError) Error() string {
	if e.ParamName != "" {
		return fmt.Sprintf("%s (parameter: %s)", e.Message, e.ParamName)
	}
	return e.Message
}

// StepLimitError is returned when a run exhausts its step budget while the
// verdict is still Processing.
type StepLimitError struct {
	Limit int
	State any
	Depth int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf(
		"automaton still processing after %d steps (state '%v', stack depth %d)",
		e.Limit, e.State, e.Depth)
}
