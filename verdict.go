package pushdown

import "log/slog"

// Verdict is the outcome of a step or of a whole run.
type Verdict int

const (
	// Processing means the run is still underway. It is the zero value.
	Processing Verdict = iota

	// Accept means the input and the stack were exhausted together.
	Accept

	// NotAccepting means no rule applied, or input remained on an empty stack.
	NotAccepting
)

// Terminal returns true for Accept and NotAccepting.
func (v Verdict) Terminal() bool {
	return v == Accept || v == NotAccepting
}

func (v Verdict) String() string {
	switch v {
	case Processing:
		return "Processing"
	case Accept:
		return "Accept"
	case NotAccepting:
		return "NotAccepting"
	default:
		return "Unknown"
	}
}

// LogValue renders the verdict by name in structured logs.
func (v Verdict) LogValue() slog.Value {
	return slog.StringValue(v.String())
}
