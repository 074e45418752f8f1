package pushdown

import (
	"io"
	"log/slog"
)

// Observer receives verdict notifications from every Runner built by a Builder.
// Implementations must be safe for concurrent use when Runners run in parallel.
type Observer interface {
	// StepObserved is called after every evaluated step.
	StepObserved(verdict Verdict)

	// RunFinished is called once when a Runner reaches a terminal verdict.
	RunFinished(verdict Verdict, steps int)
}

// BuilderOption configures a Builder.
type BuilderOption func(*options)

type options struct {
	logger    *slog.Logger
	observers []Observer
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the structured logger used by Runners. Steps are logged at
// debug level.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver adds an observer notified by every Runner.
func WithObserver(observer Observer) BuilderOption {
	return func(o *options) {
		if observer != nil {
			o.observers = append(o.observers, observer)
		}
	}
}
