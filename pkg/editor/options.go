package editor

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/pkg/param"
)

// ChangeFunc receives the full serialized model after every edit.
type ChangeFunc func(param.Model)

// Option configures an Editor.
type Option func(*Editor)

// WithOnModelChange registers the push subscriber.
func WithOnModelChange(fn ChangeFunc) Option {
	return func(e *Editor) {
		e.onChange = fn
	}
}

// WithLogger attaches a logger. Nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}
