package editor

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/internal/modelsync"
	"github.com/goliatone/go-paramedit/internal/valuestore"
	"github.com/goliatone/go-paramedit/pkg/param"
)

// State is the controller lifecycle state.
type State int

const (
	// StateUninitialized is the zero state of an Editor not built with New.
	StateUninitialized State = iota
	// StateReady is entered once, by New, and never left.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Field is what a rendering collaborator needs to draw one input.
type Field struct {
	Param param.Parameter
	Value string
}

// Editor owns the value map for one editing session.
type Editor struct {
	state    State
	params   []param.Parameter
	values   valuestore.ValueMap
	extra    json.RawMessage
	onChange ChangeFunc
	logger   *zap.Logger
}

// New reconciles schema and initial model and returns a Ready editor. The
// schema slice and payload are copied; later changes by the caller are not
// observed.
func New(schema []param.Parameter, initial param.Model, options ...Option) *Editor {
	e := &Editor{
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	e.params = append([]param.Parameter(nil), schema...)
	e.values = valuestore.Construct(schema, initial)
	e.extra = modelsync.ClonePayload(initial.Extra)
	e.state = StateReady

	e.logger.Debug("param editor ready",
		zap.Int("params", len(e.params)),
		zap.Int("values", len(e.values)),
	)
	return e
}

// State reports the lifecycle state.
func (e *Editor) State() State {
	if e == nil {
		return StateUninitialized
	}
	return e.state
}

// HandleEdit binds value to id and pushes the resulting model to the
// subscriber, if any. Ids outside the schema are stored as well.
func (e *Editor) HandleEdit(id int, value string) {
	if e.State() != StateReady {
		if e != nil && e.logger != nil {
			e.logger.Warn("edit ignored: editor not initialized", zap.Int("param_id", id))
		}
		return
	}

	if _, known := e.values.Get(id); !known {
		e.logger.Debug("edit for id outside schema", zap.Int("param_id", id))
	}
	e.values = valuestore.Set(e.values, id, value)
	e.notify("edit", zap.Int("param_id", id))
}

// ReplaceExtra swaps the passthrough payload and pushes the resulting model.
func (e *Editor) ReplaceExtra(payload json.RawMessage) {
	if e.State() != StateReady {
		return
	}
	e.extra = modelsync.ClonePayload(payload)
	e.notify("extra replaced")
}

// GetModel serializes the current state. It never mutates the editor.
func (e *Editor) GetModel() param.Model {
	if e.State() != StateReady {
		return modelsync.ToModel(nil, nil)
	}
	return modelsync.ToModel(e.values, e.extra)
}

// Parameters returns a copy of the schema in display order.
func (e *Editor) Parameters() []param.Parameter {
	if e == nil {
		return nil
	}
	return append([]param.Parameter(nil), e.params...)
}

// Value returns the current value for id.
func (e *Editor) Value(id int) (string, bool) {
	if e == nil {
		return "", false
	}
	return e.values.Get(id)
}

// Fields pairs every schema parameter with its current value, in schema
// order. Orphan ids carried from the initial model have no field.
func (e *Editor) Fields() []Field {
	if e == nil || len(e.params) == 0 {
		return nil
	}
	fields := make([]Field, len(e.params))
	for i, p := range e.params {
		value, _ := e.values.Get(p.ID)
		fields[i] = Field{Param: p, Value: value}
	}
	return fields
}

func (e *Editor) notify(reason string, fields ...zap.Field) {
	if e.onChange == nil {
		e.logger.Debug(reason+": no subscriber", fields...)
		return
	}
	model := modelsync.ToModel(e.values, e.extra)
	e.logger.Debug(reason+": pushing model",
		append(fields, zap.Int("values", len(model.ParamValues)))...,
	)
	e.onChange(model)
}
