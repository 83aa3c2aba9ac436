package render

import (
	"github.com/goliatone/go-paramedit/pkg/param"
	"github.com/goliatone/go-paramedit/pkg/widgets"
)

// ChangeFunc reports a user edit for one parameter.
type ChangeFunc func(id int, value string)

// BoundField is one row handed to a renderer: the parameter, its current
// value, the resolved widget and the callback to report edits through.
// Widget is empty when no widget handles the parameter type; Fallback then
// carries the placeholder text.
type BoundField struct {
	Param    param.Parameter
	Value    string
	Widget   string
	Fallback string
	OnChange ChangeFunc
}

// Supported reports whether a widget was resolved.
func (f BoundField) Supported() bool {
	return f.Widget != ""
}

// Bind resolves a widget for every session field, in schema order. A nil
// registry uses the built-in widget set.
func Bind(session Session, registry *widgets.Registry) []BoundField {
	if session == nil {
		return nil
	}
	if registry == nil {
		registry = widgets.NewRegistry()
	}
	fields := session.Fields()
	out := make([]BoundField, 0, len(fields))
	for _, field := range fields {
		bound := BoundField{
			Param:    field.Param,
			Value:    field.Value,
			OnChange: session.HandleEdit,
		}
		if widget, ok := registry.Resolve(field.Param); ok {
			bound.Widget = widget
		} else {
			bound.Fallback = widgets.Unsupported(field.Param.Type)
		}
		out = append(out, bound)
	}
	return out
}
