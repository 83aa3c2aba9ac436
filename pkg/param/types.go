package param

import (
	"encoding/json"
	"strings"
)

// Type tags the kind of input a Parameter expects.
type Type string

const (
	// TypeString is a free-form single line text value.
	TypeString Type = "string"
)

// Supported reports whether the tag is one of the types the editor knows how
// to render. Unknown tags are still valid schema entries; renderers fall back
// to a placeholder for them.
func (t Type) Supported() bool {
	switch t {
	case TypeString:
		return true
	default:
		return false
	}
}

// Parameter is a named, typed field definition.
type Parameter struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type Type   `json:"type" yaml:"type"`
}

// ParameterValue pairs a parameter id with its current string value.
type ParameterValue struct {
	ParamID int    `json:"paramId" yaml:"paramId"`
	Value   string `json:"value" yaml:"value"`
}

// Model is the externally visible editor state.
type Model struct {
	ParamValues []ParameterValue `json:"paramValues"`
	// Extra is the opaque passthrough payload. It is never interpreted, only
	// carried through every serialization unchanged.
	Extra json.RawMessage `json:"colors"`
}

// Schema is an ordered list of parameters.
type Schema []Parameter

// IDs returns the parameter ids in display order.
func (s Schema) IDs() []int {
	if len(s) == 0 {
		return nil
	}
	out := make([]int, len(s))
	for i, p := range s {
		out[i] = p.ID
	}
	return out
}

// Lookup returns the parameter with the given id. When the schema carries the
// id more than once the first entry wins, matching display order.
func (s Schema) Lookup(id int) (Parameter, bool) {
	for _, p := range s {
		if p.ID == id {
			return p, true
		}
	}
	return Parameter{}, false
}

// NormalizeType trims and lowercases a raw type tag read from a document.
func NormalizeType(raw string) Type {
	return Type(strings.ToLower(strings.TrimSpace(raw)))
}
