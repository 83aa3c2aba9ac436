// Package valuestore owns the dense mapping from parameter id to current
// value. Every function here is a pure transition: inputs are never mutated
// and no state is held between calls.
package valuestore

import (
	"sort"

	"github.com/goliatone/go-paramedit/pkg/param"
)

// ValueMap maps a parameter id to its current string value.
type ValueMap map[int]string

// Construct reconciles a schema with an initial model. Values from the model
// are seeded first (a repeated paramId keeps its last value), then every
// schema id that is still missing receives an empty string. Ids present only
// in the model are retained.
func Construct(schema []param.Parameter, initial param.Model) ValueMap {
	out := make(ValueMap, len(schema)+len(initial.ParamValues))
	for _, pv := range initial.ParamValues {
		out[pv.ParamID] = pv.Value
	}
	for _, p := range schema {
		if _, ok := out[p.ID]; !ok {
			out[p.ID] = ""
		}
	}
	return out
}

// Set returns a copy of m with id bound to value. Unknown ids are inserted.
func Set(m ValueMap, id int, value string) ValueMap {
	out := m.Clone()
	out[id] = value
	return out
}

// Clone returns an independent copy. A nil map clones to an empty one.
func (m ValueMap) Clone() ValueMap {
	out := make(ValueMap, len(m)+1)
	for id, value := range m {
		out[id] = value
	}
	return out
}

// Get returns the value bound to id.
func (m ValueMap) Get(id int) (string, bool) {
	value, ok := m[id]
	return value, ok
}

// IDs returns the keys in ascending order.
func (m ValueMap) IDs() []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
