// Package modelsync turns the editor's dense value map into the sparse Model
// handed to hosts.
package modelsync

import (
	"bytes"
	"encoding/json"

	"github.com/goliatone/go-paramedit/internal/valuestore"
	"github.com/goliatone/go-paramedit/pkg/param"
)

// emptyPayload is emitted when the host never supplied a passthrough payload.
var emptyPayload = json.RawMessage(`[]`)

// ToModel serializes m ordered by ascending id and pairs it with a copy of the
// passthrough payload.
func ToModel(m valuestore.ValueMap, passthrough json.RawMessage) param.Model {
	ids := m.IDs()
	values := make([]param.ParameterValue, 0, len(ids))
	for _, id := range ids {
		values = append(values, param.ParameterValue{ParamID: id, Value: m[id]})
	}
	return param.Model{
		ParamValues: values,
		Extra:       ClonePayload(passthrough),
	}
}

// ClonePayload copies a payload so callers cannot alias editor state. A
// payload that is nil, blank or the JSON null literal becomes the empty JSON
// array.
func ClonePayload(payload json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return append(json.RawMessage(nil), emptyPayload...)
	}
	return append(json.RawMessage(nil), payload...)
}
