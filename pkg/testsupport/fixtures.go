package testsupport

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-paramedit/pkg/loader"
	"github.com/goliatone/go-paramedit/pkg/param"
)

// DressSchema returns the two-parameter schema used across tests.
func DressSchema() []param.Parameter {
	return []param.Parameter{
		{ID: 1, Name: "Purpose", Type: param.TypeString},
		{ID: 2, Name: "Length", Type: param.TypeString},
	}
}

// DressModel returns the initial model paired with DressSchema.
func DressModel() param.Model {
	return param.Model{
		ParamValues: []param.ParameterValue{
			{ParamID: 1, Value: "casual"},
			{ParamID: 2, Value: "maxi"},
		},
		Extra: json.RawMessage(`[]`),
	}
}

// MustLoadDocument parses a fixture document, failing the test on error.
func MustLoadDocument(t *testing.T, path string) loader.Document {
	t.Helper()

	doc, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// Recorder collects models pushed through an OnModelChange callback.
type Recorder struct {
	Models []param.Model
}

// Push appends a model; pass it as the editor's change callback.
func (r *Recorder) Push(model param.Model) {
	r.Models = append(r.Models, model)
}

// Last returns the most recent push, failing the test when there is none.
func (r *Recorder) Last(t *testing.T) param.Model {
	t.Helper()
	if len(r.Models) == 0 {
		t.Fatalf("no model pushed")
	}
	return r.Models[len(r.Models)-1]
}

// DiffModels compares two models exactly, payload bytes included.
func DiffModels(want, got param.Model) string {
	return cmp.Diff(want, got)
}

// DiffModelsUnordered compares models ignoring the order of ParamValues and
// insignificant whitespace in the payload.
func DiffModelsUnordered(want, got param.Model) string {
	return cmp.Diff(want, got,
		cmpopts.SortSlices(func(a, b param.ParameterValue) bool {
			if a.ParamID == b.ParamID {
				return a.Value < b.Value
			}
			return a.ParamID < b.ParamID
		}),
		cmp.Transformer("compactJSON", compactJSON),
	)
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
