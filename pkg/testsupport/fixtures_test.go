package testsupport

import (
	"encoding/json"
	"testing"

	"github.com/goliatone/go-paramedit/pkg/param"
)

func TestDiffModelsUnordered(t *testing.T) {
	want := DressModel()
	got := param.Model{
		ParamValues: []param.ParameterValue{
			{ParamID: 2, Value: "maxi"},
			{ParamID: 1, Value: "casual"},
		},
		Extra: json.RawMessage(" [ ] "),
	}
	if diff := DiffModelsUnordered(want, got); diff != "" {
		t.Fatalf("unexpected diff:\n%s", diff)
	}
	if DiffModels(want, got) == "" {
		t.Fatalf("exact diff should report reordering")
	}

	got.ParamValues[0].Value = "midi"
	if DiffModelsUnordered(want, got) == "" {
		t.Fatalf("value change should be reported")
	}
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	rec.Push(DressModel())
	if len(rec.Last(t).ParamValues) != 2 {
		t.Fatalf("unexpected last model: %+v", rec.Last(t))
	}
}
