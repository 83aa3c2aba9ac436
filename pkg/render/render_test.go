package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/param"
	"github.com/goliatone/go-paramedit/pkg/widgets"
)

type echoRenderer struct {
	name string
}

func (e echoRenderer) Name() string        { return e.name }
func (e echoRenderer) ContentType() string { return "text/plain" }
func (e echoRenderer) Render(_ context.Context, session Session, opts RenderOptions) ([]byte, error) {
	return []byte(opts.Title + ":" + e.name), nil
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(echoRenderer{name: "tui"}, echoRenderer{name: "html"})

	if err := reg.Register(echoRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(echoRenderer{name: " "}); err == nil {
		t.Fatalf("expected unnamed renderer error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if diff := cmp.Diff([]string{"html", "tui"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("tui") || reg.Has("pdf") {
		t.Fatalf("Has returned unexpected results")
	}

	out, err := reg.Render(context.Background(), "", nil, RenderOptions{Title: "t"})
	if err != nil {
		t.Fatalf("render default: %v", err)
	}
	if string(out) != "t:tui" {
		t.Fatalf("default renderer output = %q", out)
	}

	if _, err := reg.Get("pdf"); !errors.Is(err, ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestBind(t *testing.T) {
	var pushed []param.Model
	ed := editor.New([]param.Parameter{
		{ID: 1, Name: "Purpose", Type: param.TypeString},
		{ID: 3, Name: "Shade", Type: "color"},
	}, param.Model{ParamValues: []param.ParameterValue{{ParamID: 1, Value: "casual"}}},
		editor.WithOnModelChange(func(m param.Model) { pushed = append(pushed, m) }),
	)

	fields := Bind(ed, nil)
	if len(fields) != 2 {
		t.Fatalf("bound %d fields, want 2", len(fields))
	}

	purpose := fields[0]
	if !purpose.Supported() || purpose.Widget != widgets.WidgetTextInput || purpose.Value != "casual" {
		t.Fatalf("unexpected purpose field: %+v", purpose)
	}
	shade := fields[1]
	if shade.Supported() || shade.Fallback != "Unsupported param type: color" {
		t.Fatalf("unexpected shade field: %+v", shade)
	}

	purpose.OnChange(purpose.Param.ID, "formal")
	if len(pushed) != 1 {
		t.Fatalf("OnChange should push once, got %d", len(pushed))
	}
	if got, _ := ed.Value(1); got != "formal" {
		t.Fatalf("Value(1) = %q", got)
	}
}

func TestBindNilSession(t *testing.T) {
	if got := Bind(nil, nil); got != nil {
		t.Fatalf("Bind(nil) = %+v", got)
	}
}
