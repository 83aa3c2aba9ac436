package html

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/param"
	"github.com/goliatone/go-paramedit/pkg/render"
	"github.com/goliatone/go-paramedit/pkg/testsupport"
)

func dressEditor(pushed *[]param.Model) *editor.Editor {
	return editor.New([]param.Parameter{
		{ID: 1, Name: "Purpose", Type: param.TypeString},
		{ID: 2, Name: "Length", Type: param.TypeString},
		{ID: 3, Name: "Shade", Type: "color"},
	}, param.Model{
		ParamValues: []param.ParameterValue{
			{ParamID: 1, Value: "casual"},
			{ParamID: 2, Value: "maxi"},
		},
		Extra: json.RawMessage(`[]`),
	}, editor.WithOnModelChange(func(m param.Model) {
		*pushed = append(*pushed, m)
	}))
}

func TestRender_FieldsAndFallback(t *testing.T) {
	var pushed []param.Model
	out, err := New().Render(context.Background(), dressEditor(&pushed), render.RenderOptions{Title: "Parameter editor"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<h2>Parameter editor</h2>`,
		`<input type="text" id="param-1" name="param-1" value="casual">`,
		`<input type="text" id="param-2" name="param-2" value="maxi">`,
		`<span class="param-unsupported">Unsupported param type: color</span>`,
		`<button type="submit" class="param-editor-submit">Get model</button>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
	if strings.Index(html, "param-1") > strings.Index(html, "param-2") {
		t.Fatalf("fields not in schema order:\n%s", html)
	}
	if strings.Contains(html, `id="param-3"`) {
		t.Fatalf("unsupported parameter must not render an input:\n%s", html)
	}
	if len(pushed) != 0 {
		t.Fatalf("rendering must not push")
	}
}

func TestRender_Golden(t *testing.T) {
	var pushed []param.Model
	out, err := New().Render(context.Background(), dressEditor(&pushed), render.RenderOptions{Title: render.DefaultTitle})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	golden := filepath.Join("testdata", "dress.golden.html")
	if testsupport.WriteMaybeGolden(t, golden, out) {
		return
	}
	want := testsupport.MustReadGolden(t, golden)
	if diff := cmp.Diff(strings.TrimSpace(string(want)), strings.TrimSpace(string(out))); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_EscapesValuesAndStripsLabelMarkup(t *testing.T) {
	ed := editor.New([]param.Parameter{
		{ID: 1, Name: `<b>Fit</b><script>alert(1)</script>`, Type: param.TypeString},
	}, param.Model{ParamValues: []param.ParameterValue{{ParamID: 1, Value: `"><img src=x>`}}})

	out, err := New().Render(context.Background(), ed, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<script>") || strings.Contains(html, "<b>") {
		t.Fatalf("label markup leaked:\n%s", html)
	}
	if !strings.Contains(html, ">Fit") {
		t.Fatalf("label text missing:\n%s", html)
	}
	if strings.Contains(html, `"><img`) {
		t.Fatalf("value not escaped:\n%s", html)
	}
}

func TestRender_Theme(t *testing.T) {
	cfg := &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		CSSVars: map[string]string{
			"--brand": "#123456",
			"accent":  "#fff",
		},
	}
	var pushed []param.Model
	out, err := New(WithTheme(cfg), WithSubmitLabel("Save")).Render(context.Background(), dressEditor(&pushed), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`data-theme="acme"`,
		`data-variant="dark"`,
		`style="--brand: #123456; --accent: #fff;"`,
		`>Save</button>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRender_TemplateOverride(t *testing.T) {
	files := fstest.MapFS{
		"list.tpl": {Data: []byte(`{% for field in fields %}{{ field.id }}={{ field.value }};{% endfor %}`)},
	}
	var pushed []param.Model
	r := New(WithTemplatesFS(files), WithTemplateName("list.tpl"))
	out, err := r.Render(context.Background(), dressEditor(&pushed), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff("1=casual;2=maxi;3=;", string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	missing := New(WithTemplatesFS(fstest.MapFS{}))
	if _, err := missing.Render(context.Background(), dressEditor(&pushed), render.RenderOptions{}); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestRender_Preconditions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Render(ctx, editor.New(nil, param.Model{}), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := New().Render(context.Background(), nil, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for nil session")
	}
}

func TestApplySubmission(t *testing.T) {
	var pushed []param.Model
	ed := dressEditor(&pushed)

	form := url.Values{
		"param-1": {"casual"},
		"param-2": {"mini", "midi"},
		"param-3": {"navy"},
		"other":   {"ignored"},
	}
	if got := ApplySubmission(ed, form, nil); got != 1 {
		t.Fatalf("applied = %d, want 1", got)
	}
	if len(pushed) != 1 {
		t.Fatalf("pushes = %d, want 1", len(pushed))
	}

	want := param.Model{
		ParamValues: []param.ParameterValue{
			{ParamID: 1, Value: "casual"},
			{ParamID: 2, Value: "midi"},
			{ParamID: 3, Value: ""},
		},
		Extra: json.RawMessage(`[]`),
	}
	if diff := cmp.Diff(want, ed.GetModel()); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
	if ApplySubmission(nil, form, nil) != 0 || ApplySubmission(ed, nil, nil) != 0 {
		t.Fatalf("empty inputs should apply nothing")
	}
}

func TestRender_Localized(t *testing.T) {
	var pushed []param.Model
	opts := render.RenderOptions{
		Title:  "Parameter editor",
		Locale: "ru",
		Translator: render.MapTranslator{"ru": {
			render.MessageTitle:       "Редактор параметров",
			render.MessageSubmit:      "Получить модель",
			render.MessageUnsupported: "Неподдерживаемый тип параметра: %s",
		}},
	}
	out, err := New().Render(context.Background(), dressEditor(&pushed), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`<h2>Редактор параметров</h2>`,
		`<span class="param-unsupported">Неподдерживаемый тип параметра: color</span>`,
		`>Получить модель</button>`,
		`Purpose:`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}
