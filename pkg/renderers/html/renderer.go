package html

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-paramedit/pkg/render"
	"github.com/goliatone/go-paramedit/pkg/widgets"
)

const inputPrefix = "param-"

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// Renderer implements render.Renderer by executing a pongo2 template with one
// labelled input per schema parameter.
type Renderer struct {
	templates    fs.FS
	templateName string
	theme        *theme.RendererConfig
	widgets      *widgets.Registry
	submitLabel  string

	once    sync.Once
	tmpl    *pongo2.Template
	tmplErr error
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs an HTML renderer using the embedded templates.
func New(options ...Option) *Renderer {
	r := &Renderer{
		templates:    TemplatesFS(),
		templateName: DefaultTemplate,
		widgets:      widgets.NewRegistry(),
		submitLabel:  "Get model",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the rendered media type.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws the session's fields. Parameters without a widget render the
// unsupported placeholder in place of an input.
func (r *Renderer) Render(ctx context.Context, session render.Session, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("html: session is required")
	}

	tmpl, err := r.template()
	if err != nil {
		return nil, err
	}

	bound := render.Bind(session, r.widgets)
	fields := make([]map[string]any, 0, len(bound))
	for _, field := range bound {
		fields = append(fields, map[string]any{
			"id":       field.Param.ID,
			"input":    InputName(field.Param.ID),
			"name":     sanitizeLabel(field.Param.Name),
			"value":    field.Value,
			"widget":   field.Widget,
			"fallback": opts.UnsupportedText(field),
		})
	}

	out, err := tmpl.Execute(pongo2.Context{
		"title":  opts.TitleText(),
		"fields": fields,
		"submit": opts.Translate(render.MessageSubmit, r.submitLabel),
		"theme":  themeContext(r.theme),
	})
	if err != nil {
		return nil, fmt.Errorf("html: execute template: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) template() (*pongo2.Template, error) {
	r.once.Do(func() {
		set := pongo2.NewSet("paramedit", pongo2.NewFSLoader(r.templates))
		r.tmpl, r.tmplErr = set.FromFile(r.templateName)
		if r.tmplErr != nil {
			r.tmplErr = fmt.Errorf("html: load template %q: %w", r.templateName, r.tmplErr)
		}
	})
	return r.tmpl, r.tmplErr
}

// InputName is the form field name used for a parameter's input.
func InputName(id int) string {
	return inputPrefix + strconv.Itoa(id)
}

func sanitizeLabel(raw string) string {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(labelPolicy.Sanitize(raw))
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
		"style":   cssVarsStyle(cfg.CSSVars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, key := range keys {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(vars[key]))
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}
