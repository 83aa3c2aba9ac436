package paramedit

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/loader"
	"github.com/goliatone/go-paramedit/pkg/param"
	"github.com/goliatone/go-paramedit/pkg/render"
	"github.com/goliatone/go-paramedit/pkg/renderers/html"
)

// Parameter aliases param.Parameter so hosts can build schemas from the root
// package.
type Parameter = param.Parameter

// ParameterValue aliases param.ParameterValue.
type ParameterValue = param.ParameterValue

// Model aliases param.Model, the serialized editor state.
type Model = param.Model

// Document aliases loader.Document.
type Document = loader.Document

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// NewEditor exposes the editor constructor from the top-level module.
func NewEditor(schema []Parameter, initial Model, options ...editor.Option) *editor.Editor {
	return editor.New(schema, initial, options...)
}

// Open builds an editor from a schema/model document (JSON or YAML).
func Open(path string, options ...editor.Option) (*editor.Editor, error) {
	doc, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return editor.New(doc.Params, doc.Model, options...), nil
}

// GenerateHTML renders the editor's current values as an HTML form using the
// built-in template. It is the simplest entry point for hosts that serve the
// form themselves and feed posted values back through html.ApplySubmission.
func GenerateHTML(ctx context.Context, ed *editor.Editor, opts RenderOptions, options ...html.Option) ([]byte, error) {
	return html.New(options...).Render(ctx, ed, opts)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
