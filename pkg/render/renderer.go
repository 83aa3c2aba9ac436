package render

import (
	"context"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/param"
)

// Session is the slice of the editor a rendering collaborator may touch:
// read fields, report edits, read the model. *editor.Editor satisfies it.
type Session interface {
	Fields() []editor.Field
	HandleEdit(id int, value string)
	GetModel() param.Model
}

var _ Session = (*editor.Editor)(nil)

// Renderer draws a session (HTML, terminal prompts, ...) and returns the
// produced bytes.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, session Session, options RenderOptions) ([]byte, error)
}
