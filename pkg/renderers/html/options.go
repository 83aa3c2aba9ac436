package html

import (
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-paramedit/pkg/widgets"
)

// DefaultTemplate is the template name rendered by default.
const DefaultTemplate = "editor.tpl"

// Option configures the HTML renderer.
type Option func(*Renderer)

// WithTemplatesFS replaces the template filesystem. The filesystem must
// provide the template named by WithTemplateName (DefaultTemplate otherwise).
func WithTemplatesFS(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.templates = files
		}
	}
}

// WithTemplateName selects the entry template.
func WithTemplateName(name string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.templateName = trimmed
		}
	}
}

// WithTheme supplies a resolved go-theme configuration; its name, variant and
// CSS variables are emitted on the form element.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// WithWidgets swaps the widget registry used to pick inputs.
func WithWidgets(registry *widgets.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.widgets = registry
		}
	}
}

// WithSubmitLabel overrides the submit button label.
func WithSubmitLabel(label string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			r.submitLabel = trimmed
		}
	}
}
