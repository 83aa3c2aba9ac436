package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/param"
	"github.com/goliatone/go-paramedit/pkg/render"
	"github.com/goliatone/go-paramedit/pkg/widgets"
)

const reviewPrompt = "Edit parameters again?"

// Renderer implements render.Renderer for terminal-driven sessions. Each
// supported parameter becomes a text prompt seeded with its current value;
// answers that differ from that value are reported as edits.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	widgets      *widgets.Registry
	reviewLoop   bool
	theme        Theme
	logger       *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		widgets:      widgets.NewRegistry(),
		logger:       zap.NewNop(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatYAML:
		return "application/yaml"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every parameter in schema order and returns the
// session's model serialized in the configured format.
func (r *Renderer) Render(ctx context.Context, session render.Session, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("tui: session is required")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	if title := opts.TitleText(); title != "" {
		_ = r.driver.Info(ctx, r.theme.InfoPrefix+title)
	}

	for pass := 1; ; pass++ {
		for _, field := range render.Bind(session, r.widgets) {
			if err := r.promptField(ctx, field, opts); err != nil {
				return nil, err
			}
		}
		if !r.reviewLoop {
			break
		}
		again, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: opts.Translate(render.MessageReview, reviewPrompt),
		})
		if err != nil {
			return nil, err
		}
		if !again {
			break
		}
		r.logger.Debug("starting another edit pass", zap.Int("pass", pass+1))
	}

	return r.serialize(session)
}

func (r *Renderer) promptField(ctx context.Context, field render.BoundField, opts render.RenderOptions) error {
	switch field.Widget {
	case widgets.WidgetTextInput:
		return r.promptText(ctx, field)
	case "":
		return r.showUnsupported(ctx, field, opts)
	default:
		r.logger.Debug("widget has no terminal prompt",
			zap.Int("param_id", field.Param.ID),
			zap.String("widget", field.Widget),
		)
		return r.showUnsupported(ctx, field, opts)
	}
}

// showUnsupported prints the fallback line for a field the terminal cannot
// prompt for.
func (r *Renderer) showUnsupported(ctx context.Context, field render.BoundField, opts render.RenderOptions) error {
	if field.Fallback == "" {
		field.Fallback = widgets.Unsupported(field.Param.Type)
	}
	_ = r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, field.Param.Name, opts.UnsupportedText(field)))
	return nil
}

func (r *Renderer) promptText(ctx context.Context, field render.BoundField) error {
	response, err := r.driver.Input(ctx, InputConfig{
		Message: field.Param.Name + ":",
		Default: field.Value,
	})
	if err != nil {
		return err
	}
	if response == field.Value {
		return nil
	}
	field.OnChange(field.Param.ID, response)
	return nil
}

func (r *Renderer) serialize(session render.Session) ([]byte, error) {
	return EncodeModel(r.outputFormat, session.Fields(), session.GetModel())
}

// EncodeModel serializes a model in the given format. Fields supply display
// names for the pretty format and may be nil otherwise.
func EncodeModel(format OutputFormat, fields []editor.Field, model param.Model) ([]byte, error) {
	switch format {
	case OutputFormatJSON, "":
		return jsonBytes(model)
	case OutputFormatYAML:
		return yamlBytes(model)
	case OutputFormatPrettyText:
		return []byte(prettyPrint(fields, model)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func jsonBytes(model param.Model) ([]byte, error) {
	out, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: encode json: %w", err)
	}
	return out, nil
}

// yamlModel mirrors param.Model with the payload decoded so YAML output shows
// structure instead of raw bytes.
type yamlModel struct {
	ParamValues []param.ParameterValue `yaml:"paramValues"`
	Colors      any                    `yaml:"colors"`
}

func yamlBytes(model param.Model) ([]byte, error) {
	var extra any
	if len(model.Extra) > 0 {
		if err := json.Unmarshal(model.Extra, &extra); err != nil {
			return nil, fmt.Errorf("tui: decode passthrough payload: %w", err)
		}
	}
	out, err := yaml.Marshal(yamlModel{ParamValues: model.ParamValues, Colors: extra})
	if err != nil {
		return nil, fmt.Errorf("tui: encode yaml: %w", err)
	}
	return out, nil
}

func prettyPrint(fields []editor.Field, model param.Model) string {
	names := make(map[int]string, len(fields))
	for _, field := range fields {
		names[field.Param.ID] = field.Param.Name
	}
	var b strings.Builder
	for _, pv := range model.ParamValues {
		if name, ok := names[pv.ParamID]; ok {
			fmt.Fprintf(&b, "%s [%d]: %s\n", name, pv.ParamID, pv.Value)
			continue
		}
		fmt.Fprintf(&b, "[%d]: %s\n", pv.ParamID, pv.Value)
	}
	fmt.Fprintf(&b, "colors: %s\n", model.Extra)
	return b.String()
}
