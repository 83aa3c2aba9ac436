package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/loader"
	"github.com/goliatone/go-paramedit/pkg/param"
	"github.com/goliatone/go-paramedit/pkg/render"
)

//go:embed demo.yaml
var demoDocument []byte

//go:embed messages.yaml
var builtinMessages []byte

// loadDocument resolves the schema and initial model from the global flags.
func loadDocument(ctx context.Context) (loader.Document, error) {
	var (
		doc loader.Document
		err error
	)
	if strings.TrimSpace(documentPath) == "" {
		doc, err = loader.Parse(demoDocument)
	} else {
		doc, err = loader.LoadFile(documentPath)
	}
	if err != nil {
		return loader.Document{}, err
	}

	if strings.TrimSpace(openAPIPath) == "" {
		return doc, nil
	}
	if strings.TrimSpace(componentName) == "" {
		return loader.Document{}, errors.New("--component is required with --openapi")
	}
	data, err := os.ReadFile(openAPIPath)
	if err != nil {
		return loader.Document{}, fmt.Errorf("read openapi document: %w", err)
	}
	params, err := loader.FromOpenAPI(ctx, data, componentName)
	if err != nil {
		return loader.Document{}, err
	}
	doc.Params = params
	return doc, nil
}

// newSession builds the editor and logs every pushed model.
func newSession(ctx context.Context) (*editor.Editor, error) {
	doc, err := loadDocument(ctx)
	if err != nil {
		return nil, err
	}
	log := logger
	if log == nil {
		log = zap.NewNop()
	}
	ed := editor.New(doc.Params, doc.Model,
		editor.WithLogger(log.Named("editor")),
		editor.WithOnModelChange(func(m param.Model) {
			log.Info("model changed", zap.Int("values", len(m.ParamValues)))
		}),
	)
	return ed, nil
}

// parseAssignment splits an "id=value" edit.
func parseAssignment(raw string) (int, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return 0, "", fmt.Errorf("invalid assignment %q: want id=value", raw)
	}
	id, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, "", fmt.Errorf("invalid parameter id in %q: %w", raw, err)
	}
	return id, value, nil
}

// renderOptions builds the renderer options from the title and locale flags.
// A --messages catalog is merged over the built-in one.
func renderOptions() (render.RenderOptions, error) {
	opts := render.RenderOptions{Title: title, Locale: strings.TrimSpace(locale)}
	if opts.Locale == "" {
		return opts, nil
	}

	catalog, err := parseMessages(builtinMessages)
	if err != nil {
		return render.RenderOptions{}, err
	}
	if strings.TrimSpace(messagesPath) != "" {
		data, err := os.ReadFile(messagesPath)
		if err != nil {
			return render.RenderOptions{}, fmt.Errorf("read messages: %w", err)
		}
		extra, err := parseMessages(data)
		if err != nil {
			return render.RenderOptions{}, err
		}
		for loc, messages := range extra {
			if catalog[loc] == nil {
				catalog[loc] = map[string]string{}
			}
			for key, text := range messages {
				catalog[loc][key] = text
			}
		}
	}

	opts.Translator = catalog
	opts.OnMissing = func(loc, key, fallback string, err error) string {
		if logger != nil {
			logger.Debug("translation missing", zap.String("locale", loc), zap.String("key", key), zap.Error(err))
		}
		return fallback
	}
	return opts, nil
}

func parseMessages(data []byte) (render.MapTranslator, error) {
	catalog := render.MapTranslator{}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse messages: %w", err)
	}
	return catalog, nil
}
