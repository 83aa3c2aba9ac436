package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paramedit/pkg/param"
)

// ParamIDExtension marks a component property as an editor parameter and
// carries its id.
const ParamIDExtension = "x-param-id"

// FromOpenAPI builds a schema from the properties of an OpenAPI component
// schema. Properties without an x-param-id extension are skipped; the rest
// become parameters named by their title (or property key) and ordered by id.
func FromOpenAPI(ctx context.Context, data []byte, component string) ([]param.Parameter, error) {
	if ctx == nil {
		return nil, errors.New("loader: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(component)
	if name == "" {
		return nil, errors.New("loader: component name is required")
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyDocument
	}
	if err := requireComponent(data, name); err != nil {
		return nil, err
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("loader: load openapi document: %w", err)
	}

	ref := spec.Components.Schemas[name]
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("loader: component %q has no schema", name)
	}

	params := make([]param.Parameter, 0, len(ref.Value.Properties))
	seen := make(map[int]string, len(ref.Value.Properties))
	for key, property := range ref.Value.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		id, ok := extensionID(property.Value.Extensions[ParamIDExtension])
		if !ok {
			continue
		}
		if other, dup := seen[id]; dup {
			return nil, fmt.Errorf("loader: component %q: properties %q and %q share parameter id %d", name, other, key, id)
		}
		seen[id] = key

		label := strings.TrimSpace(property.Value.Title)
		if label == "" {
			label = key
		}
		params = append(params, param.Parameter{
			ID:   id,
			Name: label,
			Type: param.NormalizeType(firstSchemaType(property.Value.Type)),
		})
	}

	sort.Slice(params, func(i, j int) bool { return params[i].ID < params[j].ID })
	return params, nil
}

// requireComponent checks the raw document so a missing component is reported
// by name instead of surfacing as a lookup on an absent components section.
func requireComponent(data []byte, name string) error {
	var raw struct {
		Components struct {
			Schemas map[string]any `yaml:"schemas"`
		} `yaml:"components"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("loader: decode openapi document: %w", err)
	}
	if _, ok := raw.Components.Schemas[name]; !ok {
		return fmt.Errorf("loader: component %q not found", name)
	}
	return nil
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

func extensionID(value any) (int, bool) {
	switch typed := value.(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case float64:
		if typed != math.Trunc(typed) {
			return 0, false
		}
		return int(typed), true
	case json.Number:
		id, err := strconv.Atoi(typed.String())
		return id, err == nil
	case json.RawMessage:
		var id int
		if err := json.Unmarshal(typed, &id); err != nil {
			return 0, false
		}
		return id, true
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(typed))
		return id, err == nil
	default:
		return 0, false
	}
}
