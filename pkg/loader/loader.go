package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paramedit/pkg/param"
)

// ErrEmptyDocument is returned for documents without content.
var ErrEmptyDocument = errors.New("loader: document is empty")

// Document is a schema plus the model the editor starts from.
type Document struct {
	Params []param.Parameter
	Model  param.Model
}

type wireDocument struct {
	Params []param.Parameter `json:"params"`
	Model  *param.Model      `json:"model"`
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return doc, nil
}

// LoadFS reads and parses the document at path inside fsys.
func LoadFS(fsys fs.FS, path string) (Document, error) {
	if fsys == nil {
		return Document{}, errors.New("loader: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return doc, nil
}

// Parse decodes a JSON or YAML document. Schema ids must be unique; a missing
// model yields an empty one. YAML scalars are read as text, so `value: 42`
// and `value: "42"` are the same.
func Parse(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{}, ErrEmptyDocument
	}

	if trimmed[0] == '{' && json.Valid(trimmed) {
		var wire wireDocument
		if err := json.Unmarshal(trimmed, &wire); err == nil {
			return buildDocument(wire)
		}
	}
	// JSON with non-string values is still valid YAML; the YAML decoder
	// reads those scalars as text.
	wire, err := decodeYAML(trimmed)
	if err != nil {
		return Document{}, err
	}
	return buildDocument(wire)
}

func buildDocument(wire wireDocument) (Document, error) {
	params := make([]param.Parameter, 0, len(wire.Params))
	seen := make(map[int]struct{}, len(wire.Params))
	for _, p := range wire.Params {
		if _, dup := seen[p.ID]; dup {
			return Document{}, fmt.Errorf("loader: duplicate parameter id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		p.Type = param.NormalizeType(string(p.Type))
		params = append(params, p)
	}

	doc := Document{Params: params}
	if wire.Model != nil {
		doc.Model = *wire.Model
	}
	return doc, nil
}

type yamlDocument struct {
	Params []param.Parameter `yaml:"params"`
	Model  *yamlModel        `yaml:"model"`
}

type yamlModel struct {
	ParamValues []param.ParameterValue `yaml:"paramValues"`
	Colors      yaml.Node              `yaml:"colors"`
}

func decodeYAML(data []byte) (wireDocument, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return wireDocument{}, fmt.Errorf("loader: decode yaml: %w", err)
	}
	if emptyNode(&root) {
		return wireDocument{}, ErrEmptyDocument
	}

	var raw yamlDocument
	if err := root.Decode(&raw); err != nil {
		return wireDocument{}, fmt.Errorf("loader: decode yaml: %w", err)
	}

	wire := wireDocument{Params: raw.Params}
	if raw.Model == nil {
		return wire, nil
	}
	payload, err := nodeToJSON(&raw.Model.Colors)
	if err != nil {
		return wireDocument{}, err
	}
	wire.Model = &param.Model{
		ParamValues: raw.Model.ParamValues,
		Extra:       payload,
	}
	return wire, nil
}

func emptyNode(node *yaml.Node) bool {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return true
		}
		node = node.Content[0]
	}
	return node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

// nodeToJSON re-encodes the passthrough payload as JSON. An absent or null
// payload yields nil.
func nodeToJSON(node *yaml.Node) (json.RawMessage, error) {
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return nil, nil
	}
	var value any
	if err := node.Decode(&value); err != nil {
		return nil, fmt.Errorf("loader: decode colors: %w", err)
	}
	out, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("loader: convert colors: %w", err)
	}
	return out, nil
}
