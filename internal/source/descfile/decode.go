package descfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Alia5/beangen/internal/beans"
	"github.com/Alia5/beangen/internal/diag"
	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Format of a descriptor document.
type Format int

const (
	YAML Format = iota + 1
	TOML
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf reports the descriptor format implied by path's extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, true
	case ".toml":
		return TOML, true
	case ".json":
		return JSON, true
	}
	return 0, false
}

// Load decodes the descriptor file at path from data and converts it.
func Load(path string, data []byte) ([]*beans.StateClass, error) {
	f, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("unsupported descriptor extension %q", filepath.Ext(path))
	}
	doc, err := Decode(f, data)
	if err != nil {
		return nil, err
	}
	return doc.StateClasses(path)
}

// Decode parses a descriptor document.
func Decode(f Format, data []byte) (*Document, error) {
	switch f {
	case YAML:
		return decodeYAML(data)
	case TOML:
		return decodeTOML(data)
	case JSON:
		return decodeJSON(data)
	}
	return nil, fmt.Errorf("unsupported descriptor format %s", f)
}

func decodeYAML(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(root.Content) > 0 {
		yamlPositions(root.Content[0], &doc)
	}
	return &doc, nil
}

func yamlPositions(m *yaml.Node, doc *Document) {
	for i, cn := range yamlSeq(m, "classes") {
		if i >= len(doc.Classes) {
			return
		}
		c := &doc.Classes[i]
		c.pos = yamlPos(cn)
		for j, fn := range yamlSeq(cn, "fields") {
			if j < len(c.Fields) {
				c.Fields[j].pos = yamlPos(fn)
			}
		}
		for j, kn := range yamlSeq(cn, "constructors") {
			if j < len(c.Constructors) {
				c.Constructors[j].pos = yamlPos(kn)
			}
		}
	}
}

func yamlSeq(m *yaml.Node, key string) []*yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key && m.Content[i+1].Kind == yaml.SequenceNode {
			return m.Content[i+1].Content
		}
	}
	return nil
}

func yamlPos(n *yaml.Node) diag.Position {
	return diag.Position{Line: n.Line, Column: n.Column}
}

func decodeTOML(data []byte) (*Document, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	var doc Document
	if err := tree.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	classes, _ := tree.Get("classes").([]*toml.Tree)
	for i, ct := range classes {
		if i >= len(doc.Classes) {
			break
		}
		c := &doc.Classes[i]
		c.pos = tomlPos(ct.Position())
		fields, _ := ct.Get("fields").([]*toml.Tree)
		for j, ft := range fields {
			if j < len(c.Fields) {
				c.Fields[j].pos = tomlPos(ft.Position())
			}
		}
		ctors, _ := ct.Get("constructors").([]*toml.Tree)
		for j, kt := range ctors {
			if j < len(c.Constructors) {
				c.Constructors[j].pos = tomlPos(kt.Position())
			}
		}
	}
	return &doc, nil
}

func tomlPos(p toml.Position) diag.Position {
	return diag.Position{Line: p.Line, Column: p.Col}
}

func decodeJSON(data []byte) (*Document, error) {
	var doc Document
	if len(bytes.TrimSpace(data)) == 0 {
		return &doc, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &doc, nil
}
