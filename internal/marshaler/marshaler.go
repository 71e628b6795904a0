// Package marshaler exports decoded node tables to JSON, YAML or CBOR.
package marshaler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-mast/ast"
	"github.com/KimNorgaard/go-mast/internal/reader"
)

// Format names an export encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// ParseFormat parses an export format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case JSON, YAML, CBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format: %q", name)
	}
}

// Document is the exported shape of a program.
type Document struct {
	Version     int    `json:"version" yaml:"version" cbor:"version"`
	Root        *int   `json:"root" yaml:"root" cbor:"root"`
	Expressions []Node `json:"expressions" yaml:"expressions" cbor:"expressions"`
	Patterns    []Node `json:"patterns" yaml:"patterns" cbor:"patterns"`
}

// Node is one exported table entry.
type Node struct {
	ID    int    `json:"id" yaml:"id" cbor:"id"`
	Kind  string `json:"kind" yaml:"kind" cbor:"kind"`
	Value string `json:"value,omitempty" yaml:"value,omitempty" cbor:"value,omitempty"`
}

// encMode uses Core Deterministic Encoding so the same program always
// exports to the same bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("marshaler: CBOR encoder initialization failed: " + err.Error())
	}
}

// FromProgram converts p into its exported shape.
func FromProgram(p *ast.Program) Document {
	doc := Document{
		Version:     int(reader.Version),
		Expressions: make([]Node, 0, len(p.Exprs)),
		Patterns:    make([]Node, 0, len(p.Patterns)),
	}
	if root, ok := p.Root(); ok {
		id := int(root)
		doc.Root = &id
	}
	for i, e := range p.Exprs {
		n := Node{ID: i, Kind: e.Kind().String()}
		if c, ok := e.(*ast.CharExpr); ok {
			n.Value = string(c.Value)
		}
		doc.Expressions = append(doc.Expressions, n)
	}
	for i, pt := range p.Patterns {
		doc.Patterns = append(doc.Patterns, Node{ID: i, Kind: pt.Kind().String()})
	}
	return doc
}

// Marshal exports p in the given format.
func Marshal(p *ast.Program, f Format) ([]byte, error) {
	doc := FromProgram(p)
	switch f {
	case JSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CBOR:
		return encMode.Marshal(doc)
	default:
		return nil, fmt.Errorf("unknown export format: %q", string(f))
	}
}
