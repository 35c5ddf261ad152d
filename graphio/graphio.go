package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/arcroute/core"
)

// =============================================================================
// Network Serialization API
// =============================================================================

// Read decodes a network document from r and builds the road graph.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	var doc Document
	if err := decode(r, f, &doc); err != nil {
		return nil, err
	}

	return ToGraph(doc)
}

// ReadFile reads a network document, choosing the format from the extension.
func ReadFile(path string) (*core.Graph, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	return Read(fh, FormatFromPath(path))
}

// Write encodes g as a network document.
func Write(w io.Writer, f Format, g *core.Graph) error {
	return encode(w, f, FromGraph(g))
}

// WriteFile writes g to path, choosing the format from the extension.
// The file is created with 0644 permissions.
func WriteFile(path string, g *core.Graph) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer fh.Close()

	return Write(fh, FormatFromPath(path), g)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return nil
}

func decode(r io.Reader, f Format, v interface{}) error {
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}
