package cst

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrNoDocuments is returned by Decode when the dump holds no DOCUMENT node.
var ErrNoDocuments = errors.New("cst: dump contains no documents")

// Decode reads a CST dump. The dump is YAML or JSON and holds either a list
// of DOCUMENT nodes or a single DOCUMENT node. Unknown fields are rejected so
// that dumps from an incompatible parser version fail early; unknown node
// kinds are kept and reported by the transform.
func Decode(data []byte) (Stream, error) {
	var stream Stream
	listErr := yaml.UnmarshalWithOptions(data, &stream, yaml.Strict())
	if listErr != nil {
		var single Node
		if err := yaml.UnmarshalWithOptions(data, &single, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("decode cst: %w", listErr)
		}
		stream = Stream{&single}
	}
	if len(stream) == 0 {
		return nil, ErrNoDocuments
	}
	for i, doc := range stream {
		if doc == nil {
			return nil, fmt.Errorf("decode cst: document %d is empty", i)
		}
		if doc.Type != Document {
			return nil, fmt.Errorf("decode cst: document %d has type %s, want %s", i, doc.Type, Document)
		}
	}
	return stream, nil
}

// Encode writes the stream as a YAML dump that Decode accepts.
func Encode(stream Stream) ([]byte, error) {
	data, err := yaml.Marshal(stream)
	if err != nil {
		return nil, fmt.Errorf("encode cst: %w", err)
	}
	return data, nil
}
