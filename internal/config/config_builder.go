package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// documentBuilder collects raw layers and merges them into one [Document].
// Layers are added in increasing precedence.
type documentBuilder struct {
	layers []map[string]any
	err    error
}

func newDocumentBuilder() *documentBuilder {
	return &documentBuilder{
		layers: make([]map[string]any, 0, 3),
	}
}

func (b *documentBuilder) build() (*Document, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config document: %w", b.err)
	}

	merged := make(map[string]any)
	for _, layer := range b.layers {
		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return NewDocument(merged), nil
}

func (b *documentBuilder) withSource(src Source) *documentBuilder {
	tree, err := src.Load()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", src.Name(), err))
		return b
	}

	if len(tree) > 0 {
		b.layers = append(b.layers, normalizeKeys(tree))
	}
	return b
}

func (b *documentBuilder) withFile(path string, required bool) *documentBuilder {
	return b.withSource(newFileSource(path, required))
}
