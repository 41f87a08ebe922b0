// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileSource decodes a configuration file. The decoder is picked from the
// file extension: .yaml/.yml, .json or .toml.
//
// A missing file is an error only when the path was requested explicitly;
// otherwise the layer is empty.
type fileSource struct {
	path     string
	required bool
}

func newFileSource(path string, required bool) *fileSource {
	return &fileSource{path: path, required: required}
}

func (s *fileSource) Name() string {
	return "file " + s.path
}

func (s *fileSource) Load() (map[string]any, error) {
	if s.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if s.required {
				return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, s.path)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("error reading config file %s: %w", s.path, err)
	}

	tree, err := decodeFile(s.path, data)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", s.path, err)
	}
	return tree, nil
}

func decodeFile(path string, data []byte) (map[string]any, error) {
	tree := make(map[string]any)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&tree); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &tree); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return tree, nil
}
