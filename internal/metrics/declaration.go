// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v3"
)

// Declaration is the parsed metric declaration file.
type Declaration struct {
	Version string             `yaml:"version"`
	Metrics []MetricDefinition `yaml:"metrics"`
}

// MetricDefinition describes one exposed gauge. Labels are attached to every
// sample of the metric.
type MetricDefinition struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Labels      map[string]string `yaml:"labels"`
}

// LoadDeclaration reads and validates the declaration at path.
func LoadDeclaration(path string) (*Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDeclarationNotFound, path)
		}
		return nil, fmt.Errorf("error reading metric declaration %s: %w", path, err)
	}

	return ParseDeclaration(data)
}

// ParseDeclaration decodes a YAML declaration. An empty document yields an
// empty declaration.
func ParseDeclaration(data []byte) (*Declaration, error) {
	decl := new(Declaration)
	if err := yaml.Unmarshal(data, decl); err != nil {
		return nil, fmt.Errorf("error decoding metric declaration: %w", err)
	}

	if err := decl.validate(); err != nil {
		return nil, err
	}

	return decl, nil
}

func (d *Declaration) validate() error {
	seen := make(map[string]struct{}, len(d.Metrics))
	for i, m := range d.Metrics {
		if !model.IsValidLegacyMetricName(model.LabelValue(m.Name)) {
			return fmt.Errorf("%w: metrics[%d] has invalid name %q", ErrInvalidDeclaration, i, m.Name)
		}
		if _, ok := seen[m.Name]; ok {
			return fmt.Errorf("%w: metric %q is declared twice", ErrInvalidDeclaration, m.Name)
		}
		seen[m.Name] = struct{}{}

		for label := range m.Labels {
			if !model.LabelNameRE.MatchString(label) {
				return fmt.Errorf("%w: metric %q has invalid label %q", ErrInvalidDeclaration, m.Name, label)
			}
		}
	}

	return nil
}
