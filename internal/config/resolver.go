// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// schemaNode describes one node of the runtime configuration: an object
// with children, or a leaf with a binder that writes the resolved value.
type schemaNode struct {
	name     string
	children []schemaNode
	bind     func(path Path, supplied Optional[Value], cfg *RuntimeConfiguration) error
}

func object(name string, children ...schemaNode) schemaNode {
	return schemaNode{name: name, children: children}
}

// leaf binds a field that always resolves to a concrete value: the supplied
// one when present, the default table entry otherwise.
func leaf[T any](name, target string, coerce func(any) (T, error), field func(*RuntimeConfiguration) *T) schemaNode {
	return schemaNode{
		name: name,
		bind: func(path Path, supplied Optional[Value], cfg *RuntimeConfiguration) error {
			v, ok := supplied.Get()
			if !ok {
				def, err := defaultFor[T](path)
				if err != nil {
					return err
				}
				*field(cfg) = def
				return nil
			}

			resolved, err := coerceValue(path, v, target, coerce)
			if err != nil {
				return err
			}
			*field(cfg) = resolved
			return nil
		},
	}
}

// optionalLeaf binds a field without a default: absence resolves to nil.
func optionalLeaf[T any](name, target string, coerce func(any) (T, error), field func(*RuntimeConfiguration) **T) schemaNode {
	return schemaNode{
		name: name,
		bind: func(path Path, supplied Optional[Value], cfg *RuntimeConfiguration) error {
			v, ok := supplied.Get()
			if !ok {
				*field(cfg) = nil
				return nil
			}

			resolved, err := coerceValue(path, v, target, coerce)
			if err != nil {
				return err
			}
			*field(cfg) = &resolved
			return nil
		},
	}
}

func coerceValue[T any](path Path, v Value, target string, coerce func(any) (T, error)) (T, error) {
	var zero T
	if v.IsObject {
		return zero, &CoercionError{Path: path, Value: v.Raw, Target: target, Err: errNotScalar}
	}

	resolved, err := coerce(v.Raw)
	if err != nil {
		return zero, &CoercionError{Path: path, Value: v.Raw, Target: target, Err: err}
	}
	return resolved, nil
}

func defaultFor[T any](path Path) (T, error) {
	var zero T
	def, ok := DefaultValue(path)
	if !ok {
		return zero, fmt.Errorf("%w for %s", errNoDefault, path)
	}
	typed, ok := def.(T)
	if !ok {
		return zero, fmt.Errorf("default for %s is %T, want %T", path, def, zero)
	}
	return typed, nil
}

// runtimeSchema is the complete target of resolution. Its shape mirrors
// [RuntimeConfiguration] and its leaf paths are the keys of the default
// table.
var runtimeSchema = object("",
	object("Server",
		leaf("HttpPort", "integer", coerceInt,
			func(c *RuntimeConfiguration) *int { return &c.Server.HTTPPort }),
	),
	object("Telemetry",
		leaf("DefaultVerbosity", "log level", coerceLogLevel,
			func(c *RuntimeConfiguration) *LogLevel { return &c.Telemetry.DefaultVerbosity }),
		object("ApplicationInsights",
			leaf("IsEnabled", "boolean", coerceBool,
				func(c *RuntimeConfiguration) *bool { return &c.Telemetry.ApplicationInsights.IsEnabled }),
			optionalLeaf("InstrumentationKey", "string", coerceString,
				func(c *RuntimeConfiguration) **string { return &c.Telemetry.ApplicationInsights.InstrumentationKey }),
			leaf("Verbosity", "log level", coerceLogLevel,
				func(c *RuntimeConfiguration) *LogLevel { return &c.Telemetry.ApplicationInsights.Verbosity }),
		),
		object("ContainerLogs",
			leaf("IsEnabled", "boolean", coerceBool,
				func(c *RuntimeConfiguration) *bool { return &c.Telemetry.ContainerLogs.IsEnabled }),
			leaf("Verbosity", "log level", coerceLogLevel,
				func(c *RuntimeConfiguration) *LogLevel { return &c.Telemetry.ContainerLogs.Verbosity }),
		),
	),
	object("Prometheus",
		leaf("EnableMetricTimestamps", "boolean", coerceBool,
			func(c *RuntimeConfiguration) *bool { return &c.Prometheus.EnableMetricTimestamps }),
		leaf("MetricUnavailableValue", "number", coerceFloat,
			func(c *RuntimeConfiguration) *float64 { return &c.Prometheus.MetricUnavailableValue }),
		object("ScrapeEndpoint",
			leaf("BaseUriPath", "string", coerceString,
				func(c *RuntimeConfiguration) *string { return &c.Prometheus.ScrapeEndpoint.BaseURIPath }),
		),
	),
	object("MetricsConfiguration",
		leaf("AbsolutePath", "string", coerceString,
			func(c *RuntimeConfiguration) *string { return &c.MetricsConfiguration.AbsolutePath }),
	),
)

// walk resolves n and everything below it. Objects are always descended
// into, even when absent from the document, so each leaf gets its own
// default.
func (n schemaNode) walk(doc *Document, path Path, cfg *RuntimeConfiguration) error {
	supplied := doc.Lookup(path)
	if n.bind != nil {
		return n.bind(path, supplied, cfg)
	}

	if v, ok := supplied.Get(); ok && !v.IsObject {
		return &CoercionError{Path: path, Value: v.Raw, Target: "object", Err: errNotObject}
	}

	for _, child := range n.children {
		if err := child.walk(doc, path.Child(child.name), cfg); err != nil {
			return err
		}
	}
	return nil
}

func (n schemaNode) leaves(path Path, acc *[]Path) {
	if n.bind != nil {
		*acc = append(*acc, path)
		return
	}
	for _, child := range n.children {
		child.leaves(path.Child(child.name), acc)
	}
}

// SchemaPaths lists every leaf path of [RuntimeConfiguration] in schema
// order.
func SchemaPaths() []Path {
	var paths []Path
	runtimeSchema.leaves("", &paths)
	return paths
}

// Resolve produces the runtime configuration from doc, filling every leaf
// that was not supplied from the default table. A nil doc is treated as
// empty.
//
// Resolve never fails on missing values. It fails only when a supplied
// value cannot be coerced to its field type; the returned error then
// matches [ErrInvalidValue] and no partial configuration is returned.
func Resolve(doc *Document) (RuntimeConfiguration, error) {
	if doc == nil {
		doc = EmptyDocument()
	}

	var cfg RuntimeConfiguration
	if err := runtimeSchema.walk(doc, "", &cfg); err != nil {
		return RuntimeConfiguration{}, fmt.Errorf("error resolving runtime configuration: %w", err)
	}
	return cfg, nil
}
