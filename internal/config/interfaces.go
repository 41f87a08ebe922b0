package config

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Source is one layer of raw configuration (a file, the environment,
// command-line flags). Load returns the decoded tree of the layer; a nil
// tree means the layer contributes nothing.
type Source interface {
	// Name identifies the layer in error messages and logs.
	Name() string

	// Load decodes the layer.
	Load() (map[string]any, error)
}
