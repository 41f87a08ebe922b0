package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPath(t *testing.T) {
	tree := map[string]any{"Server": "scalar"}

	setPath(tree, PathServerHTTPPort, "80")
	setPath(tree, PathPrometheusScrapeEndpointBaseURIPath, "/m")
	setPath(tree, "", "ignored")

	assert.Equal(t, map[string]any{
		"Server": map[string]any{"HttpPort": "80"},
		"Prometheus": map[string]any{
			"ScrapeEndpoint": map[string]any{"BaseUriPath": "/m"},
		},
	}, tree)
}

func TestNormalizeKeys(t *testing.T) {
	in := map[string]any{
		"Server": map[string]any{"HttpPort": 1},
		"server": map[any]any{"Extra": true},
		"Top":    "v",
	}

	assert.Equal(t, map[string]any{
		"server": map[string]any{"httpport": 1, "extra": true},
		"top":    "v",
	}, normalizeKeys(in))
}

func TestPath_Segments(t *testing.T) {
	assert.Equal(t, []string{"Server", "HttpPort"}, PathServerHTTPPort.Segments())
	assert.Equal(t, []string{"a", "b"}, Path(".a..b.").Segments())
	assert.Nil(t, Path("").Segments())
	assert.Equal(t, Path("Server"), Path("").Child("Server"))
	assert.Equal(t, PathServerHTTPPort, Path("Server").Child("HttpPort"))
}
