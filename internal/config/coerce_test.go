package config

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int
		wantErr bool
	}{
		{name: "int", raw: 8080, want: 8080},
		{name: "int64 from toml", raw: int64(9090), want: 9090},
		{name: "uint8", raw: uint8(7), want: 7},
		{name: "integral float from json", raw: 80.0, want: 80},
		{name: "json number", raw: json.Number("443"), want: 443},
		{name: "integral json number with fraction", raw: json.Number("8080.0"), want: 8080},
		{name: "json number with exponent", raw: json.Number("1e3"), want: 1000},
		{name: "fractional json number", raw: json.Number("8080.5"), wantErr: true},
		{name: "huge json number", raw: json.Number("1e300"), wantErr: true},
		{name: "string", raw: " 8443 ", want: 8443},
		{name: "negative string", raw: "-1", want: -1},
		{name: "fractional float", raw: 1.5, wantErr: true},
		{name: "nan", raw: math.NaN(), wantErr: true},
		{name: "word", raw: "http", wantErr: true},
		{name: "bool", raw: true, wantErr: true},
		{name: "huge uint64", raw: uint64(math.MaxUint64), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceInt(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    float64
		wantErr bool
	}{
		{name: "float", raw: 3.5, want: 3.5},
		{name: "int", raw: 2, want: 2},
		{name: "int64", raw: int64(-4), want: -4},
		{name: "json number", raw: json.Number("0.25"), want: 0.25},
		{name: "string", raw: "1e3", want: 1000},
		{name: "word", raw: "many", wantErr: true},
		{name: "map", raw: map[string]any{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceFloat(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceFloat_NaNString(t *testing.T) {
	got, err := coerceFloat("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		raw     any
		want    bool
		wantErr bool
	}{
		{raw: true, want: true},
		{raw: false, want: false},
		{raw: "false", want: false},
		{raw: "TRUE", want: true},
		{raw: "1", want: true},
		{raw: "yes", wantErr: true},
		{raw: 1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := coerceBool(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "%#v", tt.raw)
			continue
		}
		require.NoError(t, err, "%#v", tt.raw)
		assert.Equal(t, tt.want, got, "%#v", tt.raw)
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		raw     any
		want    string
		wantErr bool
	}{
		{raw: "/metrics", want: "/metrics"},
		{raw: "", want: ""},
		{raw: 42, want: "42"},
		{raw: 1.25, want: "1.25"},
		{raw: true, want: "true"},
		{raw: json.Number("7"), want: "7"},
		{raw: []any{"a"}, wantErr: true},
	}

	for _, tt := range tests {
		got, err := coerceString(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "%#v", tt.raw)
			continue
		}
		require.NoError(t, err, "%#v", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestCoerceLogLevel(t *testing.T) {
	tests := []struct {
		raw     any
		want    LogLevel
		wantErr bool
	}{
		{raw: "Warning", want: LogLevelWarning},
		{raw: "critical", want: LogLevelCritical},
		{raw: "6", want: LogLevelNone},
		{raw: 2, want: LogLevelInformation},
		{raw: int64(0), want: LogLevelTrace},
		{raw: 4.0, want: LogLevelError},
		{raw: LogLevelDebug, want: LogLevelDebug},
		{raw: -1, wantErr: true},
		{raw: "Verbose", wantErr: true},
		{raw: true, wantErr: true},
	}

	for _, tt := range tests {
		got, err := coerceLogLevel(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "%#v", tt.raw)
			continue
		}
		require.NoError(t, err, "%#v", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestCoercionError(t *testing.T) {
	err := &CoercionError{Path: PathServerHTTPPort, Value: "x", Target: "integer", Err: errNotIntegral}

	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorIs(t, err, errNotIntegral)
	assert.Contains(t, err.Error(), "Server.HttpPort")
	assert.Contains(t, err.Error(), "integer")

	objErr := &CoercionError{Path: PathServerHTTPPort, Target: "integer", Err: errNotScalar}
	assert.Contains(t, objErr.Error(), "cannot use an object as integer")
}
