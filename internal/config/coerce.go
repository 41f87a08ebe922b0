package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errNotScalar   = errors.New("value is not a scalar")
	errNotObject   = errors.New("value is not an object")
	errNotIntegral = errors.New("value is not an integer")
	errOutOfRange  = errors.New("value is out of range")
)

func coerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, errOutOfRange
		}
		return int(v), nil
	case uint:
		if uint64(v) > math.MaxInt {
			return 0, errOutOfRange
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, errOutOfRange
		}
		return int(v), nil
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err == nil {
			return n, nil
		}
		f, ferr := v.Float64()
		if ferr != nil {
			return 0, err
		}
		return floatToInt(f)
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	default:
		return 0, errNotScalar
	}
}

func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errNotIntegral
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, errOutOfRange
	}
	return int(f), nil
}

func coerceFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, errNotScalar
	}
}

func coerceBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	default:
		return false, fmt.Errorf("%T is not a boolean", raw)
	}
}

func coerceString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), nil
	default:
		return "", errNotScalar
	}
}

func coerceLogLevel(raw any) (LogLevel, error) {
	switch v := raw.(type) {
	case LogLevel:
		if !v.valid() {
			return 0, errOutOfRange
		}
		return v, nil
	case string:
		return ParseLogLevel(v)
	default:
		n, err := coerceInt(raw)
		if err != nil {
			return 0, err
		}
		if !LogLevel(n).valid() {
			return 0, errOutOfRange
		}
		return LogLevel(n), nil
	}
}
