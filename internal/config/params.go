package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Params holds the numeric and boolean knobs of one fault policy. Values come
// from the strategy yaml file and may be overridden per key at startup.
type Params map[string]any

// ApplyOverrides applies "key=value" pairs on top of the loaded parameters.
// The value is coerced to the type of the existing entry, so an override can
// never change a parameter's type. Unknown keys are rejected.
func (p Params) ApplyOverrides(overrides []string) error {
	for _, override := range overrides {
		key, value, found := strings.Cut(override, "=")
		if !found {
			return fmt.Errorf("malformed override %q, expected key=value", override)
		}
		existing, ok := p[key]
		if !ok {
			return fmt.Errorf("override for unknown parameter %q", key)
		}
		switch existing.(type) {
		case bool:
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("override %s: %w", key, err)
			}
			p[key] = parsed
		case int:
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("override %s: %w", key, err)
			}
			p[key] = parsed
		case float64:
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("override %s: %w", key, err)
			}
			p[key] = parsed
		case string:
			p[key] = value
		default:
			return fmt.Errorf("override %s: unsupported parameter type %T", key, existing)
		}
	}
	return nil
}

// Float reads a float parameter, accepting yaml integers as well.
func (p Params) Float(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("missing parameter %q", key)
	}
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("parameter %q is %T, want float", key, p[key])
}

func (p Params) Int(key string) (int, error) {
	v, ok := p[key].(int)
	if !ok {
		return 0, fmt.Errorf("parameter %q is %T, want int", key, p[key])
	}
	return v, nil
}

func (p Params) Bool(key string) (bool, error) {
	v, ok := p[key].(bool)
	if !ok {
		return false, fmt.Errorf("parameter %q is %T, want bool", key, p[key])
	}
	return v, nil
}

// IntSlice reads a list parameter. yaml.v3 decodes sequences as []any, so the
// elements are converted one by one.
func (p Params) IntSlice(key string) ([]int, error) {
	raw, ok := p[key].([]any)
	if !ok {
		return nil, fmt.Errorf("parameter %q is %T, want list of int", key, p[key])
	}
	values := make([]int, 0, len(raw))
	for i, elem := range raw {
		v, ok := elem.(int)
		if !ok {
			return nil, fmt.Errorf("parameter %q element %d is %T, want int", key, i, elem)
		}
		values = append(values, v)
	}
	return values, nil
}

// IntOr reads an int parameter, falling back to a default when absent.
func (p Params) IntOr(key string, fallback int) (int, error) {
	if _, ok := p[key]; !ok {
		return fallback, nil
	}
	return p.Int(key)
}
