package provider

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Params type is set of named method arguments. Values may come from JSON (float64),
// YAML (int) or query string (string), getters convert them to expected type.
type Params map[string]any

// Int returns integer param or def if param is absent.
func (p Params) Int(name string, def int) (int, error) {
	value, ok := p[name]
	if !ok || value == nil {
		return def, nil
	}

	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil //nolint:gosec
	case float64:
		if v != float64(int(v)) {
			return 0, paramErrorf(name, "expected integer, got %v", v)
		}

		return int(v), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, paramErrorf(name, "expected integer, got %q", v)
		}

		return i, nil
	default:
		return 0, paramErrorf(name, "expected integer, got %T", value)
	}
}

// Float returns float param or def if param is absent.
func (p Params) Float(name string, def float64) (float64, error) {
	value, ok := p[name]
	if !ok || value == nil {
		return def, nil
	}

	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, paramErrorf(name, "expected number, got %q", v)
		}

		return f, nil
	default:
		return 0, paramErrorf(name, "expected number, got %T", value)
	}
}

// Bool returns boolean param or def if param is absent.
func (p Params) Bool(name string, def bool) (bool, error) {
	value, ok := p[name]
	if !ok || value == nil {
		return def, nil
	}

	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, paramErrorf(name, "expected boolean, got %q", v)
		}

		return b, nil
	default:
		return false, paramErrorf(name, "expected boolean, got %T", value)
	}
}

// String returns string param or def if param is absent.
func (p Params) String(name string, def string) (string, error) {
	value, ok := p[name]
	if !ok || value == nil {
		return def, nil
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", paramErrorf(name, "expected string, got %T", value)
	}
}

// Strings returns list param. Comma separated string is split into items.
func (p Params) Strings(name string) ([]string, error) {
	value, ok := p[name]
	if !ok || value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case []string:
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}

		return strings.Split(v, ","), nil
	case []any:
		items := make([]string, 0, len(v))

		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, paramErrorf(name, "expected list of strings, got item %T", item)
			}

			items = append(items, s)
		}

		return items, nil
	default:
		return nil, paramErrorf(name, "expected list of strings, got %T", value)
	}
}

// Gender returns gender param, empty gender means random one.
func (p Params) Gender(name string) (Gender, error) {
	s, err := p.String(name, "")
	if err != nil {
		return "", err
	}

	g := Gender(strings.ToLower(s))
	if g != "" && g != Female && g != Male {
		return "", paramErrorf(name, "expected %q or %q, got %q", Female, Male, s)
	}

	return g, nil
}

// Time returns date param in "2006-01-02" layout or def if param is absent.
func (p Params) Time(name string, def time.Time) (time.Time, error) {
	value, ok := p[name]
	if !ok || value == nil {
		return def, nil
	}

	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.DateOnly, strings.TrimSpace(v))
		if err != nil {
			return time.Time{}, paramErrorf(name, "expected date %q, got %q", time.DateOnly, v)
		}

		return t, nil
	default:
		return time.Time{}, paramErrorf(name, "expected date, got %T", value)
	}
}

// oneOf checks that value is one of allowed ones.
func oneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}

	return paramErrorf(name, "expected one of %s, got %q", strings.Join(allowed, ", "), value)
}
