package locale

import (
	"strings"
)

// Document type is parsed content of one data file for one locale.
// Documents are shared between callers through the loader cache and must not be modified.
type Document map[string]any

// Get returns value by dotted path, e.g. "street.name".
func (d Document) Get(path string) (any, bool) {
	var current any = map[string]any(d)

	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// String returns string value by dotted path.
func (d Document) String(path string) (string, error) {
	value, ok := d.Get(path)
	if !ok {
		return "", &KeyError{Path: path, Reason: "not found"}
	}

	s, ok := value.(string)
	if !ok {
		return "", &KeyError{Path: path, Reason: "not a string"}
	}

	return s, nil
}

// Strings returns list of strings by dotted path. A single string is returned as one-element list.
func (d Document) Strings(path string) ([]string, error) {
	value, ok := d.Get(path)
	if !ok {
		return nil, &KeyError{Path: path, Reason: "not found"}
	}

	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		strs := make([]string, 0, len(v))

		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &KeyError{Path: path, Reason: "list contains non-string value"}
			}

			strs = append(strs, s)
		}

		return strs, nil
	default:
		return nil, &KeyError{Path: path, Reason: "not a list of strings"}
	}
}

// Map returns nested document by dotted path.
func (d Document) Map(path string) (Document, error) {
	value, ok := d.Get(path)
	if !ok {
		return nil, &KeyError{Path: path, Reason: "not found"}
	}

	m, ok := value.(map[string]any)
	if !ok {
		return nil, &KeyError{Path: path, Reason: "not an object"}
	}

	return m, nil
}

// Has reports whether value by dotted path exists.
func (d Document) Has(path string) bool {
	_, ok := d.Get(path)

	return ok
}
