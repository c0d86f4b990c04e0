package common

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	templateActionRe = regexp.MustCompile(`{{-?(.*?)-?}}`)
	templateFieldRe  = regexp.MustCompile(`(?:^|[\s(|])\.([A-Za-z_][A-Za-z0-9_]*)`)
)

// AnyToStruct converts map or struct to selected struct.
func AnyToStruct[T any](data any) (*T, error) {
	var res T

	bytesData, err := yaml.Marshal(data)
	if err != nil {
		return &res, errors.New(err.Error())
	}

	decoder := yaml.NewDecoder(bytes.NewReader(bytesData))
	decoder.KnownFields(true)

	err = decoder.Decode(&res)
	if err != nil {
		return &res, errors.New(err.Error())
	}

	return &res, nil
}

// GetKey function returns unique string key separated by point.
func GetKey(prefix, name string) string {
	if prefix == "" {
		prefix = "?"
	}

	if name == "" {
		name = "?"
	}

	return strings.Join([]string{prefix, name}, ".")
}

// MakeSet creates new set from slice values.
func MakeSet[T comparable](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}

func CtxClosed(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// ExtractValuesFromTemplate returns names of row values referenced as `.name` inside template actions.
// Every name is returned once, in order of first appearance.
func ExtractValuesFromTemplate(template string) []string {
	values := make([]string, 0)
	seen := make(map[string]struct{})

	for _, action := range templateActionRe.FindAllStringSubmatch(template, -1) {
		for _, match := range templateFieldRe.FindAllStringSubmatch(strings.TrimSpace(action[1]), -1) {
			if _, ok := seen[match[1]]; ok {
				continue
			}

			seen[match[1]] = struct{}{}
			values = append(values, match[1])
		}
	}

	return values
}

// TopologicalSort sorts the given items so that every item follows its dependencies.
// Items without mutual dependencies keep their input order.
// Returns the sorted node names, a flag indicating if any dependencies exist,
// and an error if a dependency is unknown or a cycle is detected.
func TopologicalSort[T any](items []T, nodeFunc func(T) (string, []string)) ([]string, bool, error) {
	var (
		names           = make([]string, len(items))
		dependencies    = make(map[string][]string, len(items))
		hasDependencies bool
	)

	for i, item := range items {
		name, deps := nodeFunc(item)
		if len(deps) > 0 {
			hasDependencies = true
		}

		names[i] = name
		dependencies[name] = deps
	}

	if !hasDependencies {
		return names, false, nil
	}

	pending := make(map[string]int, len(names))
	dependents := make(map[string][]string, len(names))

	for _, name := range names {
		for _, dep := range dependencies[name] {
			if _, ok := dependencies[dep]; !ok {
				return nil, false, errors.Errorf("%q depends on unknown node %q", name, dep)
			}

			pending[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	sorted := make([]string, 0, len(names))
	emitted := make(map[string]struct{}, len(names))

	for len(sorted) < len(names) {
		progressed := false

		for _, name := range names {
			if _, ok := emitted[name]; ok || pending[name] > 0 {
				continue
			}

			emitted[name] = struct{}{}
			sorted = append(sorted, name)
			progressed = true

			for _, dependent := range dependents[name] {
				pending[dependent]--
			}

			break
		}

		if !progressed {
			return nil, false, errors.New("dependency cycle detected")
		}
	}

	return sorted, true, nil
}
