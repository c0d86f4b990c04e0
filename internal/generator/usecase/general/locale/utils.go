package locale

import (
	"strings"
)

// Normalize returns locale code in registry form: lower case with "-" separator.
func Normalize(code string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(code)), "_", Separator)
}

// Split splits locale code into master and region parts.
func Split(code string) (string, string) {
	master, region, _ := strings.Cut(Normalize(code), Separator)

	return master, region
}

// merge returns new map with override recursively merged over base.
// Nested maps are merged key by key, any other value of override replaces base value.
// Neither argument is modified.
func merge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))

	for k, v := range base {
		merged[k] = v
	}

	for k, overrideValue := range override {
		baseMap, baseIsMap := merged[k].(map[string]any)
		overrideMap, overrideIsMap := overrideValue.(map[string]any)

		if baseIsMap && overrideIsMap {
			merged[k] = merge(baseMap, overrideMap)

			continue
		}

		merged[k] = overrideValue
	}

	return merged
}
