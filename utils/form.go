package utils

import "strings"

// DropBlank removes keys whose values are all blank, so that binding treats
// them as absent and applies the field's default.
func DropBlank(values map[string][]string) {
	for key, vs := range values {
		if strings.TrimSpace(strings.Join(vs, "")) == "" {
			delete(values, key)
		}
	}
}
