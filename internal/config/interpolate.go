package config

import "strings"

// interpolate substitutes ${key} placeholders in value with entries from
// with, in a single left-to-right pass. Substituted text is not rescanned,
// so self-referential values (a=${a}) terminate after one replacement.
// A placeholder whose key is missing from the map is kept verbatim, and an
// unterminated "${" passes through unchanged.
func interpolate(value string, with map[string]string) string {
	if !strings.Contains(value, "${") {
		return value
	}

	var out strings.Builder
	rest := value
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			out.WriteString(rest)
			return out.String()
		}
		end := strings.Index(rest[start:], "}")
		if end < 0 {
			out.WriteString(rest)
			return out.String()
		}

		out.WriteString(rest[:start])
		key := rest[start+2 : start+end]
		if replacement, ok := with[key]; ok {
			out.WriteString(replacement)
		} else {
			out.WriteString(rest[start : start+end+1])
		}
		rest = rest[start+end+1:]
	}
}

// interpolateAll rewrites every value of props through interpolate, looking
// placeholders up in props itself. Each value is rewritten exactly once
// against the map as it stood before interpolation started.
func interpolateAll(props map[string]string) map[string]string {
	resolved := make(map[string]string, len(props))
	for key, value := range props {
		resolved[key] = interpolate(value, props)
	}
	return resolved
}
