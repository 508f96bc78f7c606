package respond

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"
)

// KebabToCamel rewrites a kebab-case key to camelCase: "_roaster-name"
// becomes "_roasterName". Characters other than '-' are kept as they are.
func KebabToCamel(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i, part := range strings.Split(s, "-") {
		if i == 0 || part == "" {
			b.WriteString(part)
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

// SignalsJSON encodes values as one JSON object with camelCased keys.
func SignalsJSON(values map[string]any) ([]byte, error) {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[KebabToCamel(k)] = v
	}
	return json.Marshal(out)
}
