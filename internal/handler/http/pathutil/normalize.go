// Package pathutil holds URL path helpers shared by the HTTP handlers:
// ID parsing and path normalization for metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes, most specific first.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/roasters/\d+$`), Template: "/roasters/:id"},
	{Pattern: regexp.MustCompile(`^/roasts/\d+$`), Template: "/roasts/:id"},
}

// NormalizePath maps dynamic URL paths to their route template so metric
// labels stay bounded.
//
//	NormalizePath("/roasters/12")       // "/roasters/:id"
//	NormalizePath("/roasts/7/")         // "/roasts/:id"
//	NormalizePath("/roasters?page=2")   // "/roasters"
//	NormalizePath("/roasters/extract")  // "/roasters/extract" (unchanged)
//	NormalizePath("/unknown/path/123")  // "/unknown/path/123" (no match)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
