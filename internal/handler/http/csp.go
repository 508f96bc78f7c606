package http

import (
	"net/http"
	"strings"

	"brewlog/pkg/security/csp"
)

// CSPConfig selects a policy per path prefix. The longest matching prefix
// wins; Default covers everything else.
type CSPConfig struct {
	Enabled      bool
	Default      *csp.Policy
	PathPolicies map[string]*csp.Policy
	ReportOnly   bool
}

type cspHeader struct {
	prefix string
	name   string
	value  string
}

// ContentSecurityPolicy returns middleware that sets the CSP header. Header
// values are rendered once here, so policies may not change afterwards.
func ContentSecurityPolicy(cfg CSPConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	render := func(prefix string, p *csp.Policy) (cspHeader, bool) {
		if p == nil {
			return cspHeader{}, false
		}
		value := p.Build()
		if value == "" {
			return cspHeader{}, false
		}
		name := p.HeaderName()
		if cfg.ReportOnly {
			name = csp.HeaderReportOnly
		}
		return cspHeader{prefix: prefix, name: name, value: value}, true
	}

	fallback, hasFallback := render("", cfg.Default)
	headers := make([]cspHeader, 0, len(cfg.PathPolicies))
	for prefix, p := range cfg.PathPolicies {
		if h, ok := render(prefix, p); ok {
			headers = append(headers, h)
		}
	}

	selectHeader := func(path string) (cspHeader, bool) {
		var best cspHeader
		found := false
		for _, h := range headers {
			if strings.HasPrefix(path, h.prefix) && (!found || len(h.prefix) > len(best.prefix)) {
				best, found = h, true
			}
		}
		if found {
			return best, true
		}
		return fallback, hasFallback
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h, ok := selectHeader(r.URL.Path); ok {
				w.Header().Set(h.name, h.value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
