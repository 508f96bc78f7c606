// Package csp builds Content-Security-Policy header values.
//
//	policy := csp.New().
//	    DefaultSrc("'self'").
//	    ScriptSrc("'self'", "'unsafe-eval'").
//	    Build()
//	// "default-src 'self'; script-src 'self' 'unsafe-eval'"
package csp

import (
	"strings"
)

const (
	HeaderEnforce    = "Content-Security-Policy"
	HeaderReportOnly = "Content-Security-Policy-Report-Only"
)

// directiveOrder fixes the rendering order so headers are stable.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
	"report-uri",
}

// Policy is a set of CSP directives. Setters return the policy for
// chaining and are not safe for concurrent use; build the header once and
// share the string.
type Policy struct {
	directives map[string][]string
	reportOnly bool
}

// New returns an empty policy.
func New() *Policy {
	return &Policy{directives: make(map[string][]string)}
}

func (p *Policy) set(directive string, sources []string) *Policy {
	p.directives[directive] = append([]string(nil), sources...)
	return p
}

// DefaultSrc sets default-src, the fallback for the other fetch directives.
func (p *Policy) DefaultSrc(sources ...string) *Policy { return p.set("default-src", sources) }

// ScriptSrc sets script-src.
func (p *Policy) ScriptSrc(sources ...string) *Policy { return p.set("script-src", sources) }

// StyleSrc sets style-src.
func (p *Policy) StyleSrc(sources ...string) *Policy { return p.set("style-src", sources) }

// ImgSrc sets img-src.
func (p *Policy) ImgSrc(sources ...string) *Policy { return p.set("img-src", sources) }

// FontSrc sets font-src.
func (p *Policy) FontSrc(sources ...string) *Policy { return p.set("font-src", sources) }

// ConnectSrc sets connect-src, which covers the hypermedia client's fetches.
func (p *Policy) ConnectSrc(sources ...string) *Policy { return p.set("connect-src", sources) }

// FrameAncestors sets frame-ancestors.
func (p *Policy) FrameAncestors(sources ...string) *Policy {
	return p.set("frame-ancestors", sources)
}

// FormAction sets form-action.
func (p *Policy) FormAction(sources ...string) *Policy { return p.set("form-action", sources) }

// BaseURI sets base-uri.
func (p *Policy) BaseURI(sources ...string) *Policy { return p.set("base-uri", sources) }

// ObjectSrc sets object-src.
func (p *Policy) ObjectSrc(sources ...string) *Policy { return p.set("object-src", sources) }

// ReportURI sets report-uri. An empty uri removes the directive.
func (p *Policy) ReportURI(uri string) *Policy {
	if uri == "" {
		delete(p.directives, "report-uri")
		return p
	}
	return p.set("report-uri", []string{uri})
}

// ReportOnly switches the policy to the report-only header.
func (p *Policy) ReportOnly(enabled bool) *Policy {
	p.reportOnly = enabled
	return p
}

// Build renders the header value. Directives without sources are skipped;
// an empty policy renders "".
func (p *Policy) Build() string {
	parts := make([]string, 0, len(p.directives))
	for _, directive := range directiveOrder {
		if sources := p.directives[directive]; len(sources) > 0 {
			parts = append(parts, directive+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// HeaderName returns the header the policy is sent in.
func (p *Policy) HeaderName() string {
	if p.reportOnly {
		return HeaderReportOnly
	}
	return HeaderEnforce
}

// ScriptCDN hosts the hypermedia client bundle loaded by every page.
const ScriptCDN = "https://cdn.jsdelivr.net"

// PagePolicy suits the server-rendered pages. The hypermedia client is
// loaded from ScriptCDN and evaluates attribute expressions, which needs
// 'unsafe-eval'; it also runs the redirect scripts sent after a mutation,
// which needs 'unsafe-inline'. Every fetch and form post stays same-origin.
func PagePolicy() *Policy {
	return New().
		DefaultSrc("'self'").
		ScriptSrc("'self'", ScriptCDN, "'unsafe-inline'", "'unsafe-eval'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc("'self'", "data:").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		FormAction("'self'").
		BaseURI("'self'").
		ObjectSrc("'none'")
}

// APIPolicy suits responses that are never rendered as documents: JSON,
// health probes and metrics.
func APIPolicy() *Policy {
	return New().
		DefaultSrc("'none'").
		FrameAncestors("'none'").
		BaseURI("'none'").
		FormAction("'none'")
}
