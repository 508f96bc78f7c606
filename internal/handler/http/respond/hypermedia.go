package respond

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Hypermedia protocol headers.
const (
	// HeaderHypermediaRequest is sent by the hypermedia client on every request.
	HeaderHypermediaRequest = "Datastar-Request"
	// HeaderSelector names the CSS selector a fragment patches.
	HeaderSelector = "datastar-selector"
	// HeaderMode names how a fragment merges into the selected element.
	HeaderMode = "datastar-mode"
)

// MergeMode is how a fragment is merged into the element named by its selector.
type MergeMode string

const (
	ModeReplace MergeMode = "replace"
	ModeInner   MergeMode = "inner"
	ModeAppend  MergeMode = "append"
)

// IsHypermedia reports whether r was sent by the hypermedia client. Only a
// case-insensitive "true" counts.
func IsHypermedia(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(HeaderHypermediaRequest)), "true")
}

// Response is one wire shape a handler can answer with. The set is closed:
// Fragment, Document, ScriptRedirect, HTTPRedirect, JSONBody and Signals.
type Response interface {
	write(w http.ResponseWriter, r *http.Request) error
}

// Fragment is a partial HTML document patched into the page at Selector.
type Fragment struct {
	Selector string
	Mode     MergeMode
	HTML     string
}

func (f Fragment) write(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set(HeaderSelector, f.Selector)
	w.Header().Set(HeaderMode, string(f.Mode))
	return writeHTML(w, http.StatusOK, f.HTML)
}

// Document is a complete HTML page.
type Document struct {
	Status int
	HTML   string
}

func (d Document) write(w http.ResponseWriter, _ *http.Request) error {
	status := d.Status
	if status == 0 {
		status = http.StatusOK
	}
	return writeHTML(w, status, d.HTML)
}

// ScriptRedirect navigates a hypermedia client to another page. The protocol
// can only patch the DOM, so the response appends a script to <body> that
// sets window.location.
//
// Build it with NewScriptRedirect; the zero value redirects nowhere.
type ScriptRedirect struct {
	target string
	script string
}

// NewScriptRedirect returns a ScriptRedirect to target. The target is encoded
// as a JSON string, with <, > and & escaped, before it is placed inside the
// script element, so a crafted URL cannot close the element or the string.
func NewScriptRedirect(target string) ScriptRedirect {
	return ScriptRedirect{
		target: target,
		script: fmt.Sprintf("<script>window.location.href = %s;</script>", EscapeScriptString(target)),
	}
}

// Target returns the unescaped navigation target.
func (s ScriptRedirect) Target() string { return s.target }

// HTML returns the script element.
func (s ScriptRedirect) HTML() string { return s.script }

func (s ScriptRedirect) write(w http.ResponseWriter, r *http.Request) error {
	return Fragment{Selector: "body", Mode: ModeAppend, HTML: s.script}.write(w, r)
}

// EscapeScriptString returns s as a JSON string literal safe to embed in an
// HTML <script> element.
func EscapeScriptString(s string) string {
	// json.Marshal of a string cannot fail; it escapes <, > and & as \u003c, \u003e and \u0026.
	b, _ := json.Marshal(s)
	return string(b)
}

// HTTPRedirect is a 303 See Other to Location.
type HTTPRedirect struct {
	Location string
}

func (h HTTPRedirect) write(w http.ResponseWriter, r *http.Request) error {
	http.Redirect(w, r, h.Location, http.StatusSeeOther)
	return nil
}

// JSONBody is a JSON document with its status code. A nil Body writes only
// the status, e.g. 204 after a delete.
type JSONBody struct {
	Status int
	Body   any
}

func (j JSONBody) write(w http.ResponseWriter, _ *http.Request) error {
	JSON(w, j.Status, j.Body)
	return nil
}

// Signals pushes values into the hypermedia client's reactive state without
// patching the DOM. Keys are kebab-case and sent camelCased.
type Signals struct {
	Values map[string]any
}

func (s Signals) write(w http.ResponseWriter, _ *http.Request) error {
	body, err := SignalsJSON(s.Values)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(body)
	return err
}

func writeHTML(w http.ResponseWriter, status int, html string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, html)
	return err
}

// Mutation describes the outcomes of a successful write for each kind of client.
type Mutation struct {
	// Fragment renders the refreshed list for hypermedia clients. Nil means
	// the target is a detail page, reached through a ScriptRedirect.
	Fragment func() (Fragment, error)
	// RedirectTo is the canonical page of the result.
	RedirectTo string
	// Status and Body answer JSON clients.
	Status int
	Body   any
}

// Negotiate picks the response shape for a successful mutation:
//
//	hypermedia client, list target    -> Fragment
//	hypermedia client, detail target  -> ScriptRedirect to RedirectTo
//	form submission                   -> HTTPRedirect to RedirectTo
//	JSON submission                   -> JSONBody{Status, Body}
//
// The only error is a Fragment render failure.
func Negotiate(r *http.Request, source PayloadSource, m Mutation) (Response, error) {
	if IsHypermedia(r) {
		if m.Fragment == nil {
			return NewScriptRedirect(m.RedirectTo), nil
		}
		frag, err := m.Fragment()
		if err != nil {
			return nil, fmt.Errorf("render fragment: %w", err)
		}
		return frag, nil
	}
	if source == PayloadForm {
		return HTTPRedirect{Location: m.RedirectTo}, nil
	}
	return JSONBody{Status: m.Status, Body: m.Body}, nil
}

// Write sends resp. A failure to build resp (err != nil) is answered through
// Fail; a failure while writing is logged, as the status is already sent.
func Write(w http.ResponseWriter, r *http.Request, resp Response, err error) {
	if err != nil {
		Fail(w, err)
		return
	}
	if werr := resp.write(w, r); werr != nil {
		slog.Default().Error("failed to write response",
			slog.String("path", r.URL.Path),
			slog.Any("error", SanitizeError(werr)))
	}
}
