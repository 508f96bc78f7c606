package respond

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// PayloadSource records how a mutation body was encoded. Together with
// IsHypermedia it selects the response shape.
type PayloadSource int

const (
	PayloadJSON PayloadSource = iota + 1
	PayloadForm
)

func (s PayloadSource) String() string {
	switch s {
	case PayloadJSON:
		return "json"
	case PayloadForm:
		return "form"
	default:
		return "unknown"
	}
}

// ErrUnsupportedContentType is returned for bodies that are neither JSON nor
// form-encoded.
var ErrUnsupportedContentType = errors.New("unsupported content type")

// PayloadError is a body that did not decode, or did not validate, under its
// declared content type.
type PayloadError struct {
	Source PayloadSource
	Err    error
}

func (e *PayloadError) Error() string {
	msg := "invalid form payload"
	if e.Source == PayloadJSON {
		msg = "invalid JSON payload"
	}
	var verrs validator.ValidationErrors
	if errors.As(e.Err, &verrs) && len(verrs) > 0 {
		return msg + ": " + describeFieldError(verrs[0])
	}
	return msg
}

func (e *PayloadError) Unwrap() error { return e.Err }

// DecodePayload decodes r's body into dst, a struct carrying both json and
// form tags, and validates its `binding` rules.
//
//   - application/json decodes as JSON
//   - application/x-www-form-urlencoded or no Content-Type decodes as a form
//   - anything else fails with ErrUnsupportedContentType
func DecodePayload(r *http.Request, dst any) (PayloadSource, error) {
	registerTagNames()

	ct := strings.TrimSpace(r.Header.Get("Content-Type"))
	if ct == "" {
		// ParseForm only reads bodies that declare the form content type.
		r2 := r.Clone(r.Context())
		r2.Header.Set("Content-Type", binding.MIMEPOSTForm)
		if err := binding.FormPost.Bind(r2, dst); err != nil {
			return PayloadForm, &PayloadError{Source: PayloadForm, Err: err}
		}
		return PayloadForm, nil
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedContentType, ct)
	}

	switch mediaType {
	case binding.MIMEJSON:
		if err := binding.JSON.Bind(r, dst); err != nil {
			return PayloadJSON, &PayloadError{Source: PayloadJSON, Err: err}
		}
		return PayloadJSON, nil
	case binding.MIMEPOSTForm:
		if err := binding.FormPost.Bind(r, dst); err != nil {
			return PayloadForm, &PayloadError{Source: PayloadForm, Err: err}
		}
		return PayloadForm, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedContentType, mediaType)
	}
}

// SourceOf classifies a body-less mutation such as DELETE: JSON when the
// request declares or accepts JSON, form otherwise.
func SourceOf(r *http.Request) PayloadSource {
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && mediaType == binding.MIMEJSON {
		return PayloadJSON
	}
	if AcceptsJSON(r) {
		return PayloadJSON
	}
	return PayloadForm
}

// AcceptsJSON reports whether the Accept header names application/json.
func AcceptsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		if mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part)); err == nil && mediaType == binding.MIMEJSON {
			return true
		}
	}
	return false
}

var tagNamesOnce sync.Once

// registerTagNames makes validator report fields by their json name.
func registerTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min", "gte", "gt":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
