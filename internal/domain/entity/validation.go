package entity

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
	maxURLLength = 2048

	// MaxNameLength bounds roaster and roast names, in runes.
	MaxNameLength = 120

	// MaxTextLength bounds free-text fields such as notes, in runes.
	MaxTextLength = 2000
)

// ValidateURL validates the format of an optional homepage URL.
// An empty URL is valid; anything else must be an absolute http(s) URL with a host.
func ValidateURL(field, rawURL string) error {
	if rawURL == "" {
		return nil
	}

	// DoS protection: enforce maximum URL length
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must not exceed %d characters", field, maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s is not a valid URL", field)}
	}

	// HTTPまたはHTTPSスキームのみ許可
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s must use http or https scheme", field)}
	}

	// ホスト名の検証
	if parsedURL.Host == "" {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s must have a valid host", field)}
	}

	return nil
}

// ValidateRequired reports a ValidationError when value is blank or longer
// than maxLen runes.
func ValidateRequired(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
	}
	return ValidateLength(field, value, maxLen)
}

// ValidateLength reports a ValidationError when value is longer than maxLen runes.
func ValidateLength(field, value string, maxLen int) error {
	if utf8.RuneCountInString(value) > maxLen {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is too long (max %d characters)", field, maxLen),
		}
	}
	return nil
}
