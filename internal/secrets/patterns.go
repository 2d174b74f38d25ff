// Package secrets identifies attribute names that carry credentials so their
// values can be masked before they are logged.
package secrets

import (
	"regexp"
	"strings"
)

// Redacted replaces the value of a secret attribute.
const Redacted = "[REDACTED]"

// DefaultSecretPatterns contains the default patterns used to identify
// attribute names whose values are secrets. Matching is case-insensitive
// and ignores separators, so "id_token", "IDToken" and "id-token" all match.
var DefaultSecretPatterns = []string{
	"PASSWORD",
	"SECRET",
	"TOKEN",
	"AUTHORIZATION",
	"APIKEY",
	"PRIVATEKEY",
	"ACCESSKEY",
}

// BearerPattern matches "Bearer <token>" strings that appear as raw values.
var BearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// JWTPattern matches raw JWT strings. Segments shorter than 10 characters
// are ignored so version numbers and hostnames do not match.
var JWTPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// IsSecretKey reports whether key matches one of the default patterns.
func IsSecretKey(key string) bool {
	return IsSecretKeyWithPatterns(key, DefaultSecretPatterns)
}

// IsSecretKeyWithPatterns reports whether key matches any of the provided patterns.
func IsSecretKeyWithPatterns(key string, patterns []string) bool {
	normalized := normalize(key)
	if normalized == "" {
		return false
	}
	for _, pattern := range patterns {
		if strings.Contains(normalized, normalize(pattern)) {
			return true
		}
	}
	return false
}

// GetSecretKeys returns the keys of m whose values should not be logged.
func GetSecretKeys[V any](m map[string]V) []string {
	names := []string{}
	for key := range m {
		if IsSecretKey(key) {
			names = append(names, key)
		}
	}
	return names
}

// ValueMasker rewrites a string value that may embed a credential.
type ValueMasker func(string) string

// RedactMap returns a copy of m with secret values replaced by Redacted.
// Nested maps are redacted recursively and remaining string values pass
// through mask when it is not nil; m itself is never modified.
func RedactMap(m map[string]any, mask ValueMasker) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for key, value := range m {
		if IsSecretKey(key) {
			out[key] = Redacted
			continue
		}
		switch v := value.(type) {
		case map[string]any:
			out[key] = RedactMap(v, mask)
		case map[string]string:
			out[key] = RedactStringMap(v, mask)
		case string:
			out[key] = mask.apply(v)
		default:
			out[key] = value
		}
	}
	return out
}

// RedactStringMap is RedactMap for string-valued maps such as HTTP headers.
func RedactStringMap(m map[string]string, mask ValueMasker) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for key, value := range m {
		if IsSecretKey(key) {
			out[key] = Redacted
			continue
		}
		out[key] = mask.apply(value)
	}
	return out
}

func (mask ValueMasker) apply(value string) string {
	if mask == nil {
		return value
	}
	return mask(value)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '.', ' ':
			return -1
		}
		return r
	}, strings.ToUpper(s))
}
