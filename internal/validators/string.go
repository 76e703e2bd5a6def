// Package validators holds the predicate and transformer catalogue behind the
// dsl rule families. Every function is pure: no state, no coercion, no I/O.
// Predicates take the value as any and reject anything of the wrong Go type.
package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"
)

// IsString reports whether v is a Go string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// Whitespace reports whether v is a string made only of white space.
func Whitespace(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// Length counts characters (runes), not bytes.
func Length(s string) int { return utf8.RuneCountInString(s) }

// MinLength reports whether v is a string with at least n characters.
func MinLength(v any, n int) bool {
	s, ok := v.(string)
	return ok && Length(s) >= n
}

// MaxLength reports whether v is a string with at most n characters.
func MaxLength(v any, n int) bool {
	s, ok := v.(string)
	return ok && Length(s) <= n
}

// ExactLength reports whether v is a string with exactly n characters.
func ExactLength(v any, n int) bool {
	s, ok := v.(string)
	return ok && Length(s) == n
}

// Matches reports whether v is a string matched by re. A match timeout counts
// as a mismatch.
func Matches(v any, re *regexp2.Regexp) bool {
	s, ok := v.(string)
	if !ok || re == nil {
		return false
	}
	m, err := re.MatchString(s)
	return err == nil && m
}

func Includes(v any, sub string) bool {
	s, ok := v.(string)
	return ok && strings.Contains(s, sub)
}

func StartsWith(v any, prefix string) bool {
	s, ok := v.(string)
	return ok && strings.HasPrefix(s, prefix)
}

func EndsWith(v any, suffix string) bool {
	s, ok := v.(string)
	return ok && strings.HasSuffix(s, suffix)
}

// Lowercase reports whether v is a string with no upper-case letters.
func Lowercase(v any) bool {
	s, ok := v.(string)
	return ok && s == strings.ToLower(s)
}

// Uppercase reports whether v is a string with no lower-case letters.
func Uppercase(v any) bool {
	s, ok := v.(string)
	return ok && s == strings.ToUpper(s)
}

// Transformers. Non-string input is returned unchanged.

func Trim(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}

func ToLower(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToLower(s)
	}
	return v
}

func ToUpper(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToUpper(s)
	}
	return v
}

// NormalForm resolves a Unicode normalization form name. An empty or unknown
// name selects NFC.
func NormalForm(name string) norm.Form {
	switch strings.ToUpper(name) {
	case "NFD":
		return norm.NFD
	case "NFKC":
		return norm.NFKC
	case "NFKD":
		return norm.NFKD
	default:
		return norm.NFC
	}
}

// Normalize applies Unicode normalization to string input.
func Normalize(v any, form norm.Form) any {
	if s, ok := v.(string); ok {
		return form.String(s)
	}
	return v
}
