package skema

import (
	"context"

	js "github.com/reoring/skema/jsonschema"
)

// Parser is the type-erased view of a schema. Every Schema[T] satisfies it,
// which lets unions, declarative loaders and instrumentation hold schemas of
// different output types side by side.
type Parser interface {
	// Name returns the schema's base name.
	Name() string
	// ParseAny parses v and returns the result boxed as any.
	ParseAny(ctx context.Context, v any) (any, error)
	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

var _ Parser = Schema[any]{}

// Result is the outcome of SafeParse. Exactly one of Value and Issues is
// meaningful, selected by OK.
type Result[T any] struct {
	OK     bool
	Value  T
	Issues Issues
	// Input is the original value handed to SafeParse, kept for reporting.
	Input any
}

// Err returns the issues as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.OK {
		return nil
	}
	return r.Issues
}

// SafeParse parses v and reports data failures inside the Result instead of
// as an error. The error return is non-nil only for *InternalError, so a
// misconfigured schema is never mistaken for bad input.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (Result[T], error) {
	val, err := s.Parse(ctx, v)
	if err == nil {
		return Result[T]{OK: true, Value: val, Input: v}, nil
	}
	if iss, ok := AsIssues(err); ok {
		return Result[T]{Issues: iss, Input: v}, nil
	}
	return Result[T]{Input: v}, err
}

// Is returns true if v conforms to the schema s. Internal errors count as
// non-conformance.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	_, err := s.Parse(ctx, v)
	return err == nil
}

// MustParse is like Parse but panics on any error. It is meant for constants
// and tests.
func MustParse[T any](ctx context.Context, s Schema[T], v any) T {
	out, err := s.Parse(ctx, v)
	if err != nil {
		panic(err)
	}
	return out
}

// ---- Parse-time context options ----

type contextKey int

const (
	_ctxKeyCollectAll contextKey = iota
	_ctxKeyLanguage
)

// WithCollectAll returns a child context that makes array parsing keep going
// after a failing element and report the first failure of every element.
func WithCollectAll(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyCollectAll, enabled)
}

// IsCollectAll reports whether the current parse collects all element failures.
func IsCollectAll(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyCollectAll)
	b, _ := v.(bool)
	return b
}

// WithLanguage selects the message language for this parse only, overriding
// the process-wide i18n setting.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, _ctxKeyLanguage, lang)
}

// LanguageFrom returns the language set by WithLanguage, or "".
func LanguageFrom(ctx context.Context) string {
	v := ctx.Value(_ctxKeyLanguage)
	s, _ := v.(string)
	return s
}
