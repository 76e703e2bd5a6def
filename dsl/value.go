package dsl

import (
	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/validators"
	js "github.com/reoring/skema/jsonschema"
)

// ValueSchema is the builder for schemas whose base type is a value class
// rather than a Go type (unknown, null, undefined, nil). The output is any.
type ValueSchema struct {
	skema.Schema[any]
}

func valueSchema(base string, msg []string) ValueSchema {
	return ValueSchema{skema.New[any](Registry(), mustRule(base, nil, msg), nil, nil)}
}

// Unknown accepts every value, including null and absent.
func Unknown() ValueSchema { return valueSchema("unknown", nil) }

// Null accepts only null.
func Null(msg ...string) ValueSchema { return valueSchema("null", msg) }

// Undefined accepts only the absent sentinel.
func Undefined(msg ...string) ValueSchema { return valueSchema("undefined", msg) }

// Nil accepts null or absent.
func Nil(msg ...string) ValueSchema { return valueSchema("nil", msg) }

func (s ValueSchema) with(name string, msg []string) ValueSchema {
	return ValueSchema{s.Schema.Append(mustRule(name, nil, msg))}
}

func (s ValueSchema) Defined(msg ...string) ValueSchema  { return s.with("defined", msg) }
func (s ValueSchema) NotNil(msg ...string) ValueSchema   { return s.with("notNil", msg) }
func (s ValueSchema) Empty(msg ...string) ValueSchema    { return s.with("empty", msg) }
func (s ValueSchema) NotEmpty(msg ...string) ValueSchema { return s.with("notEmpty", msg) }
func (s ValueSchema) Truthy(msg ...string) ValueSchema   { return s.with("truthy", msg) }
func (s ValueSchema) Falsy(msg ...string) ValueSchema    { return s.with("falsy", msg) }

func (s ValueSchema) Transform(fn func(any) any) ValueSchema {
	return ValueSchema{skema.Transform(s.Schema, fn)}
}

func (s ValueSchema) Refine(fn func(any) bool, msg ...string) ValueSchema {
	return ValueSchema{skema.Refine(s.Schema, fn, msg...)}
}

func (s ValueSchema) Default(v any) ValueSchema { return ValueSchema{skema.WithDefault(s.Schema, v)} }

func (s ValueSchema) WithRegistry(r *skema.Registry) ValueSchema {
	return ValueSchema{s.Schema.WithRegistry(r)}
}

func (s ValueSchema) Array() skema.Schema[[]any] { return skema.Array(s.Schema) }

func init() {
	check(FamilyValue, "unknown", skema.CodeInvalidType, func(any) bool { return true }, nil)
	check(FamilyValue, "null", skema.CodeInvalidType, func(v any) bool { return v == nil }, typed("null"))
	check(FamilyValue, "undefined", skema.CodeInvalidType, skema.IsUndefined, nil)
	check(FamilyValue, "nil", skema.CodeInvalidType, func(v any) bool { return v == nil || skema.IsUndefined(v) },
		func(s *js.Schema, _ any) { s.Type = "null" })
	check(FamilyValue, "defined", skema.CodeInvalidValue, validators.Defined, nil)
	check(FamilyValue, "notNil", skema.CodeInvalidValue, validators.NotNil, nil)
	check(FamilyValue, "empty", skema.CodeInvalidValue, validators.Empty, nil)
	check(FamilyValue, "notEmpty", skema.CodeInvalidValue, func(v any) bool { return !validators.Empty(v) }, nil)
	check(FamilyValue, "truthy", skema.CodeInvalidValue, validators.Truthy, nil)
	check(FamilyValue, "falsy", skema.CodeInvalidValue, validators.Falsy, nil)
}
