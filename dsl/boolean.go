package dsl

import (
	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/validators"
	js "github.com/reoring/skema/jsonschema"
)

// BoolSchema is the boolean family builder.
type BoolSchema struct {
	skema.Schema[bool]
}

// Bool accepts Go bools only; the strings "true" and "false" are rejected
// (see StringBool).
func Bool(msg ...string) BoolSchema {
	return BoolSchema{skema.New[bool](Registry(), mustRule("boolean", nil, msg), nil, nil)}
}

func (s BoolSchema) with(name string, msg []string) BoolSchema {
	return BoolSchema{s.Schema.Append(mustRule(name, nil, msg))}
}

// True requires the value true.
func (s BoolSchema) True(msg ...string) BoolSchema { return s.with("isTrue", msg) }

// False requires the value false.
func (s BoolSchema) False(msg ...string) BoolSchema { return s.with("isFalse", msg) }

func (s BoolSchema) Refine(fn func(bool) bool, msg ...string) BoolSchema {
	return BoolSchema{skema.Refine(s.Schema, fn, msg...)}
}

func (s BoolSchema) Default(v bool) BoolSchema { return BoolSchema{s.Schema.Default(v)} }

func (s BoolSchema) WithRegistry(r *skema.Registry) BoolSchema {
	return BoolSchema{s.Schema.WithRegistry(r)}
}

func (s BoolSchema) Optional() skema.Schema[*bool] { return skema.Optional(s.Schema) }
func (s BoolSchema) Nullable() skema.Schema[*bool] { return skema.Nullable(s.Schema) }
func (s BoolSchema) Nullish() skema.Schema[*bool]  { return skema.Nullish(s.Schema) }
func (s BoolSchema) Array() skema.Schema[[]bool]   { return skema.Array(s.Schema) }

func init() {
	check(FamilyBoolean, "boolean", skema.CodeInvalidType, validators.IsBool, typed("boolean"))
	check(FamilyBoolean, "isTrue", skema.CodeInvalidValue, validators.IsTrue, func(s *js.Schema, _ any) { s.Const = true })
	check(FamilyBoolean, "isFalse", skema.CodeInvalidValue, validators.IsFalse, func(s *js.Schema, _ any) { s.Const = false })
	check(FamilyBoolean, "stringBool", skema.CodeInvalidValue, validators.StringBool, func(s *js.Schema, _ any) {
		s.Enum = []any{"true", "false"}
	})
}
