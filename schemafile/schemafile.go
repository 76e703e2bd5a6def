// Package schemafile compiles declarative schema definitions (YAML or JSON)
// into untyped schemas over the dsl registry.
//
// A definition looks like:
//
//	type: string
//	rules:
//	  - min: 2
//	  - name: regex
//	    args: "^[a-z]+$"
//	    message: lowercase letters only
//	  - trim
//	optional: true
//	array: true
//	default: guest
//
// type is any dsl base type ("string", "number", "int", "boolean", "date",
// "unknown", "null", "undefined", "nil") or "enum" (with values) or "union"
// (with members, each a definition).
package schemafile

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
	"github.com/reoring/skema/source"
)

// Definition is the declarative form of one schema.
type Definition struct {
	Type     string       `mapstructure:"type"`
	Rules    []RuleDef    `mapstructure:"rules"`
	Optional bool         `mapstructure:"optional"`
	Nullable bool         `mapstructure:"nullable"`
	Nullish  bool         `mapstructure:"nullish"`
	Array    bool         `mapstructure:"array"`
	Default  any          `mapstructure:"default"`
	Values   []any        `mapstructure:"values"`
	Members  []Definition `mapstructure:"members"`
}

// RuleDef names a built-in rule. In a file it may also be written as a bare
// name ("trim") or as a single-key map ("min: 2").
type RuleDef struct {
	Name    string `mapstructure:"name"`
	Args    any    `mapstructure:"args"`
	Message string `mapstructure:"message"`
}

// ErrInvalidDefinition wraps every structural problem found while decoding or
// compiling a definition.
var ErrInvalidDefinition = errors.New("schemafile: invalid definition")

// Load reads and compiles a definition.
func Load(r io.Reader, opt source.Options) (skema.Schema[any], error) {
	raw, err := source.Read(r, opt)
	if err != nil {
		return skema.Schema[any]{}, err
	}
	def, err := Decode(raw)
	if err != nil {
		return skema.Schema[any]{}, err
	}
	return Compile(def)
}

// Decode maps a decoded document onto a Definition. Unknown keys are errors.
func Decode(raw any) (Definition, error) {
	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  ruleShorthandHook,
		ErrorUnused: true,
		Result:      &def,
	})
	if err != nil {
		return Definition{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Definition{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return def, nil
}

var ruleDefType = reflect.TypeOf(RuleDef{})

// ruleShorthandHook expands "trim" and {"min": 2} into full RuleDef maps.
func ruleShorthandHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != ruleDefType {
		return data, nil
	}
	switch t := data.(type) {
	case string:
		return map[string]any{"name": t}, nil
	case map[string]any:
		if _, full := t["name"]; full || len(t) != 1 {
			return t, nil
		}
		out := map[string]any{}
		for k, v := range t {
			out["name"], out["args"] = k, v
		}
		return out, nil
	}
	return data, nil
}

// Compile builds the schema a definition describes.
func Compile(def Definition) (skema.Schema[any], error) {
	s, err := compileBase(def)
	if err != nil {
		return skema.Schema[any]{}, err
	}
	for i, rd := range def.Rules {
		r, err := dsl.NewRule(rd.Name, rd.Args, rd.Message)
		if err != nil {
			return skema.Schema[any]{}, fmt.Errorf("%w: rules[%d]: %v", ErrInvalidDefinition, i, err)
		}
		s = s.Append(r)
	}
	if def.Default != nil {
		s = skema.WithDefault(s, def.Default)
	}
	st := s.State()
	st.Optional = def.Optional
	st.Nullable = def.Nullable
	st.Nullish = def.Nullish
	st.Array = def.Array
	return skema.WithState(s, st), nil
}

func compileBase(def Definition) (skema.Schema[any], error) {
	switch def.Type {
	case "enum":
		if len(def.Values) == 0 {
			return skema.Schema[any]{}, fmt.Errorf("%w: enum needs values", ErrInvalidDefinition)
		}
		return dsl.Enum(def.Values...), nil
	case "union":
		if len(def.Members) == 0 {
			return skema.Schema[any]{}, fmt.Errorf("%w: union needs members", ErrInvalidDefinition)
		}
		members := make([]skema.Parser, len(def.Members))
		for i, m := range def.Members {
			ms, err := Compile(m)
			if err != nil {
				return skema.Schema[any]{}, fmt.Errorf("members[%d]: %w", i, err)
			}
			members[i] = ms
		}
		return dsl.Union(members...), nil
	case "":
		return skema.Schema[any]{}, fmt.Errorf("%w: missing type", ErrInvalidDefinition)
	}
	s, err := dsl.Base(def.Type)
	if err != nil {
		return skema.Schema[any]{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return s, nil
}
