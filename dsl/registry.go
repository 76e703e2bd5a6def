package dsl

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// Family names, in registration order.
const (
	FamilyString  = "string"
	FamilyNumber  = "number"
	FamilyBoolean = "boolean"
	FamilyDate    = "date"
	FamilyValue   = "value"
	FamilyEnum    = "enum"
	FamilyUnion   = "union"
)

var familyOrder = []string{FamilyString, FamilyNumber, FamilyBoolean, FamilyDate, FamilyValue, FamilyEnum, FamilyUnion}

// ruleDef couples a registry entry with the constructor that turns loosely
// typed arguments into a pipeline rule whose Args the entry understands.
type ruleDef struct {
	family string
	entry  skema.Entry
	rule   func(args any, msg string) (skema.Rule, error)
}

var (
	defsMu sync.Mutex
	defs   = map[string]ruleDef{}
)

// define is called from init functions only.
func define(name string, d ruleDef) {
	defsMu.Lock()
	defer defsMu.Unlock()
	if _, dup := defs[name]; dup {
		panic(fmt.Sprintf("dsl: rule %q defined twice", name))
	}
	defs[name] = d
}

// check defines a validator that takes no arguments.
func check(family, name, code string, pred func(v any) bool, project skema.ProjectFunc) {
	define(name, ruleDef{
		family: family,
		entry: skema.ValidatorEntry(func(_ context.Context, v, _ any) (bool, error) {
			return pred(v), nil
		}, project),
		rule: func(_ any, msg string) (skema.Rule, error) {
			return skema.Check(name, code, nil, nil, msg), nil
		},
	})
}

// mapper defines a transformer that takes no arguments.
func mapper(family, name string, fn func(v any) any) {
	define(name, ruleDef{
		family: family,
		entry:  skema.TransformerEntry(skema.Mapper(func(v, _ any) any { return fn(v) })),
		rule: func(any, string) (skema.Rule, error) {
			return skema.Apply(name, nil), nil
		},
	})
}

// Families returns the built-in rule families in registration order.
func Families() []skema.Family {
	defsMu.Lock()
	defer defsMu.Unlock()
	byFamily := map[string]map[string]skema.Entry{}
	for name, d := range defs {
		if byFamily[d.family] == nil {
			byFamily[d.family] = map[string]skema.Entry{}
		}
		byFamily[d.family][name] = d.entry
	}
	out := make([]skema.Family, 0, len(familyOrder))
	for _, f := range familyOrder {
		out = append(out, skema.Family{Name: f, Entries: byFamily[f]})
	}
	return out
}

var defaultRegistry = sync.OnceValue(func() *skema.Registry {
	return skema.MustRegistry(Families()...)
})

// Registry returns the default registry: core plus every built-in family.
// It is built once, on first use, and never changes afterwards. Extend it with
// Registry().Extend(family) and bind schemas to the result via WithRegistry.
func Registry() *skema.Registry { return defaultRegistry() }

// NewRule builds the pipeline rule for a built-in rule name from loosely typed
// arguments, exactly as the builder methods do. Declarative loaders use it.
func NewRule(name string, args any, msg string) (skema.Rule, error) {
	defsMu.Lock()
	d, ok := defs[name]
	defsMu.Unlock()
	if !ok {
		return skema.Rule{}, fmt.Errorf("%w: %q", skema.ErrUnknownRule, name)
	}
	r, err := d.rule(args, msg)
	if err != nil {
		return skema.Rule{}, fmt.Errorf("dsl: rule %q: %w", name, err)
	}
	return r, nil
}

func mustRule(name string, args any, msg []string) skema.Rule {
	var m string
	for _, s := range msg {
		if s != "" {
			m = s
			break
		}
	}
	r, err := NewRule(name, args, m)
	if err != nil {
		panic(err)
	}
	return r
}

// RuleNames lists the built-in rule names of a family, sorted.
func RuleNames(family string) []string {
	defsMu.Lock()
	defer defsMu.Unlock()
	var out []string
	for name, d := range defs {
		if d.family == family {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// bases maps declarative type names to untyped schema constructors.
var bases = map[string]func() skema.Schema[any]{
	"string":    func() skema.Schema[any] { return skema.Erase(String().Schema) },
	"number":    func() skema.Schema[any] { return skema.Erase(Number().Schema) },
	"int":       func() skema.Schema[any] { return skema.Erase(Int().Schema) },
	"boolean":   func() skema.Schema[any] { return skema.Erase(Bool().Schema) },
	"date":      func() skema.Schema[any] { return skema.Erase(Date().Schema) },
	"unknown":   func() skema.Schema[any] { return Unknown().Schema },
	"null":      func() skema.Schema[any] { return Null().Schema },
	"undefined": func() skema.Schema[any] { return Undefined().Schema },
	"nil":       func() skema.Schema[any] { return Nil().Schema },
}

// Base returns an untyped schema for a declarative type name such as
// "string" or "number".
func Base(typeName string) (skema.Schema[any], error) {
	f, ok := bases[typeName]
	if !ok {
		return skema.Schema[any]{}, fmt.Errorf("dsl: unknown schema type %q", typeName)
	}
	return f(), nil
}

// BaseTypes lists the names Base accepts, sorted.
func BaseTypes() []string {
	out := make([]string, 0, len(bases))
	for k := range bases {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func typed(t string) skema.ProjectFunc {
	return func(s *js.Schema, _ any) { s.Type = t }
}

func format(f string) skema.ProjectFunc {
	return func(s *js.Schema, _ any) { s.Format = f }
}
