package skema

import (
	"context"
	"fmt"
	"sort"

	js "github.com/reoring/skema/jsonschema"
)

// ValidatorFunc reports whether v satisfies the rule. The error return is
// reserved for defects (for example a union member with a broken pipeline);
// a plain rejection is (false, nil).
type ValidatorFunc func(ctx context.Context, v, args any) (bool, error)

// TransformerFunc derives a new value from v. It cannot fail.
type TransformerFunc func(ctx context.Context, v, args any) any

// ProjectFunc annotates a JSON Schema document with the keywords a rule
// implies. It is optional.
type ProjectFunc func(s *js.Schema, args any)

// Predicate adapts a pure predicate to a ValidatorFunc.
func Predicate(fn func(v, args any) bool) ValidatorFunc {
	return func(_ context.Context, v, args any) (bool, error) { return fn(v, args), nil }
}

// Mapper adapts a pure function to a TransformerFunc.
func Mapper(fn func(v, args any) any) TransformerFunc {
	return func(_ context.Context, v, args any) any { return fn(v, args) }
}

// Entry is the registered implementation of a rule name.
type Entry struct {
	Kind      RuleKind
	Validate  ValidatorFunc
	Transform TransformerFunc
	Project   ProjectFunc
}

// ValidatorEntry builds a validator Entry.
func ValidatorEntry(fn ValidatorFunc, project ProjectFunc) Entry {
	return Entry{Kind: Validator, Validate: fn, Project: project}
}

// TransformerEntry builds a transformer Entry.
func TransformerEntry(fn TransformerFunc) Entry {
	return Entry{Kind: Transformer, Transform: fn}
}

// Family is a named group of registry entries. A family owns its names.
type Family struct {
	Name    string
	Entries map[string]Entry
}

// Registry maps rule names to implementations. It is assembled once by
// NewRegistry and is read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	entries map[string]Entry
	owners  map[string]string
	order   []string // family names in registration order
}

// NewRegistry composes families in order on top of the core family
// (transform, refine). Registering a name already owned by another family
// fails with ErrDuplicateRule.
func NewRegistry(families ...Family) (*Registry, error) {
	r := &Registry{entries: map[string]Entry{}, owners: map[string]string{}}
	if err := r.add(coreFamily()); err != nil {
		return nil, err
	}
	for _, f := range families {
		if err := r.add(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error. It is meant for
// package-level initialization.
func MustRegistry(families ...Family) *Registry {
	r, err := NewRegistry(families...)
	if err != nil {
		panic(err)
	}
	return r
}

// Extend returns a new registry holding r's entries plus the given families.
// r itself is left untouched.
func (r *Registry) Extend(families ...Family) (*Registry, error) {
	out := &Registry{
		entries: make(map[string]Entry, len(r.entries)),
		owners:  make(map[string]string, len(r.owners)),
		order:   append([]string(nil), r.order...),
	}
	for k, v := range r.entries {
		out.entries[k] = v
	}
	for k, v := range r.owners {
		out.owners[k] = v
	}
	for _, f := range families {
		if err := out.add(f); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *Registry) add(f Family) error {
	// validate the whole family first so a failure leaves r unchanged
	for name, e := range f.Entries {
		if owner, dup := r.owners[name]; dup {
			return fmt.Errorf("%w: %q registered by family %q, cannot be redefined by %q", ErrDuplicateRule, name, owner, f.Name)
		}
		if (e.Kind == Validator && e.Validate == nil) || (e.Kind == Transformer && e.Transform == nil) {
			return fmt.Errorf("skema: family %q: entry %q has no %s function", f.Name, name, e.Kind)
		}
	}
	for name, e := range f.Entries {
		r.entries[name] = e
		r.owners[name] = f.Name
	}
	r.order = append(r.order, f.Name)
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	e, ok := r.entries[name]
	return e, ok
}

// Owner returns the family that registered name.
func (r *Registry) Owner(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	f, ok := r.owners[name]
	return f, ok
}

// Names returns all registered rule names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Families returns family names in registration order.
func (r *Registry) Families() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// ---- core family ----

const (
	ruleTransform = "transform"
	ruleRefine    = "refine"
)

// coreFamily holds the entries behind Transform and Refine. The user function
// travels in the rule's Args.
func coreFamily() Family {
	return Family{
		Name: "core",
		Entries: map[string]Entry{
			ruleTransform: TransformerEntry(func(_ context.Context, v, args any) any {
				fn, ok := args.(func(any) any)
				if !ok {
					return v
				}
				return fn(v)
			}),
			ruleRefine: ValidatorEntry(Predicate(func(v, args any) bool {
				fn, ok := args.(func(any) bool)
				return ok && fn(v)
			}), nil),
		},
	}
}
