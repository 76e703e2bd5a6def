package skema

import (
	"context"
	"fmt"
	"reflect"

	js "github.com/reoring/skema/jsonschema"
)

// Schema is an immutable description of how to validate and transform values
// into T. Every builder step returns a new Schema; the receiver is never
// modified, so schemas may be shared freely across goroutines.
//
// Modifiers that change the output type (Optional, Nullable, Nullish, Array,
// Transform) are package functions because Go methods cannot introduce type
// parameters. Modifiers that keep T are methods.
type Schema[T any] struct {
	name     string
	pipeline []Rule
	// post holds Transform and Refine steps added after Array; they run once
	// on the finished sequence instead of per element.
	post     []Rule
	// nested is set when Array was applied to a schema already in array mode.
	// Each element is then parsed by the inner array schema.
	nested   *nestedArray
	state    State
	def      any // raw default; only meaningful when state.HasDefault
	registry *Registry
	shape    shape[T]
}

// New assembles a schema around a base rule. The base rule's name becomes the
// schema name, which is how the engine recognises it when deciding whether
// absent or null input may be waived. decode projects finished values onto T
// and encode maps typed defaults back to raw form; nil selects a plain type
// assertion.
func New[T any](reg *Registry, base Rule, decode func(any) (T, bool), encode func(T) any) Schema[T] {
	sh := castShape[T]()
	if decode != nil {
		sh.decode = decode
	}
	if encode != nil {
		sh.encode = encode
	}
	return Schema[T]{
		name:     base.Name,
		pipeline: []Rule{base},
		registry: reg,
		shape:    sh,
		def:      Undefined,
	}
}

// Name returns the schema's base name.
func (s Schema[T]) Name() string { return s.name }

// State returns the modifier record.
func (s Schema[T]) State() State { return s.state }

// Registry returns the registry rule names are resolved against.
func (s Schema[T]) Registry() *Registry { return s.registry }

// Rules returns a copy of the per-element pipeline.
func (s Schema[T]) Rules() []Rule { return append([]Rule(nil), s.pipeline...) }

// DefaultValue returns the raw default and whether one is set.
func (s Schema[T]) DefaultValue() (any, bool) { return s.def, s.state.HasDefault }

// Append adds a rule at the end of the pipeline. On array schemas the rule
// runs per element, like the rules added before Array. Once a Transform or
// Refine has been added after Array, later rules follow it and see the whole
// sequence (or whatever the transform produced).
func (s Schema[T]) Append(r Rule) Schema[T] {
	if len(s.post) > 0 {
		s.post = appendRule(s.post, r)
		return s
	}
	s.pipeline = appendRule(s.pipeline, r)
	return s
}

// then adds a Transform or Refine step. These are typed on T, which is the
// whole sequence on array schemas.
func (s Schema[T]) then(r Rule) Schema[T] {
	if s.state.Array {
		s.post = appendRule(s.post, r)
		return s
	}
	s.pipeline = appendRule(s.pipeline, r)
	return s
}

// Default sets the value substituted for absent input. The output type is
// unchanged; the input side now admits absence (see State.Input).
func (s Schema[T]) Default(v T) Schema[T] {
	s.def = s.shape.encode(v)
	s.state = s.state.SetDefault()
	return s
}

// WithRegistry returns s bound to another registry.
func (s Schema[T]) WithRegistry(r *Registry) Schema[T] {
	s.registry = r
	return s
}

// appendRule copies before appending so that two schemas derived from the
// same parent never share a backing array.
func appendRule(rs []Rule, r Rule) []Rule {
	out := make([]Rule, len(rs), len(rs)+1)
	copy(out, rs)
	return append(out, r)
}

// Optional admits absent input. Absent parses to a nil pointer.
func Optional[T any](s Schema[T]) Schema[*T] {
	return rewrap(s, s.state.SetOptional(), pointerShape(s.shape, emptyAbsent))
}

// Nullable admits null input. Null parses to a nil pointer.
func Nullable[T any](s Schema[T]) Schema[*T] {
	return rewrap(s, s.state.SetNullable(), pointerShape(s.shape, emptyNull))
}

// Nullish admits absent and null input. When no default is set, null input is
// normalised to absent before the pipeline runs.
func Nullish[T any](s Schema[T]) Schema[*T] {
	return rewrap(s, s.state.SetNullish(), pointerShape(s.shape, emptyAbsent|emptyNull))
}

// Array switches s to sequence mode: the input must be a slice and the
// pipeline runs once per element. A scalar default already set on s is lifted
// into a one-element sequence.
//
// Applied to a schema that is already an array, Array nests: the result
// accepts a sequence of sequences and parses each element with s, so the
// output type [][]E matches what is accepted.
func Array[T any](s Schema[T]) Schema[[]T] {
	if s.state.Array {
		return nestArray(s)
	}
	out := rewrap(s, s.state.SetArray(), sliceShape(s.shape))
	if s.state.HasDefault {
		if _, isSeq := asSequence(s.def); !isSeq {
			out.def = []any{s.def}
		}
	}
	return out
}

// Transform appends a transformer that maps T to U. On array schemas fn runs
// once on the decoded sequence.
func Transform[T, U any](s Schema[T], fn func(T) U) Schema[U] {
	dec := s.shape.decode
	r := Apply(ruleTransform, func(v any) any {
		t, ok := dec(v)
		if !ok {
			// an unconvertible value passes through; decode reports it
			return v
		}
		return fn(t)
	})
	out := rewrap(s, s.state, zeroOnEmpty(castShape[U](), s.state))
	return out.then(r)
}

// Refine appends a validator backed by fn. msg, when given, replaces the
// default failure message.
func Refine[T any](s Schema[T], fn func(T) bool, msg ...string) Schema[T] {
	dec := s.shape.decode
	r := Check(ruleRefine, CodeCustom, func(v any) bool {
		t, ok := dec(v)
		return ok && fn(t)
	}, nil, msg...)
	return s.then(r)
}

// Erase drops the static output type. The resulting schema returns the raw
// engine value and is what declarative loaders build on.
func Erase[T any](s Schema[T]) Schema[any] {
	return rewrap(s, s.state, castShape[any]())
}

// WithState applies modifier flags to an untyped schema. It is the runtime
// counterpart of Optional, Nullable, Nullish and Array for schemas whose type
// is only known at run time. Setting Array lifts a scalar default the same way
// Array does.
func WithState(s Schema[any], st State) Schema[any] {
	lift := st.Array && !s.state.Array && s.state.HasDefault
	st.HasDefault = st.HasDefault || s.state.HasDefault
	s.state = st
	if lift {
		if _, isSeq := asSequence(s.def); !isSeq {
			s.def = []any{s.def}
		}
	}
	return s
}

// WithDefault sets a raw default on an untyped schema.
func WithDefault(s Schema[any], v any) Schema[any] {
	s.def = v
	s.state = s.state.SetDefault()
	return s
}

func rewrap[T, U any](s Schema[T], st State, sh shape[U]) Schema[U] {
	return Schema[U]{
		name:     s.name,
		pipeline: s.pipeline,
		post:     s.post,
		nested:   s.nested,
		state:    st,
		def:      s.def,
		registry: s.registry,
		shape:    sh,
	}
}

// nestedArray holds the inner schema of a nested Array.
type nestedArray struct {
	run        func(ctx context.Context, v any) (any, error)
	jsonSchema func() (*js.Schema, error)
}

func nestArray[T any](inner Schema[T]) Schema[[]T] {
	return Schema[[]T]{
		name:     inner.name,
		state:    State{Array: true},
		def:      Undefined,
		registry: inner.registry,
		shape:    sliceShape(inner.shape),
		nested: &nestedArray{
			run: func(ctx context.Context, v any) (any, error) {
				return inner.run(ctx, v, nil)
			},
			jsonSchema: inner.JSONSchema,
		},
	}
}

func (s Schema[T]) String() string {
	return fmt.Sprintf("%s(%d rules, %+v) -> %s", s.name, len(s.pipeline)+len(s.post), s.state, typeName[T]())
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	return t.String()
}
