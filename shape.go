package skema

import "reflect"

// shape converts between the engine's untyped values and a schema's output
// type T. decode runs once per Parse on the finished value; encode turns a
// typed default back into the raw form the pipeline expects.
type shape[T any] struct {
	decode func(any) (T, bool)
	encode func(T) any
}

func castShape[T any]() shape[T] {
	return shape[T]{
		decode: func(v any) (T, bool) {
			if IsUndefined(v) {
				var zero T
				// an untyped schema reports absence as nil
				if _, isAny := any(&zero).(*any); isAny {
					return zero, true
				}
				return zero, false
			}
			t, ok := v.(T)
			if !ok && v == nil {
				var zero T
				// nil fits any nilable T (interfaces, pointers, slices, maps)
				return zero, isNilable(reflect.TypeOf(&zero).Elem())
			}
			return t, ok
		},
		encode: func(t T) any { return t },
	}
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// zeroOnEmpty lets absent/null decode to the zero value. It is used for
// transform outputs of schemas that admit absent or null elements, since those
// short-circuit before any transformer runs.
func zeroOnEmpty[T any](inner shape[T], st State) shape[T] {
	if !st.acceptsAbsent() && !st.acceptsNull() {
		return inner
	}
	return shape[T]{
		decode: func(v any) (T, bool) {
			if (IsUndefined(v) && st.acceptsAbsent()) || (v == nil && st.acceptsNull()) {
				var zero T
				return zero, true
			}
			return inner.decode(v)
		},
		encode: inner.encode,
	}
}

// emptyAs selects which raw values a pointer shape maps to nil.
type emptyAs int

const (
	emptyAbsent emptyAs = 1 << iota
	emptyNull
)

func pointerShape[T any](inner shape[T], empty emptyAs) shape[*T] {
	return shape[*T]{
		decode: func(v any) (*T, bool) {
			if (empty&emptyAbsent != 0 && IsUndefined(v)) || (empty&emptyNull != 0 && v == nil) {
				return nil, true
			}
			t, ok := inner.decode(v)
			if !ok {
				return nil, false
			}
			return &t, true
		},
		encode: func(p *T) any {
			if p == nil {
				if empty&emptyNull != 0 {
					return nil
				}
				return Undefined
			}
			return inner.encode(*p)
		},
	}
}

func sliceShape[T any](inner shape[T]) shape[[]T] {
	return shape[[]T]{
		decode: func(v any) ([]T, bool) {
			seq, ok := asSequence(v)
			if !ok {
				if v == nil || IsUndefined(v) {
					return nil, true
				}
				return nil, false
			}
			out := make([]T, len(seq))
			for i := range seq {
				t, ok := inner.decode(seq[i])
				if !ok {
					return nil, false
				}
				out[i] = t
			}
			return out, true
		},
		encode: func(ts []T) any {
			if ts == nil {
				return Undefined
			}
			out := make([]any, len(ts))
			for i := range ts {
				out[i] = inner.encode(ts[i])
			}
			return out
		},
	}
}

// asSequence reports whether v is a Go slice or array and returns its
// elements. []byte is treated as a scalar.
func asSequence(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
