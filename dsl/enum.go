package dsl

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/validators"
	js "github.com/reoring/skema/jsonschema"
)

// Enum accepts exactly the listed values. Numbers compare by value, so an
// int 1 from Go code and a float64 1 from a JSON decoder both match Enum(1).
// The default failure message lists the allowed values. Enum panics when
// called without values.
func Enum[T comparable](values ...T) skema.Schema[T] {
	raw := make([]any, len(values))
	for i, v := range values {
		raw[i] = v
	}
	return skema.New[T](Registry(), mustRule("enum", raw, nil), enumDecode[T], nil)
}

// EnumMsg is Enum with a custom failure message.
func EnumMsg[T comparable](msg string, values ...T) skema.Schema[T] {
	raw := make([]any, len(values))
	for i, v := range values {
		raw[i] = v
	}
	return skema.New[T](Registry(), mustRule("enum", raw, []string{msg}), enumDecode[T], nil)
}

func enumDecode[T comparable](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	want := reflect.TypeOf(&zero).Elem()
	if _, isNum := validators.ToFloat(zero); isNum && v != nil {
		if _, ok := validators.ToFloat(v); ok {
			return reflect.ValueOf(v).Convert(want).Interface().(T), true
		}
	}
	return zero, false
}

// enumContains reports whether values holds v, comparing numbers by value.
func enumContains(values []any, v any) bool {
	f, vIsNum := validators.ToFloat(v)
	for _, w := range values {
		if vIsNum {
			if g, ok := validators.ToFloat(w); ok {
				if f == g {
					return true
				}
				continue
			}
		}
		if w == nil || v == nil {
			if w == nil && v == nil {
				return true
			}
			continue
		}
		if reflect.TypeOf(w) == reflect.TypeOf(v) && reflect.TypeOf(v).Comparable() && w == v {
			return true
		}
	}
	return false
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

func init() {
	define("enum", ruleDef{
		family: FamilyEnum,
		entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
			values, _ := a.([]any)
			return enumContains(values, v)
		}), func(s *js.Schema, a any) {
			values, _ := a.([]any)
			s.Enum = append([]any(nil), values...)
		}),
		rule: func(a any, msg string) (skema.Rule, error) {
			values, ok := a.([]any)
			if !ok {
				seq := reflect.ValueOf(a)
				if a == nil || (seq.Kind() != reflect.Slice && seq.Kind() != reflect.Array) {
					return skema.Rule{}, fmt.Errorf("expected a list of values, got %T", a)
				}
				values = make([]any, seq.Len())
				for i := range values {
					values[i] = seq.Index(i).Interface()
				}
			}
			if len(values) == 0 {
				return skema.Rule{}, errors.New("enum needs at least one value")
			}
			return skema.Check("enum", skema.CodeInvalidEnum, values, params("values", joinValues(values)), msg), nil
		},
	})
}
