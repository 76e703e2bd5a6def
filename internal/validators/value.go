package validators

import (
	"math"
	"reflect"
	"time"

	"github.com/reoring/skema"
)

// Booleans.

func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func IsTrue(v any) bool  { return v == true }
func IsFalse(v any) bool { return v == false }

// StringBool accepts only the exact strings "true" and "false".
func StringBool(v any) bool { return v == "true" || v == "false" }

// Dates.

func IsDate(v any) bool {
	t, ok := v.(time.Time)
	return ok && !t.IsZero()
}

func timeOf(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

func After(v any, ref time.Time) bool {
	t, ok := timeOf(v)
	return ok && t.After(ref)
}

func Before(v any, ref time.Time) bool {
	t, ok := timeOf(v)
	return ok && t.Before(ref)
}

func Same(v any, ref time.Time) bool {
	t, ok := timeOf(v)
	return ok && t.Equal(ref)
}

// DateBetween reports whether v lies in the inclusive range [lo, hi].
func DateBetween(v any, lo, hi time.Time) bool {
	t, ok := timeOf(v)
	return ok && !t.Before(lo) && !t.After(hi)
}

// Weekend uses the date's own location.
func Weekend(v any) bool {
	t, ok := timeOf(v)
	if !ok {
		return false
	}
	d := t.Weekday()
	return d == time.Saturday || d == time.Sunday
}

func Weekday(v any) bool {
	t, ok := timeOf(v)
	return ok && !Weekend(t)
}

// Values.

func Defined(v any) bool { return !skema.IsUndefined(v) }
func NotNil(v any) bool  { return v != nil && !skema.IsUndefined(v) }

// Empty reports whether v is absent, null, the empty string, or an empty
// slice, array or map.
func Empty(v any) bool {
	if v == nil || skema.IsUndefined(v) {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}

// Truthy follows the usual dynamic-language rule: false, zero, NaN, the
// empty string, null and absent are falsy; everything else is truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if skema.IsUndefined(v) {
		return false
	}
	if f, ok := ToFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

func Falsy(v any) bool { return !Truthy(v) }
