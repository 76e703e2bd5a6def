package validators

import (
	"math"
	"reflect"
	"strconv"

	"github.com/cockroachdb/apd/v2"
)

// ToFloat converts any Go integer or float kind to float64. Other values,
// including bool and numeric strings, are rejected.
func ToFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case isIntLike(rv.Kind()):
		if isUintLike(rv.Kind()) {
			return float64(rv.Uint()), true
		}
		return float64(rv.Int()), true
	case isFloatLike(rv.Kind()):
		return rv.Float(), true
	default:
		return 0, false
	}
}

func isIntLike(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return isUintLike(k)
}

func isUintLike(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloatLike(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// IsNumber reports whether v is a finite number of any Go numeric kind.
func IsNumber(v any) bool {
	f, ok := ToFloat(v)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isWhole(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// IsInt reports whether v is a number with no fractional part.
func IsInt(v any) bool {
	f, ok := ToFloat(v)
	return ok && isWhole(f)
}

// IsFloat reports whether v is a finite number with a fractional part.
func IsFloat(v any) bool {
	f, ok := ToFloat(v)
	return ok && IsNumber(v) && !isWhole(f)
}

// MaxSafeInteger is the largest integer a float64 represents exactly.
const MaxSafeInteger = 1<<53 - 1

func SafeInteger(v any) bool {
	f, ok := ToFloat(v)
	return ok && isWhole(f) && math.Abs(f) <= MaxSafeInteger
}

func SafeFloat(v any) bool {
	f, ok := ToFloat(v)
	return ok && IsFloat(v) && math.Abs(f) <= MaxSafeInteger
}

func Finite(v any) bool { return IsNumber(v) }

func Infinite(v any) bool {
	f, ok := ToFloat(v)
	return ok && math.IsInf(f, 0)
}

func intIn(v any, lo, hi float64) bool {
	f, ok := ToFloat(v)
	return ok && isWhole(f) && f >= lo && f <= hi
}

func Int32(v any) bool  { return intIn(v, math.MinInt32, math.MaxInt32) }
func Uint(v any) bool   { return intIn(v, 0, math.Inf(1)) }
func Uint32(v any) bool { return intIn(v, 0, math.MaxUint32) }
func Uint16(v any) bool { return intIn(v, 0, math.MaxUint16) }
func Uint8(v any) bool  { return intIn(v, 0, math.MaxUint8) }

// Op is a comparison operator for Compare.
type Op int

const (
	Lt Op = iota
	Le
	Gt
	Ge
)

// Compare reports whether v op bound holds. Non-numeric v never does.
func Compare(v any, op Op, bound float64) bool {
	f, ok := ToFloat(v)
	if !ok || math.IsNaN(f) {
		return false
	}
	switch op {
	case Lt:
		return f < bound
	case Le:
		return f <= bound
	case Gt:
		return f > bound
	case Ge:
		return f >= bound
	default:
		return false
	}
}

// Between reports whether v lies in the inclusive range [lo, hi].
func Between(v any, lo, hi float64) bool {
	return Compare(v, Ge, lo) && Compare(v, Le, hi)
}

func NonZero(v any) bool {
	f, ok := ToFloat(v)
	return ok && f != 0
}

func Percentage(v any) bool { return Between(v, 0, 100) }

var decimalCtx = apd.BaseContext.WithPrecision(40)

func decimal(f float64) (*apd.Decimal, bool) {
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'g', -1, 64))
	return d, err == nil
}

// MultipleOf reports whether v is an exact multiple of factor. The check runs
// on the shortest decimal representation of both operands, so 0.3 is a
// multiple of 0.1. A zero factor never matches.
func MultipleOf(v any, factor float64) bool {
	f, ok := ToFloat(v)
	if !ok || factor == 0 || math.IsInf(f, 0) || math.IsNaN(f) || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return false
	}
	x, ok1 := decimal(f)
	y, ok2 := decimal(factor)
	if !ok1 || !ok2 {
		return false
	}
	var rem apd.Decimal
	if _, err := decimalCtx.Rem(&rem, x, y); err != nil {
		return false
	}
	return rem.IsZero()
}

// Clamp limits numeric input to [lo, hi]. The result keeps the input's Go
// type when it is float64 or int; other kinds come back as float64.
func Clamp(v any, lo, hi float64) any {
	f, ok := ToFloat(v)
	if !ok {
		return v
	}
	c := math.Min(hi, math.Max(lo, f))
	if c == f {
		return v
	}
	if _, isInt := v.(int); isInt && isWhole(c) {
		return int(c)
	}
	return c
}
