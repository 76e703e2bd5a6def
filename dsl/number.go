package dsl

import (
	"math"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/validators"
	js "github.com/reoring/skema/jsonschema"
)

// Numeric is the set of output types a number schema can decode into.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberSchema is the number family builder. The input may be any Go numeric
// kind; the output is converted to N after the pipeline has run.
type NumberSchema[N Numeric] struct {
	skema.Schema[N]
}

func numberShape[N Numeric]() (func(any) (N, bool), func(N) any) {
	return func(v any) (N, bool) {
			f, ok := validators.ToFloat(v)
			if !ok {
				return 0, false
			}
			return N(f), true
		}, func(n N) any {
			return n
		}
}

// Number accepts any finite number and decodes to float64.
func Number(msg ...string) NumberSchema[float64] { return NumberOf[float64](msg...) }

// Int accepts numbers without a fractional part and decodes to int.
func Int(msg ...string) NumberSchema[int] {
	dec, enc := numberShape[int]()
	return NumberSchema[int]{skema.New[int](Registry(), mustRule("int", nil, msg), dec, enc)}
}

// NumberOf is Number with a caller-chosen output type. Values outside N's
// range are truncated by the conversion; add Int32, Uint8 and similar checks
// when that matters.
func NumberOf[N Numeric](msg ...string) NumberSchema[N] {
	dec, enc := numberShape[N]()
	return NumberSchema[N]{skema.New[N](Registry(), mustRule("number", nil, msg), dec, enc)}
}

func (s NumberSchema[N]) with(name string, args any, msg []string) NumberSchema[N] {
	return NumberSchema[N]{s.Schema.Append(mustRule(name, args, msg))}
}

func (s NumberSchema[N]) Gt(x float64, msg ...string) NumberSchema[N]  { return s.with("gt", x, msg) }
func (s NumberSchema[N]) Gte(x float64, msg ...string) NumberSchema[N] { return s.with("gte", x, msg) }
func (s NumberSchema[N]) Lt(x float64, msg ...string) NumberSchema[N]  { return s.with("lt", x, msg) }
func (s NumberSchema[N]) Lte(x float64, msg ...string) NumberSchema[N] { return s.with("lte", x, msg) }

// Min is an alias of Gte.
func (s NumberSchema[N]) Min(x float64, msg ...string) NumberSchema[N] { return s.Gte(x, msg...) }

// Max is an alias of Lte.
func (s NumberSchema[N]) Max(x float64, msg ...string) NumberSchema[N] { return s.Lte(x, msg...) }

// Between requires lo <= v <= hi.
func (s NumberSchema[N]) Between(lo, hi float64, msg ...string) NumberSchema[N] {
	return s.with("between", [2]float64{lo, hi}, msg)
}

func (s NumberSchema[N]) Positive(msg ...string) NumberSchema[N]    { return s.with("positive", nil, msg) }
func (s NumberSchema[N]) Nonnegative(msg ...string) NumberSchema[N] { return s.with("nonnegative", nil, msg) }
func (s NumberSchema[N]) Negative(msg ...string) NumberSchema[N]    { return s.with("negative", nil, msg) }
func (s NumberSchema[N]) Nonpositive(msg ...string) NumberSchema[N] { return s.with("nonpositive", nil, msg) }
func (s NumberSchema[N]) NonZero(msg ...string) NumberSchema[N]     { return s.with("nonZero", nil, msg) }
func (s NumberSchema[N]) Int(msg ...string) NumberSchema[N]         { return s.with("int", nil, msg) }
func (s NumberSchema[N]) Float(msg ...string) NumberSchema[N]       { return s.with("float", nil, msg) }
func (s NumberSchema[N]) Finite(msg ...string) NumberSchema[N]      { return s.with("finite", nil, msg) }
func (s NumberSchema[N]) Safe(msg ...string) NumberSchema[N]        { return s.with("safeInteger", nil, msg) }
func (s NumberSchema[N]) Int32(msg ...string) NumberSchema[N]       { return s.with("int32", nil, msg) }
func (s NumberSchema[N]) Uint(msg ...string) NumberSchema[N]        { return s.with("uint", nil, msg) }
func (s NumberSchema[N]) Uint8(msg ...string) NumberSchema[N]       { return s.with("uint8", nil, msg) }
func (s NumberSchema[N]) Uint16(msg ...string) NumberSchema[N]      { return s.with("uint16", nil, msg) }
func (s NumberSchema[N]) Uint32(msg ...string) NumberSchema[N]      { return s.with("uint32", nil, msg) }
func (s NumberSchema[N]) Percentage(msg ...string) NumberSchema[N]  { return s.with("percentage", nil, msg) }

// MultipleOf requires v to be an exact decimal multiple of x.
func (s NumberSchema[N]) MultipleOf(x float64, msg ...string) NumberSchema[N] {
	return s.with("multipleOf", x, msg)
}

// Clamp limits the value to [lo, hi]. It is a transformer and never fails.
func (s NumberSchema[N]) Clamp(lo, hi float64) NumberSchema[N] {
	return s.with("clamp", [2]float64{lo, hi}, nil)
}

func (s NumberSchema[N]) Transform(fn func(N) N) NumberSchema[N] {
	return NumberSchema[N]{skema.Transform(s.Schema, fn)}
}

func (s NumberSchema[N]) Refine(fn func(N) bool, msg ...string) NumberSchema[N] {
	return NumberSchema[N]{skema.Refine(s.Schema, fn, msg...)}
}

func (s NumberSchema[N]) Default(v N) NumberSchema[N] { return NumberSchema[N]{s.Schema.Default(v)} }

func (s NumberSchema[N]) WithRegistry(r *skema.Registry) NumberSchema[N] {
	return NumberSchema[N]{s.Schema.WithRegistry(r)}
}

func (s NumberSchema[N]) Optional() skema.Schema[*N] { return skema.Optional(s.Schema) }
func (s NumberSchema[N]) Nullable() skema.Schema[*N] { return skema.Nullable(s.Schema) }
func (s NumberSchema[N]) Nullish() skema.Schema[*N]  { return skema.Nullish(s.Schema) }
func (s NumberSchema[N]) Array() skema.Schema[[]N]   { return skema.Array(s.Schema) }

func init() {
	check(FamilyNumber, "number", skema.CodeInvalidType, validators.IsNumber, typed("number"))
	check(FamilyNumber, "int", skema.CodeInvalidType, validators.IsInt, typed("integer"))
	check(FamilyNumber, "float", skema.CodeInvalidType, validators.IsFloat, nil)
	check(FamilyNumber, "finite", skema.CodeInvalidValue, validators.Finite, nil)
	check(FamilyNumber, "infinite", skema.CodeInvalidValue, validators.Infinite, nil)
	check(FamilyNumber, "safeInteger", skema.CodeTooBig, validators.SafeInteger, func(s *js.Schema, _ any) {
		s.Type = "integer"
		s.Minimum = js.MaxFloat(s.Minimum, -validators.MaxSafeInteger)
		s.Maximum = js.MinFloat(s.Maximum, validators.MaxSafeInteger)
	})
	check(FamilyNumber, "safeFloat", skema.CodeInvalidValue, validators.SafeFloat, nil)
	check(FamilyNumber, "int32", skema.CodeTooBig, validators.Int32, intRange(math.MinInt32, math.MaxInt32))
	check(FamilyNumber, "uint", skema.CodeTooSmall, validators.Uint, intRange(0, math.Inf(1)))
	check(FamilyNumber, "uint32", skema.CodeTooBig, validators.Uint32, intRange(0, math.MaxUint32))
	check(FamilyNumber, "uint16", skema.CodeTooBig, validators.Uint16, intRange(0, math.MaxUint16))
	check(FamilyNumber, "uint8", skema.CodeTooBig, validators.Uint8, intRange(0, math.MaxUint8))
	check(FamilyNumber, "positive", skema.CodeTooSmall, func(v any) bool { return validators.Compare(v, validators.Gt, 0) },
		func(s *js.Schema, _ any) { s.ExclusiveMinimum = js.MaxFloat(s.ExclusiveMinimum, 0) })
	check(FamilyNumber, "nonnegative", skema.CodeTooSmall, func(v any) bool { return validators.Compare(v, validators.Ge, 0) },
		func(s *js.Schema, _ any) { s.Minimum = js.MaxFloat(s.Minimum, 0) })
	check(FamilyNumber, "negative", skema.CodeTooBig, func(v any) bool { return validators.Compare(v, validators.Lt, 0) },
		func(s *js.Schema, _ any) { s.ExclusiveMaximum = js.MinFloat(s.ExclusiveMaximum, 0) })
	check(FamilyNumber, "nonpositive", skema.CodeTooBig, func(v any) bool { return validators.Compare(v, validators.Le, 0) },
		func(s *js.Schema, _ any) { s.Maximum = js.MinFloat(s.Maximum, 0) })
	check(FamilyNumber, "nonZero", skema.CodeInvalidValue, validators.NonZero, nil)
	check(FamilyNumber, "percentage", skema.CodeInvalidValue, validators.Percentage, func(s *js.Schema, _ any) {
		s.Minimum = js.MaxFloat(s.Minimum, 0)
		s.Maximum = js.MinFloat(s.Maximum, 100)
	})

	comparison := func(name, code string, op validators.Op, project func(*js.Schema, float64)) {
		define(name, ruleDef{
			family: FamilyNumber,
			entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
				x, _ := a.(float64)
				return validators.Compare(v, op, x)
			}), func(s *js.Schema, a any) {
				if x, ok := a.(float64); ok {
					project(s, x)
				}
			}),
			rule: func(a any, msg string) (skema.Rule, error) {
				x, err := floatArg(a)
				if err != nil {
					return skema.Rule{}, err
				}
				return skema.Check(name, code, x, params("value", fmtFloat(x)), msg), nil
			},
		})
	}
	comparison("gt", skema.CodeTooSmall, validators.Gt, func(s *js.Schema, x float64) { s.ExclusiveMinimum = js.MaxFloat(s.ExclusiveMinimum, x) })
	comparison("gte", skema.CodeTooSmall, validators.Ge, func(s *js.Schema, x float64) { s.Minimum = js.MaxFloat(s.Minimum, x) })
	comparison("lt", skema.CodeTooBig, validators.Lt, func(s *js.Schema, x float64) { s.ExclusiveMaximum = js.MinFloat(s.ExclusiveMaximum, x) })
	comparison("lte", skema.CodeTooBig, validators.Le, func(s *js.Schema, x float64) { s.Maximum = js.MinFloat(s.Maximum, x) })

	define("multipleOf", ruleDef{
		family: FamilyNumber,
		entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
			x, _ := a.(float64)
			return validators.MultipleOf(v, x)
		}), func(s *js.Schema, a any) {
			if x, ok := a.(float64); ok {
				s.MultipleOf = js.Float(x)
			}
		}),
		rule: func(a any, msg string) (skema.Rule, error) {
			x, err := floatArg(a)
			if err != nil {
				return skema.Rule{}, err
			}
			return skema.Check("multipleOf", skema.CodeInvalidValue, x, params("value", fmtFloat(x)), msg), nil
		},
	})

	define("between", ruleDef{
		family: FamilyNumber,
		entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
			r, _ := a.([2]float64)
			return validators.Between(v, r[0], r[1])
		}), func(s *js.Schema, a any) {
			if r, ok := a.([2]float64); ok {
				s.Minimum = js.MaxFloat(s.Minimum, r[0])
				s.Maximum = js.MinFloat(s.Maximum, r[1])
			}
		}),
		rule: func(a any, msg string) (skema.Rule, error) {
			r, err := floatPair(a)
			if err != nil {
				return skema.Rule{}, err
			}
			return skema.Check("between", skema.CodeInvalidValue, r, params("min", fmtFloat(r[0]), "max", fmtFloat(r[1])), msg), nil
		},
	})

	define("clamp", ruleDef{
		family: FamilyNumber,
		entry: skema.TransformerEntry(skema.Mapper(func(v, a any) any {
			r, _ := a.([2]float64)
			return validators.Clamp(v, r[0], r[1])
		})),
		rule: func(a any, _ string) (skema.Rule, error) {
			r, err := floatPair(a)
			if err != nil {
				return skema.Rule{}, err
			}
			return skema.Apply("clamp", r), nil
		},
	})
}

func floatPair(a any) ([2]float64, error) {
	x, y, err := pairArg(a, "min", "max")
	if err != nil {
		return [2]float64{}, err
	}
	lo, err := floatArg(x)
	if err != nil {
		return [2]float64{}, err
	}
	hi, err := floatArg(y)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{lo, hi}, nil
}

func intRange(lo, hi float64) skema.ProjectFunc {
	return func(s *js.Schema, _ any) {
		s.Type = "integer"
		s.Minimum = js.MaxFloat(s.Minimum, lo)
		if !math.IsInf(hi, 1) {
			s.Maximum = js.MinFloat(s.Maximum, hi)
		}
	}
}
