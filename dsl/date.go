package dsl

import (
	"context"
	"time"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/validators"
	js "github.com/reoring/skema/jsonschema"
)

// DateSchema is the date family builder. Inputs must be time.Time values;
// use codec.TimeRFC3339 to accept strings.
type DateSchema struct {
	skema.Schema[time.Time]
}

// Date accepts non-zero time.Time values.
func Date(msg ...string) DateSchema {
	return DateSchema{skema.New[time.Time](Registry(), mustRule("date", nil, msg), nil, nil)}
}

func (s DateSchema) with(name string, args any, msg []string) DateSchema {
	return DateSchema{s.Schema.Append(mustRule(name, args, msg))}
}

func (s DateSchema) After(t time.Time, msg ...string) DateSchema  { return s.with("after", t, msg) }
func (s DateSchema) Before(t time.Time, msg ...string) DateSchema { return s.with("before", t, msg) }

// Same requires the same instant as t (locations may differ).
func (s DateSchema) Same(t time.Time, msg ...string) DateSchema { return s.with("isSame", t, msg) }

// Between requires lo <= v <= hi.
func (s DateSchema) Between(lo, hi time.Time, msg ...string) DateSchema {
	return s.with("dateBetween", [2]time.Time{lo, hi}, msg)
}

// Future and Past compare against the clock in the parse context (see
// WithClock), falling back to time.Now.
func (s DateSchema) Future(msg ...string) DateSchema { return s.with("future", nil, msg) }
func (s DateSchema) Past(msg ...string) DateSchema   { return s.with("past", nil, msg) }

func (s DateSchema) Weekend(msg ...string) DateSchema { return s.with("weekend", nil, msg) }
func (s DateSchema) Weekday(msg ...string) DateSchema { return s.with("weekday", nil, msg) }

func (s DateSchema) Transform(fn func(time.Time) time.Time) DateSchema {
	return DateSchema{skema.Transform(s.Schema, fn)}
}

func (s DateSchema) Refine(fn func(time.Time) bool, msg ...string) DateSchema {
	return DateSchema{skema.Refine(s.Schema, fn, msg...)}
}

func (s DateSchema) Default(v time.Time) DateSchema { return DateSchema{s.Schema.Default(v)} }

func (s DateSchema) WithRegistry(r *skema.Registry) DateSchema {
	return DateSchema{s.Schema.WithRegistry(r)}
}

func (s DateSchema) Optional() skema.Schema[*time.Time] { return skema.Optional(s.Schema) }
func (s DateSchema) Nullable() skema.Schema[*time.Time] { return skema.Nullable(s.Schema) }
func (s DateSchema) Nullish() skema.Schema[*time.Time]  { return skema.Nullish(s.Schema) }
func (s DateSchema) Array() skema.Schema[[]time.Time]   { return skema.Array(s.Schema) }

type clockKey struct{}

// WithClock makes Future and Past compare against now() instead of the wall
// clock. It keeps time-relative checks deterministic in tests.
func WithClock(ctx context.Context, now func() time.Time) context.Context {
	return context.WithValue(ctx, clockKey{}, now)
}

func clock(ctx context.Context) time.Time {
	if now, ok := ctx.Value(clockKey{}).(func() time.Time); ok && now != nil {
		return now()
	}
	return time.Now()
}

func init() {
	check(FamilyDate, "date", skema.CodeInvalidType, validators.IsDate, func(s *js.Schema, _ any) {
		s.Type, s.Format = "string", "date-time"
	})
	check(FamilyDate, "weekend", skema.CodeInvalidValue, validators.Weekend, nil)
	check(FamilyDate, "weekday", skema.CodeInvalidValue, validators.Weekday, nil)

	relative := func(name, code string, pred func(any, time.Time) bool) {
		define(name, ruleDef{
			family: FamilyDate,
			entry: skema.ValidatorEntry(func(ctx context.Context, v, _ any) (bool, error) {
				return pred(v, clock(ctx)), nil
			}, nil),
			rule: func(_ any, msg string) (skema.Rule, error) {
				return skema.Check(name, code, nil, nil, msg), nil
			},
		})
	}
	relative("future", skema.CodeTooSmall, validators.After)
	relative("past", skema.CodeTooBig, validators.Before)

	comparison := func(name, code string, pred func(any, time.Time) bool) {
		define(name, ruleDef{
			family: FamilyDate,
			entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
				t, _ := a.(time.Time)
				return pred(v, t)
			}), nil),
			rule: func(a any, msg string) (skema.Rule, error) {
				t, err := timeArg(a)
				if err != nil {
					return skema.Rule{}, err
				}
				return skema.Check(name, code, t, params("date", t.Format(time.RFC3339)), msg), nil
			},
		})
	}
	comparison("after", skema.CodeTooSmall, validators.After)
	comparison("before", skema.CodeTooBig, validators.Before)
	comparison("isSame", skema.CodeInvalidValue, validators.Same)

	define("dateBetween", ruleDef{
		family: FamilyDate,
		entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
			r, _ := a.([2]time.Time)
			return validators.DateBetween(v, r[0], r[1])
		}), nil),
		rule: func(a any, msg string) (skema.Rule, error) {
			x, y, err := pairArg(a, "min", "max")
			if err != nil {
				return skema.Rule{}, err
			}
			lo, err := timeArg(x)
			if err != nil {
				return skema.Rule{}, err
			}
			hi, err := timeArg(y)
			if err != nil {
				return skema.Rule{}, err
			}
			return skema.Check("dateBetween", skema.CodeInvalidValue, [2]time.Time{lo, hi},
				params("min", lo.Format(time.RFC3339), "max", hi.Format(time.RFC3339)), msg), nil
		},
	})
}
