package dsl

import (
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/validators"
	js "github.com/reoring/skema/jsonschema"
)

// StringSchema is the string family builder. It embeds the underlying
// skema.Schema, so Parse, Default and JSONSchema are available directly and
// the embedded Schema field can be handed to skema.Optional, skema.Array and
// the other type-changing modifiers.
type StringSchema struct {
	skema.Schema[string]
}

// String returns a schema whose base rule accepts Go strings. msg overrides
// the base failure message.
func String(msg ...string) StringSchema {
	return StringSchema{skema.New[string](Registry(), mustRule("string", nil, msg), nil, nil)}
}

func (s StringSchema) with(name string, args any, msg []string) StringSchema {
	return StringSchema{s.Schema.Append(mustRule(name, args, msg))}
}

// Min requires at least n characters.
func (s StringSchema) Min(n int, msg ...string) StringSchema { return s.with("min", n, msg) }

// Max allows at most n characters.
func (s StringSchema) Max(n int, msg ...string) StringSchema { return s.with("max", n, msg) }

// Length requires exactly n characters.
func (s StringSchema) Length(n int, msg ...string) StringSchema { return s.with("length", n, msg) }

// NonEmpty requires at least one character.
func (s StringSchema) NonEmpty(msg ...string) StringSchema { return s.with("nonempty", nil, msg) }

// Regex requires a match of an ECMAScript-flavoured pattern. It panics if the
// pattern does not compile, like regexp.MustCompile.
func (s StringSchema) Regex(pattern string, msg ...string) StringSchema {
	return s.with("regex", pattern, msg)
}

// RegexOf is Regex with a precompiled pattern.
func (s StringSchema) RegexOf(re *regexp2.Regexp, msg ...string) StringSchema {
	return s.with("regex", re, msg)
}

func (s StringSchema) Includes(sub string, msg ...string) StringSchema {
	return s.with("includes", sub, msg)
}

func (s StringSchema) StartsWith(prefix string, msg ...string) StringSchema {
	return s.with("startsWith", prefix, msg)
}

func (s StringSchema) EndsWith(suffix string, msg ...string) StringSchema {
	return s.with("endsWith", suffix, msg)
}

func (s StringSchema) Lowercase(msg ...string) StringSchema { return s.with("lowercase", nil, msg) }
func (s StringSchema) Uppercase(msg ...string) StringSchema { return s.with("uppercase", nil, msg) }

// Whitespace requires the string to consist of white space only.
func (s StringSchema) Whitespace(msg ...string) StringSchema { return s.with("whitespace", nil, msg) }

// Trim strips leading and trailing white space.
func (s StringSchema) Trim() StringSchema { return s.with("trim", nil, nil) }

func (s StringSchema) ToLowerCase() StringSchema { return s.with("toLowerCase", nil, nil) }
func (s StringSchema) ToUpperCase() StringSchema { return s.with("toUpperCase", nil, nil) }

// Normalize applies Unicode normalization. form is one of NFC (the default),
// NFD, NFKC or NFKD.
func (s StringSchema) Normalize(form ...string) StringSchema {
	f := "NFC"
	if len(form) > 0 && form[0] != "" {
		f = form[0]
	}
	return s.with("normalize", f, nil)
}

// Transform appends a string to string transformer. Use skema.Transform to
// change the output type.
func (s StringSchema) Transform(fn func(string) string) StringSchema {
	return StringSchema{skema.Transform(s.Schema, fn)}
}

// Refine appends a custom check.
func (s StringSchema) Refine(fn func(string) bool, msg ...string) StringSchema {
	return StringSchema{skema.Refine(s.Schema, fn, msg...)}
}

// Default sets the value used for absent input.
func (s StringSchema) Default(v string) StringSchema { return StringSchema{s.Schema.Default(v)} }

// WithRegistry binds the schema to another registry, typically one made with
// Registry().Extend.
func (s StringSchema) WithRegistry(r *skema.Registry) StringSchema {
	return StringSchema{s.Schema.WithRegistry(r)}
}

// Optional, Nullable, Nullish and Array end the family chain and return the
// plain schema with the widened output type.

func (s StringSchema) Optional() skema.Schema[*string] { return skema.Optional(s.Schema) }
func (s StringSchema) Nullable() skema.Schema[*string] { return skema.Nullable(s.Schema) }
func (s StringSchema) Nullish() skema.Schema[*string]  { return skema.Nullish(s.Schema) }
func (s StringSchema) Array() skema.Schema[[]string]   { return skema.Array(s.Schema) }

func init() {
	check(FamilyString, "string", skema.CodeInvalidType, validators.IsString, typed("string"))
	check(FamilyString, "whitespace", skema.CodePattern, validators.Whitespace, nil)
	check(FamilyString, "nonempty", skema.CodeTooShort, func(v any) bool { return validators.MinLength(v, 1) },
		func(s *js.Schema, _ any) { s.MinLength = js.MaxInt(s.MinLength, 1) })
	check(FamilyString, "lowercase", skema.CodeInvalidFormat, validators.Lowercase, nil)
	check(FamilyString, "uppercase", skema.CodeInvalidFormat, validators.Uppercase, nil)

	lengthRule := func(name, code string, pred func(any, int) bool, project func(*js.Schema, int)) {
		define(name, ruleDef{
			family: FamilyString,
			entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
				n, _ := a.(int)
				return pred(v, n)
			}), func(s *js.Schema, a any) {
				if n, ok := a.(int); ok {
					project(s, n)
				}
			}),
			rule: func(a any, msg string) (skema.Rule, error) {
				n, err := intArg(a)
				if err != nil {
					return skema.Rule{}, err
				}
				return skema.Check(name, code, n, params(name, strconv.Itoa(n)), msg), nil
			},
		})
	}
	lengthRule("min", skema.CodeTooShort, validators.MinLength, func(s *js.Schema, n int) { s.MinLength = js.MaxInt(s.MinLength, n) })
	lengthRule("max", skema.CodeTooLong, validators.MaxLength, func(s *js.Schema, n int) { s.MaxLength = js.MinInt(s.MaxLength, n) })
	lengthRule("length", skema.CodeInvalidLength, validators.ExactLength, func(s *js.Schema, n int) {
		s.MinLength, s.MaxLength = js.Int(n), js.Int(n)
	})

	define("regex", ruleDef{
		family: FamilyString,
		entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
			re, _ := a.(*regexp2.Regexp)
			return validators.Matches(v, re)
		}), func(s *js.Schema, a any) {
			if re, ok := a.(*regexp2.Regexp); ok {
				s.Pattern = re.String()
			}
		}),
		rule: func(a any, msg string) (skema.Rule, error) {
			re, err := regexArg(a)
			if err != nil {
				return skema.Rule{}, err
			}
			return skema.Check("regex", skema.CodePattern, re, params("pattern", re.String()), msg), nil
		},
	})

	substring := func(name, param string, pred func(any, string) bool) {
		define(name, ruleDef{
			family: FamilyString,
			entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
				sub, _ := a.(string)
				return pred(v, sub)
			}), nil),
			rule: func(a any, msg string) (skema.Rule, error) {
				sub, err := stringArg(a)
				if err != nil {
					return skema.Rule{}, err
				}
				return skema.Check(name, skema.CodeInvalidValue, sub, params(param, sub), msg), nil
			},
		})
	}
	substring("includes", "substring", validators.Includes)
	substring("startsWith", "prefix", validators.StartsWith)
	substring("endsWith", "suffix", validators.EndsWith)

	mapper(FamilyString, "trim", validators.Trim)
	mapper(FamilyString, "toLowerCase", validators.ToLower)
	mapper(FamilyString, "toUpperCase", validators.ToUpper)
	define("normalize", ruleDef{
		family: FamilyString,
		entry: skema.TransformerEntry(skema.Mapper(func(v, a any) any {
			form, _ := a.(string)
			return validators.Normalize(v, validators.NormalForm(form))
		})),
		rule: func(a any, _ string) (skema.Rule, error) {
			form := "NFC"
			if a != nil {
				f, err := stringArg(a)
				if err != nil {
					return skema.Rule{}, err
				}
				form = f
			}
			return skema.Apply("normalize", form), nil
		},
	})
}
