// Package dsl provides the built-in rule families and their typed builders.
//
// Overview
//   - Families: string, number, boolean, date, value, enum and union. Each registers its rules into the default Registry.
//   - Builders: String(), Number(), Int(), NumberOf[N](), Bool(), Date(), Unknown(), Null(), Undefined(), Nil().
//   - Formats: Email(), UUID(), URL(), IPv4() and the other string formats are String() with one format rule appended.
//   - Enum/Union: Enum(values...) and Union(members...) accept fixed value sets and alternatives.
//   - Declarative use: NewRule(name, args, msg) and Base(type) build the same rules from loosely typed arguments.
//
// Builder methods append rules and return a new builder; the receiver is never
// modified. Optional, Nullable, Nullish and Array leave the builder and return
// a skema.Schema with the changed output type, so rules that need the element
// type must be added before them.
//
// File layout (roles)
//   - registry.go: rule definitions, Families, Registry, NewRule, Base.
//   - args.go: loose argument decoding for NewRule (YAML numbers, RFC 3339 strings, /re/flags).
//   - string.go, format.go: string family and formats.
//   - number.go, boolean.go, date.go, value.go: the remaining scalar families.
//   - enum.go, union.go: value sets and alternatives.
//
// Example
//
//	ctx := context.Background()
//	age := dsl.Int().Between(0, 150)
//	email := dsl.Email().Trim().ToLowerCase()
//	tags := dsl.String().Min(1).Array()
//
//	n, err := age.Parse(ctx, 42)                  // 42
//	e, err := email.Parse(ctx, " Ada@Example.com ") // error: the format runs before Trim
//	ts, err := tags.Parse(ctx, []any{"a", ""})      // Issues at /1
//
// Dates compare against the wall clock unless the context carries WithClock.
package dsl
