// Package skema provides:
//
// - Schemas built from an ordered pipeline of named rules (validators and transformers)
// - A registry that resolves rule names to implementations, extensible by families
// - Type-state tracking: Optional/Nullable/Nullish/Array/Transform change the output type
// - A stable error model via Issues (JSON Pointer, code, message) and InternalError for defects
// - Presence metadata through ParseWithMeta and JSON Schema export
//
// Design policy:
// - Keep the engine and public types in the root package; rule catalogues live under internal/.
// - Place builders under dsl/, codecs under codec/, and the CLI under cmd/skema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	name := dsl.String().Min(2).Max(40).Trim()
//	v, err := name.Parse(ctx, "  Ada ")
//
//	tags := skema.Array(dsl.String().Min(1).Optional())
//	res, err := skema.SafeParse(ctx, tags, input)
package skema
