// Package codec pairs a wire schema with a domain schema built on top of it,
// so values can be decoded from their wire form and encoded back.
package codec

import (
	"context"
	"sync"

	"github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
)

// Codec converts between the wire representation A and the domain
// representation B. Decoding runs the domain schema's pipeline; encoding
// converts back and re-validates the result against the wire schema.
type Codec[A, B any] struct {
	in     skema.Schema[A]
	out    skema.Schema[B]
	encode func(B) A
}

// New assembles a codec from its wire schema, the domain schema derived from
// it, and the inverse conversion.
func New[A, B any](in skema.Schema[A], out skema.Schema[B], encode func(B) A) Codec[A, B] {
	return Codec[A, B]{in: in, out: out, encode: encode}
}

// In returns the wire schema.
func (c Codec[A, B]) In() skema.Schema[A] { return c.in }

// Out returns the domain schema: wire checks followed by the conversion.
func (c Codec[A, B]) Out() skema.Schema[B] { return c.out }

// Decode parses a raw wire value into B.
func (c Codec[A, B]) Decode(ctx context.Context, v any) (B, error) {
	return c.out.Parse(ctx, v)
}

// DecodeWithMeta is Decode with presence metadata.
func (c Codec[A, B]) DecodeWithMeta(ctx context.Context, v any) (skema.Decoded[B], error) {
	return c.out.ParseWithMeta(ctx, v)
}

// Encode converts b back to its wire form and validates it.
func (c Codec[A, B]) Encode(ctx context.Context, b B) (A, error) {
	a := c.encode(b)
	if _, err := c.in.Parse(ctx, a); err != nil {
		var zero A
		return zero, err
	}
	return a, nil
}

// EncodePreserving respects presence metadata: a value that was absent or
// filled in by a default encodes as absent, and null as null. Only values
// actually seen in the input are encoded.
func (c Codec[A, B]) EncodePreserving(ctx context.Context, db skema.Decoded[B]) (any, error) {
	if db.Presence != nil {
		switch p := db.Presence["/"]; {
		case p&skema.PresenceWasNull != 0:
			return nil, nil
		case p&skema.PresenceSeen == 0:
			return skema.Undefined, nil
		}
	}
	return c.Encode(ctx, db.Value)
}

// Identity returns a codec whose wire and domain forms are the same schema.
func Identity[T any](s skema.Schema[T]) Codec[T, T] {
	return New(s, s, func(t T) T { return t })
}

var registry = sync.OnceValue(func() *skema.Registry {
	r, err := dsl.Registry().Extend(family())
	if err != nil {
		panic(err)
	}
	return r
})

// Registry returns the dsl registry extended with the codec family.
func Registry() *skema.Registry { return registry() }
