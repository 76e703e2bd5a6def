package codec_test

import (
	"context"
	"testing"
	"time"

	"github.com/reoring/skema"
	"github.com/reoring/skema/codec"
	g "github.com/reoring/skema/dsl"
)

func TestTimeRFC3339_Codec_Basic(t *testing.T) {
	c := codec.TimeRFC3339()
	ctx := context.Background()

	in := "2025-01-01T00:00:00Z"
	got, err := c.Decode(ctx, in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestTimeRFC3339_RejectsGarbage(t *testing.T) {
	_, err := codec.TimeRFC3339().Decode(context.Background(), "yesterday")
	iss, ok := skema.AsIssues(err)
	if !ok || iss.First().Code != skema.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
	if iss.First().Message != "must be an RFC 3339 timestamp" {
		t.Fatalf("unexpected message %q", iss.First().Message)
	}
}

func TestTimeRFC3339_NonStringHitsBaseRule(t *testing.T) {
	_, err := codec.TimeRFC3339().Decode(context.Background(), 42)
	iss, ok := skema.AsIssues(err)
	if !ok || iss.First().Rule != "string" {
		t.Fatalf("expected string base rule failure, got %v", err)
	}
}

func TestTimeRFC3339_OptionalAndArray(t *testing.T) {
	ctx := context.Background()
	s := skema.Array(skema.Optional(codec.TimeRFC3339().Out()))
	got, err := s.Parse(ctx, []any{"2025-01-01T00:00:00Z", skema.Undefined})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if len(got) != 2 || got[0] == nil || got[1] != nil {
		t.Fatalf("unexpected result %v", got)
	}
	if got[0].Year() != 2025 {
		t.Fatalf("unexpected year %d", got[0].Year())
	}
}

func TestEncodePreserving(t *testing.T) {
	c := codec.TimeRFC3339()
	ctx := context.Background()

	dx, err := c.DecodeWithMeta(ctx, "2025-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("decode with meta err: %v", err)
	}
	s, err := c.EncodePreserving(ctx, dx)
	if err != nil {
		t.Fatalf("encode preserving err: %v", err)
	}
	if s != "2025-01-01T00:00:00Z" {
		t.Fatalf("unexpected preserving output: %v", s)
	}

	null := skema.Decoded[time.Time]{Presence: skema.PresenceMap{"/": skema.PresenceWasNull | skema.PresenceSeen}}
	if s, err := c.EncodePreserving(ctx, null); err != nil || s != nil {
		t.Fatalf("expected null, got %v %v", s, err)
	}
	missing := skema.Decoded[time.Time]{Presence: skema.PresenceMap{"/": skema.PresenceDefaultApplied}}
	if s, err := c.EncodePreserving(ctx, missing); err != nil || !skema.IsUndefined(s) {
		t.Fatalf("expected absent, got %v %v", s, err)
	}
}

func TestDuration(t *testing.T) {
	c := codec.Duration()
	ctx := context.Background()
	d, err := c.Decode(ctx, "1h30m")
	if err != nil || d != 90*time.Minute {
		t.Fatalf("decode: %v %v", d, err)
	}
	s, err := c.Encode(ctx, d)
	if err != nil || s != "1h30m0s" {
		t.Fatalf("encode: %q %v", s, err)
	}
	if _, err := c.Decode(ctx, "soon"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestStringBool(t *testing.T) {
	c := codec.StringBool()
	ctx := context.Background()
	b, err := c.Decode(ctx, "true")
	if err != nil || !b {
		t.Fatalf("decode: %v %v", b, err)
	}
	if _, err := c.Decode(ctx, "TRUE"); err == nil {
		t.Fatalf("expected case-sensitive rejection")
	}
	s, err := c.Encode(ctx, false)
	if err != nil || s != "false" {
		t.Fatalf("encode: %q %v", s, err)
	}
}

func TestIdentity_String_Parse_Decode_Encode(t *testing.T) {
	ctx := context.Background()

	schema := g.String().Min(2).Schema
	id := codec.Identity(schema)

	dv, err := id.Decode(ctx, "asdf")
	if err != nil || dv != "asdf" {
		t.Fatalf("decode err=%v v=%q", err, dv)
	}
	ev, err := id.Encode(ctx, dv)
	if err != nil || ev != "asdf" {
		t.Fatalf("encode err=%v v=%q", err, ev)
	}
	if _, err := id.Encode(ctx, "a"); err == nil {
		t.Fatalf("expected encode to re-validate")
	}
}

func TestRegistryExtendsDSL(t *testing.T) {
	r := codec.Registry()
	if owner, ok := r.Owner("rfc3339"); !ok || owner != "codec" {
		t.Fatalf("rfc3339 owner = %q %v", owner, ok)
	}
	if _, ok := g.Registry().Lookup("rfc3339"); ok {
		t.Fatalf("extending must not modify the dsl registry")
	}
}
