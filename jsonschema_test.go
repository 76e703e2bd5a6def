package skema_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
	js "github.com/reoring/skema/jsonschema"
)

func TestJSONSchema_String(t *testing.T) {
	doc, err := g.String().Min(2).Max(5).Min(3).Trim().Regex("^[a-z]+$").JSONSchema()
	if err != nil {
		t.Fatalf("json schema: %v", err)
	}
	want := &js.Schema{Type: "string", MinLength: js.Int(3), MaxLength: js.Int(5), Pattern: "^[a-z]+$"}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSchema_ArrayNullableDefault(t *testing.T) {
	s := skema.Array(g.Number().Gte(0).Lt(10).Nullable())
	s = skema.Refine(s, func([]*float64) bool { return true })
	doc, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("json schema: %v", err)
	}
	want := &js.Schema{
		Type: "array",
		Items: &js.Schema{
			Type:             "number",
			Minimum:          js.Float(0),
			ExclusiveMaximum: js.Float(10),
			Nullable:         true,
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	withDefault, err := g.String().Default("x").Array().JSONSchema()
	if err != nil {
		t.Fatalf("json schema: %v", err)
	}
	if diff := cmp.Diff([]any{"x"}, withDefault.Default); diff != "" {
		t.Fatalf("lifted default mismatch:\n%s", diff)
	}
}

func TestJSONSchema_NestedArray(t *testing.T) {
	doc, err := skema.Array(g.String().Min(2).Array()).JSONSchema()
	if err != nil {
		t.Fatalf("json schema: %v", err)
	}
	want := &js.Schema{
		Type:  "array",
		Items: &js.Schema{Type: "array", Items: &js.Schema{Type: "string", MinLength: js.Int(2)}},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSchema_EnumUnionAndDocument(t *testing.T) {
	u := g.Union(g.Enum("a", "b"), g.Bool().Schema)
	doc, err := skema.Document(u)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	want := &js.Schema{
		Schema: js.Draft,
		AnyOf: []*js.Schema{
			{Enum: []any{"a", "b"}},
			{Type: "boolean"},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSchema_UnknownRule(t *testing.T) {
	s := g.String().Schema.Append(skema.Check("shout", "", nil, nil))
	if _, err := s.JSONSchema(); !skema.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestParseWithMeta_Presence(t *testing.T) {
	ctx := context.Background()
	s := skema.Nullish(g.String().Default("d").Schema)

	cases := []struct {
		name string
		in   any
		want skema.Presence
	}{
		{"value", "v", skema.PresenceSeen},
		{"null", nil, skema.PresenceSeen | skema.PresenceWasNull | skema.PresenceDefaultApplied},
		{"absent", skema.Undefined, skema.PresenceDefaultApplied},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := s.ParseWithMeta(ctx, c.in)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := d.Presence["/"]; got != c.want {
				t.Fatalf("presence = %b, want %b", got, c.want)
			}
			if d.Value == nil {
				t.Fatalf("expected a value")
			}
		})
	}
}

func TestParseWithMeta_ArraySlots(t *testing.T) {
	s := skema.Array(g.String().Nullable())
	d, err := s.ParseWithMeta(context.Background(), []any{"a", nil})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.Presence.Has("/0", skema.PresenceSeen) || d.Presence.Has("/0", skema.PresenceWasNull) {
		t.Fatalf("slot 0: %b", d.Presence["/0"])
	}
	if !d.Presence.Has("/1", skema.PresenceSeen|skema.PresenceWasNull) {
		t.Fatalf("slot 1: %b", d.Presence["/1"])
	}
	if len(d.Value) != 2 || d.Value[1] != nil || *d.Value[0] != "a" {
		t.Fatalf("value = %v", d.Value)
	}
}

func TestState_Input(t *testing.T) {
	cases := []struct {
		name string
		st   skema.State
		want skema.InputKinds
	}{
		{"plain", g.String().State(), skema.InputKinds{}},
		{"optional", g.String().Optional().State(), skema.InputKinds{Absent: true}},
		{"nullable", g.String().Nullable().State(), skema.InputKinds{Null: true}},
		{"nullish", g.String().Nullish().State(), skema.InputKinds{Absent: true, Null: true}},
		{"default", g.String().Default("x").State(), skema.InputKinds{Absent: true}},
	}
	for _, c := range cases {
		if got := c.st.Input(); got != c.want {
			t.Errorf("%s: Input() = %+v, want %+v", c.name, got, c.want)
		}
	}
	if st := g.String().Array().State(); !st.Array || st.Optional {
		t.Fatalf("array state %+v", st)
	}
}

func TestErase_WithState(t *testing.T) {
	ctx := context.Background()
	s := skema.Erase(g.String().Min(2).Schema)
	s = skema.WithDefault(s, "dflt")
	s = skema.WithState(s, skema.State{Array: true})

	got, err := s.Parse(ctx, skema.Undefined)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]any{"dflt"}, got); diff != "" {
		t.Fatalf("mismatch:\n%s", diff)
	}
	if !s.State().HasDefault {
		t.Fatalf("WithState must keep HasDefault")
	}
}
