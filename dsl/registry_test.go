package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
	js "github.com/reoring/skema/jsonschema"
)

func TestFamilies_OrderAndOwnership(t *testing.T) {
	var names []string
	for _, f := range g.Families() {
		names = append(names, f.Name)
	}
	want := []string{g.FamilyString, g.FamilyNumber, g.FamilyBoolean, g.FamilyDate, g.FamilyValue, g.FamilyEnum, g.FamilyUnion}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("family order (-want +got):\n%s", diff)
	}

	reg := g.Registry()
	assert.Same(t, reg, g.Registry(), "the default registry is built once")
	for _, c := range []struct{ rule, family string }{
		{"trim", g.FamilyString},
		{"email", g.FamilyString},
		{"clamp", g.FamilyNumber},
		{"stringBool", g.FamilyBoolean},
		{"dateBetween", g.FamilyDate},
		{"truthy", g.FamilyValue},
		{"refine", "core"},
	} {
		owner, ok := reg.Owner(c.rule)
		assert.True(t, ok, c.rule)
		assert.Equal(t, c.family, owner, c.rule)
	}
	assert.Equal(t, []string{"boolean", "isFalse", "isTrue", "stringBool"}, g.RuleNames(g.FamilyBoolean))
}

func TestNewRule_LooseArgs(t *testing.T) {
	cases := []struct {
		name string
		args any
	}{
		{"min", int64(2)},
		{"min", "2"},
		{"max", 4.0},
		{"gt", 1.5},
		{"between", []any{int64(1), 2.5}},
		{"between", map[string]any{"min": 1, "max": 2}},
		{"clamp", []any{0, 10}},
		{"after", "2025-01-01T00:00:00Z"},
		{"dateBetween", []any{"2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z"}},
		{"enum", []string{"a", "b"}},
		{"hash", "SHA256"},
		{"normalize", "nfkc"},
	}
	for _, c := range cases {
		_, err := g.NewRule(c.name, c.args, "")
		assert.NoError(t, err, "%s(%#v)", c.name, c.args)
	}

	for _, c := range []struct {
		name string
		args any
	}{
		{"min", "two"},
		{"between", []any{1}},
		{"after", "yesterday"},
		{"enum", "abc"},
		{"union", []any{"not a schema"}},
		{"startsWith", 1},
		{"min", 2.5},
		{"length", "3.5"},
	} {
		_, err := g.NewRule(c.name, c.args, "")
		assert.Error(t, err, "%s(%#v)", c.name, c.args)
	}

	_, err := g.NewRule("shout", nil, "")
	assert.True(t, errors.Is(err, skema.ErrUnknownRule))
}

func TestNewRule_MatchesBuilder(t *testing.T) {
	r, err := g.NewRule("min", 3, "custom")
	require.NoError(t, err)
	s := g.String().Schema.Append(r)
	_, err = s.Parse(context.Background(), "ab")
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "custom", iss.First().Message)
	assert.Equal(t, map[string]string{"min": "3"}, iss.First().Params)
}

func TestBase(t *testing.T) {
	for _, name := range g.BaseTypes() {
		s, err := g.Base(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, s.Name(), name)
	}
	_, err := g.Base("object")
	assert.Error(t, err)

	s, err := g.Base("int")
	require.NoError(t, err)
	v, err := s.Parse(context.Background(), int64(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v, "untyped schemas return the engine value")
}

func TestJSONSchema_Families(t *testing.T) {
	cases := []struct {
		name string
		p    skema.Parser
		want *js.Schema
	}{
		{"email", g.Email(), &js.Schema{Type: "string", Format: "email"}},
		{"hash", g.Hash("md5"), &js.Schema{Type: "string", Pattern: "^[a-fA-F0-9]{32}$"}},
		{"int range", g.Int().Uint8().Positive(), &js.Schema{Type: "integer", Minimum: js.Float(0), Maximum: js.Float(255), ExclusiveMinimum: js.Float(0)}},
		{"between", g.Number().Between(1, 5).Lte(4).MultipleOf(0.5), &js.Schema{Type: "number", Minimum: js.Float(1), Maximum: js.Float(4), MultipleOf: js.Float(0.5)}},
		{"true", g.Bool().True(), &js.Schema{Type: "boolean", Const: true}},
		{"date", g.Date(), &js.Schema{Type: "string", Format: "date-time"}},
		{"null", g.Null(), &js.Schema{Type: "null"}},
		{"enum", g.Enum(1, 2), &js.Schema{Enum: []any{1, 2}}},
		{"unknown", g.Unknown(), &js.Schema{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.p.JSONSchema()
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
