package schemafile_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	"github.com/reoring/skema/schemafile"
	"github.com/reoring/skema/source"
)

func load(t *testing.T, doc string) skema.Schema[any] {
	t.Helper()
	s, err := schemafile.Load(strings.NewReader(doc), source.Options{Format: source.FormatYAML})
	require.NoError(t, err)
	return s
}

func TestLoad_ShorthandRules(t *testing.T) {
	s := load(t, `
type: string
rules:
  - trim
  - min: 2
  - name: regex
    args: "^[a-z]+$"
    message: lowercase letters only
`)
	ctx := context.Background()

	got, err := s.Parse(ctx, "  ada ")
	require.NoError(t, err)
	assert.Equal(t, "ada", got)

	_, err = s.Parse(ctx, " a ")
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "min", iss.First().Rule)
	assert.Equal(t, "must have a minimum length of 2", iss.First().Message)

	_, err = s.Parse(ctx, "Ada")
	iss, ok = skema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "lowercase letters only", iss.First().Message)
}

func TestLoad_ArrayWithDefault(t *testing.T) {
	s := load(t, `
type: string
optional: true
array: true
default: guest
`)
	got, err := s.Parse(context.Background(), skema.Undefined)
	require.NoError(t, err)
	assert.Equal(t, []any{"guest"}, got)

	_, err = s.Parse(context.Background(), "guest")
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, skema.KindShape, iss.First().Kind)
	assert.Equal(t, "must be array", iss.First().Message)
}

func TestLoad_Enum(t *testing.T) {
	s := load(t, `
type: enum
values: [red, green, 3]
`)
	ctx := context.Background()
	assert.True(t, skema.Is(ctx, s, "green"))
	assert.True(t, skema.Is(ctx, s, 3.0))

	_, err := s.Parse(ctx, "blue")
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, skema.CodeInvalidEnum, iss.First().Code)
	assert.Equal(t, "Value must be one of: red, green, 3", iss.First().Message)
}

func TestLoad_Union(t *testing.T) {
	s := load(t, `
type: union
members:
  - type: string
    rules: [email]
  - type: number
    rules:
      - positive
`)
	ctx := context.Background()
	assert.True(t, skema.Is(ctx, s, "a@example.com"))
	assert.True(t, skema.Is(ctx, s, int64(5)))
	assert.False(t, skema.Is(ctx, s, "nope"))
	assert.False(t, skema.Is(ctx, s, -1))
}

func TestLoad_JSONDocument(t *testing.T) {
	s, err := schemafile.Load(strings.NewReader(`{"type":"number","rules":[{"between":[1,10]}],"nullable":true}`), source.Options{})
	require.NoError(t, err)
	ctx := context.Background()

	v, err := s.Parse(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.False(t, skema.Is(ctx, s, 11))

	doc, err := s.JSONSchema()
	require.NoError(t, err)
	assert.True(t, doc.Nullable)
	require.NotNil(t, doc.Minimum)
	assert.Equal(t, 1.0, *doc.Minimum)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := schemafile.Decode(map[string]any{"type": "string", "maxLen": 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemafile.ErrInvalidDefinition))
}

func TestCompile_Errors(t *testing.T) {
	cases := []struct {
		name string
		def  schemafile.Definition
	}{
		{"missing type", schemafile.Definition{}},
		{"unknown type", schemafile.Definition{Type: "object"}},
		{"unknown rule", schemafile.Definition{Type: "string", Rules: []schemafile.RuleDef{{Name: "shout"}}}},
		{"bad args", schemafile.Definition{Type: "string", Rules: []schemafile.RuleDef{{Name: "min", Args: "two"}}}},
		{"empty enum", schemafile.Definition{Type: "enum"}},
		{"empty union", schemafile.Definition{Type: "union"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := schemafile.Compile(c.def)
			require.Error(t, err)
			assert.True(t, errors.Is(err, schemafile.ErrInvalidDefinition), "got %v", err)
		})
	}
}
