package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Only the keywords a rule pipeline can express are modelled.
type Schema struct {
	// Core
	Schema      string `json:"$schema,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Nullable    bool   `json:"nullable,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Const       any    `json:"const,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`
}

// Draft is the dialect URI stamped on exported documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Int returns a pointer to n. Handy for the optional integer keywords.
func Int(n int) *int { return &n }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Tighten helpers keep the strictest bound when several rules set the same
// keyword (for example Min(3).Min(5) exports minLength 5).

func MaxInt(cur *int, n int) *int {
	if cur != nil && *cur >= n {
		return cur
	}
	return Int(n)
}

func MinInt(cur *int, n int) *int {
	if cur != nil && *cur <= n {
		return cur
	}
	return Int(n)
}

func MaxFloat(cur *float64, f float64) *float64 {
	if cur != nil && *cur >= f {
		return cur
	}
	return Float(f)
}

func MinFloat(cur *float64, f float64) *float64 {
	if cur != nil && *cur <= f {
		return cur
	}
	return Float(f)
}
