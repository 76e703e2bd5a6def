package skema

// undefined marks an absent value. Go has a single nil, which skema reserves
// for null.
type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the absent-value sentinel. Pass it to Parse to model a value
// that was not supplied at all (as opposed to nil, which models null).
var Undefined any = undefined{}

// IsUndefined reports whether v is the absent-value sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// State is the runtime record of the modifiers applied to a schema. The same
// information is carried statically by the schema's output type parameter
// (see Optional, Nullable, Nullish, Array and Transform).
type State struct {
	Optional   bool
	Nullable   bool
	Nullish    bool
	Array      bool
	HasDefault bool
}

// SetOptional returns s with Optional set. The other SetX helpers follow the
// same pattern: exactly one dimension changes.
func (s State) SetOptional() State { s.Optional = true; return s }
func (s State) SetNullable() State { s.Nullable = true; return s }
func (s State) SetNullish() State  { s.Nullish = true; return s }
func (s State) SetArray() State    { s.Array = true; return s }
func (s State) SetDefault() State  { s.HasDefault = true; return s }

// acceptsAbsent reports whether a failed base check may be waived for an
// absent element.
func (s State) acceptsAbsent() bool { return s.Optional || s.Nullish }

// acceptsNull reports whether a failed base check may be waived for null.
func (s State) acceptsNull() bool { return s.Nullable || s.Nullish }

// InputKinds describes which special inputs a schema's input side admits on
// top of its base type.
type InputKinds struct {
	// Absent is true when the value may be omitted (optional, nullish, or a
	// default fills it in).
	Absent bool
	// Null is true when the value may be null.
	Null bool
}

// Input derives the input-side widening from the state.
func (s State) Input() InputKinds {
	return InputKinds{
		Absent: s.Optional || s.Nullish || s.HasDefault,
		Null:   s.Nullable || s.Nullish,
	}
}
