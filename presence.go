package skema

// Presence is the bit flag collected by ParseWithMeta.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Value appeared in the input.
	PresenceWasNull                             // Value was null.
	PresenceDefaultApplied                      // Default value was applied.
)

// PresenceMap maps JSON Pointers ("/" for the value, "/i" for array slots) to
// Presence flags.
type PresenceMap map[string]Presence

// Decoded carries the parsed value along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

// Has reports whether every bit of want is set at path.
func (pm PresenceMap) Has(path string, want Presence) bool {
	return pm[path]&want == want
}

// mark records the raw input observed at index (-1 for the value itself).
// It is a no-op on a nil map so Parse pays nothing for it.
func (pm PresenceMap) mark(index int, v any, defaulted bool) {
	if pm == nil {
		return
	}
	var p Presence
	if defaulted {
		p |= PresenceDefaultApplied
	}
	if !IsUndefined(v) {
		p |= PresenceSeen
	}
	if v == nil {
		p |= PresenceWasNull
	}
	if p != 0 {
		pm[pointer(index)] |= p
	}
}
