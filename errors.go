package skema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeInvalidLength = "invalid_length"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidUnion  = "invalid_union"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidValue  = "invalid_value"
	CodeCustom        = "custom"
)

// Kind classifies a data failure.
type Kind int

const (
	// KindRule means a validator rejected an element.
	KindRule Kind = iota
	// KindShape means the top-level value did not match the array/non-array
	// expectation (or could not be projected to the output type).
	KindShape
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	default:
		return "rule"
	}
}

// Issue represents a single validation entry.
type Issue struct {
	Kind    Kind
	Path    string // JSON Pointer ("/" for the value itself, "/2" for an array slot).
	Index   int    // Array slot, -1 outside array mode.
	Code    string // One of the codes listed above.
	Rule    string // Name of the rule that produced this issue.
	Message string
	// Params carries the rule parameters used to render Message.
	Params map[string]string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_short at /1: must have a minimum length of 2
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// First returns the first issue, or the zero Issue when empty.
func (iss Issues) First() Issue {
	if len(iss) == 0 {
		return Issue{}
	}
	return iss[0]
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

var (
	// ErrUnknownRule is reported when a pipeline names a rule the registry
	// does not contain.
	ErrUnknownRule = errors.New("skema: unknown rule")
	// ErrRuleKind is reported when a rule's kind disagrees with its registry entry.
	ErrRuleKind = errors.New("skema: rule kind does not match registry entry")
	// ErrDuplicateRule is reported when two families register the same name.
	ErrDuplicateRule = errors.New("skema: duplicate rule")
	// ErrNoRegistry is reported when a schema was assembled without a registry.
	ErrNoRegistry = errors.New("skema: schema has no registry")
)

// InternalError signals a misconfigured schema. It is never produced by bad
// input and SafeParse never folds it into a Result.
type InternalError struct {
	Schema string // base name of the schema being parsed
	Rule   string
	Err    error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("skema: internal error in %q schema at rule %q: %v", e.Schema, e.Rule, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// IsInternal reports whether err carries an *InternalError.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}

// under rebases issues reported by an inner array schema onto slot index of
// the outer sequence. Index becomes the outer slot.
func (iss Issues) under(index int) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" {
			it.Path = pointer(index)
		} else {
			it.Path = pointer(index) + it.Path
		}
		it.Index = index
		out[i] = it
	}
	return out
}

func shapeIssue(index int, msg string) Issue {
	return Issue{
		Kind:    KindShape,
		Path:    pointer(index),
		Index:   index,
		Code:    CodeInvalidType,
		Rule:    "array",
		Message: msg,
	}
}

func pointer(index int) string {
	if index < 0 {
		return "/"
	}
	return "/" + strconv.Itoa(index)
}
