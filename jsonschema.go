package skema

import (
	js "github.com/reoring/skema/jsonschema"
)

// JSONSchema projects the schema into a JSON Schema document. Each rule whose
// registry entry has a ProjectFunc contributes keywords; rules without one
// (transformers, refinements) are not representable and are skipped.
func (s Schema[T]) JSONSchema() (*js.Schema, error) {
	if s.registry == nil {
		return nil, &InternalError{Schema: s.name, Err: ErrNoRegistry}
	}
	elem := &js.Schema{}
	if s.nested != nil {
		inner, err := s.nested.jsonSchema()
		if err != nil {
			return nil, err
		}
		elem = inner
	}
	if err := s.project(elem, s.pipeline); err != nil {
		return nil, err
	}
	if s.state.acceptsNull() {
		elem.Nullable = true
	}
	if !s.state.Array {
		if s.state.HasDefault && !IsUndefined(s.def) {
			elem.Default = s.def
		}
		return elem, nil
	}
	out := &js.Schema{Type: "array", Items: elem}
	if err := s.project(out, s.post); err != nil {
		return nil, err
	}
	if s.state.HasDefault && !IsUndefined(s.def) {
		out.Default = s.def
	}
	return out, nil
}

func (s Schema[T]) project(dst *js.Schema, rules []Rule) error {
	for _, r := range rules {
		e, ok := s.registry.Lookup(r.Name)
		if !ok {
			return &InternalError{Schema: s.name, Rule: r.Name, Err: ErrUnknownRule}
		}
		if e.Project != nil {
			e.Project(dst, r.Args)
		}
	}
	return nil
}

// Document wraps JSONSchema with the $schema dialect marker for standalone
// export.
func Document(p Parser) (*js.Schema, error) {
	doc, err := p.JSONSchema()
	if err != nil {
		return nil, err
	}
	doc.Schema = js.Draft
	return doc, nil
}
