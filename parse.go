package skema

import (
	"context"
	"errors"
	"fmt"

	"github.com/reoring/skema/i18n"
)

// Parse runs the schema against v and returns the typed result.
//
// Data failures are returned as Issues. A misconfigured schema (unknown rule,
// kind mismatch, missing registry, failing union member pipeline) is returned
// as *InternalError. v is never modified.
func (s Schema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	out, err := s.run(ctx, v, nil)
	if err != nil {
		return zero, err
	}
	return s.decode(out)
}

// ParseAny is Parse with the result boxed as any. It lets heterogeneous
// schemas be held behind the Parser interface.
func (s Schema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	t, err := s.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ParseWithMeta parses v and reports, per JSON Pointer, whether the value was
// seen, was null, or was filled in by the default.
func (s Schema[T]) ParseWithMeta(ctx context.Context, v any) (Decoded[T], error) {
	pm := PresenceMap{}
	out, err := s.run(ctx, v, pm)
	if err != nil {
		return Decoded[T]{}, err
	}
	t, err := s.decode(out)
	if err != nil {
		return Decoded[T]{}, err
	}
	return Decoded[T]{Value: t, Presence: pm}, nil
}

func (s Schema[T]) decode(out any) (T, error) {
	t, ok := s.shape.decode(out)
	if !ok {
		var zero T
		return zero, Issues{{
			Kind:    KindShape,
			Path:    "/",
			Index:   -1,
			Code:    CodeInvalidType,
			Rule:    s.name,
			Message: fmt.Sprintf("cannot represent %T as %s", out, typeName[T]()),
		}}
	}
	return t, nil
}

// run is the engine. It substitutes defaults, fans out over sequences, runs
// the pipeline per element and reassembles a fresh result.
func (s Schema[T]) run(ctx context.Context, v any, pm PresenceMap) (any, error) {
	if s.registry == nil {
		return nil, &InternalError{Schema: s.name, Err: ErrNoRegistry}
	}
	orig, defaulted := v, false
	if IsUndefined(v) && s.state.HasDefault {
		v, defaulted = s.def, true
	}
	if s.state.Nullish && (v == nil || IsUndefined(v)) {
		// without a default this turns null into absent
		if s.state.HasDefault {
			v, defaulted = s.def, true
		} else {
			v = Undefined
		}
	}
	pm.mark(-1, orig, defaulted)

	if !s.state.Array {
		out, iss, err := s.element(ctx, s.pipeline, v, -1, true)
		if err != nil {
			return nil, err
		}
		if iss != nil {
			return nil, Issues{*iss}
		}
		return out, nil
	}

	seq, ok := asSequence(v)
	if !ok {
		return nil, Issues{shapeIssue(-1, i18n.For(LanguageFrom(ctx)).Message("array", nil))}
	}
	collect := IsCollectAll(ctx)
	results := make([]any, len(seq))
	var all Issues
	for i, el := range seq {
		pm.mark(i, el, defaulted)
		out, iss, err := s.item(ctx, el, i)
		if err != nil {
			return nil, err
		}
		if len(iss) > 0 {
			if !collect {
				return nil, iss
			}
			all = AppendIssues(all, iss...)
			continue
		}
		results[i] = out
	}
	if len(all) > 0 {
		return nil, all
	}
	if len(s.post) == 0 {
		return results, nil
	}
	out, iss, err := s.element(ctx, s.post, results, -1, false)
	if err != nil {
		return nil, err
	}
	if iss != nil {
		return nil, Issues{*iss}
	}
	return out, nil
}

// item processes one sequence element. Elements of a nested array are parsed
// by the inner schema first; its issue paths are rebased under the slot.
func (s Schema[T]) item(ctx context.Context, el any, index int) (any, Issues, error) {
	base := true
	if s.nested != nil {
		out, err := s.nested.run(ctx, el)
		if err != nil {
			iss, ok := AsIssues(err)
			if !ok {
				return nil, nil, err
			}
			return nil, iss.under(index), nil
		}
		el, base = out, false
	}
	out, iss, err := s.element(ctx, s.pipeline, el, index, base)
	if err != nil || iss == nil {
		return out, nil, err
	}
	return nil, Issues{*iss}, nil
}

// element runs rules over a single value. When base is true the schema's own
// base rule may be waived for absent or null input the state admits; in that
// case the value is returned untouched and the remaining rules are skipped.
func (s Schema[T]) element(ctx context.Context, rules []Rule, v any, index int, base bool) (any, *Issue, error) {
	for _, r := range rules {
		e, ok := s.registry.Lookup(r.Name)
		if !ok {
			return nil, nil, &InternalError{Schema: s.name, Rule: r.Name, Err: ErrUnknownRule}
		}
		if e.Kind != r.Kind {
			return nil, nil, &InternalError{
				Schema: s.name,
				Rule:   r.Name,
				Err:    fmt.Errorf("%w: pipeline has %s, registry has %s", ErrRuleKind, r.Kind, e.Kind),
			}
		}
		if r.Kind == Transformer {
			v = e.Transform(ctx, v, r.Args)
			continue
		}
		passed, err := e.Validate(ctx, v, r.Args)
		if err != nil {
			var ie *InternalError
			if errors.As(err, &ie) {
				return nil, nil, err
			}
			return nil, nil, &InternalError{Schema: s.name, Rule: r.Name, Err: err}
		}
		if passed {
			continue
		}
		if base && r.Name == s.name && s.waives(v) {
			return v, nil, nil
		}
		iss := s.issue(ctx, r, index)
		return nil, &iss, nil
	}
	return v, nil, nil
}

func (s Schema[T]) waives(v any) bool {
	return (IsUndefined(v) && s.state.acceptsAbsent()) || (v == nil && s.state.acceptsNull())
}

func (s Schema[T]) issue(ctx context.Context, r Rule, index int) Issue {
	msg := r.Message
	if msg == "" {
		msg = i18n.For(LanguageFrom(ctx)).Message(r.Name, r.Params)
	}
	code := r.Code
	if code == "" {
		code = CodeCustom
	}
	return Issue{
		Kind:    KindRule,
		Path:    pointer(index),
		Index:   index,
		Code:    code,
		Rule:    r.Name,
		Message: msg,
		Params:  r.Params,
	}
}
