package dsl

import (
	"context"
	"errors"
	"fmt"

	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// Union accepts a value when at least one member parses it. Members are tried
// in order and the first success wins. The value itself passes through
// unchanged; member transforms do not apply. A member that fails with an
// internal error aborts the whole parse with that error.
func Union(members ...skema.Parser) skema.Schema[any] {
	return UnionOf[any](members...)
}

// UnionOf is Union with a statically known output type, for members that
// share one (for example several string formats).
func UnionOf[T any](members ...skema.Parser) skema.Schema[T] {
	return skema.New[T](Registry(), mustRule("union", members, nil), nil, nil)
}

func unionValidate(ctx context.Context, v, a any) (bool, error) {
	members, _ := a.([]skema.Parser)
	for _, m := range members {
		_, err := m.ParseAny(ctx, v)
		if err == nil {
			return true, nil
		}
		if skema.IsInternal(err) {
			return false, err
		}
	}
	return false, nil
}

func unionProject(s *js.Schema, a any) {
	members, _ := a.([]skema.Parser)
	for _, m := range members {
		doc, err := m.JSONSchema()
		if err != nil {
			continue
		}
		s.AnyOf = append(s.AnyOf, doc)
	}
}

func init() {
	define("union", ruleDef{
		family: FamilyUnion,
		entry:  skema.ValidatorEntry(unionValidate, unionProject),
		rule: func(a any, msg string) (skema.Rule, error) {
			var members []skema.Parser
			switch t := a.(type) {
			case []skema.Parser:
				members = t
			case []any:
				for i, m := range t {
					p, ok := m.(skema.Parser)
					if !ok {
						return skema.Rule{}, fmt.Errorf("union member %d is %T, not a schema", i, m)
					}
					members = append(members, p)
				}
			default:
				return skema.Rule{}, fmt.Errorf("expected union members, got %T", a)
			}
			if len(members) == 0 {
				return skema.Rule{}, errors.New("union needs at least one member")
			}
			names := make([]string, len(members))
			for i, m := range members {
				names[i] = m.Name()
			}
			return skema.Check("union", skema.CodeInvalidUnion, members, params("members", fmt.Sprint(names)), msg), nil
		},
	})
}
