package skema_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

func palindromes() skema.Family {
	return skema.Family{
		Name: "text",
		Entries: map[string]skema.Entry{
			"palindrome": skema.ValidatorEntry(skema.Predicate(func(v, _ any) bool {
				s, ok := v.(string)
				if !ok {
					return false
				}
				r := []rune(s)
				for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
					if r[i] != r[j] {
						return false
					}
				}
				return true
			}), nil),
			"reverse": skema.TransformerEntry(skema.Mapper(func(v, _ any) any {
				s, ok := v.(string)
				if !ok {
					return v
				}
				r := []rune(s)
				for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
					r[i], r[j] = r[j], r[i]
				}
				return string(r)
			})),
		},
	}
}

func TestRegistry_CoreFamily(t *testing.T) {
	r, err := skema.NewRegistry()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if diff := cmp.Diff([]string{"refine", "transform"}, r.Names()); diff != "" {
		t.Fatalf("names mismatch:\n%s", diff)
	}
	if owner, _ := r.Owner("transform"); owner != "core" {
		t.Fatalf("owner = %q", owner)
	}
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	dup := skema.Family{Name: "mine", Entries: map[string]skema.Entry{
		"transform": skema.TransformerEntry(skema.Mapper(func(v, _ any) any { return v })),
	}}
	_, err := skema.NewRegistry(dup)
	if !errors.Is(err, skema.ErrDuplicateRule) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if !strings.Contains(err.Error(), `"core"`) {
		t.Fatalf("error should name the owning family: %v", err)
	}

	if _, err := g.Registry().Extend(skema.Family{Name: "again", Entries: map[string]skema.Entry{
		"min": skema.ValidatorEntry(skema.Predicate(func(any, any) bool { return true }), nil),
	}}); !errors.Is(err, skema.ErrDuplicateRule) {
		t.Fatalf("extending with a taken name must fail, got %v", err)
	}
}

func TestRegistry_EntryWithoutFunction(t *testing.T) {
	bad := skema.Family{Name: "bad", Entries: map[string]skema.Entry{"noop": {Kind: skema.Validator}}}
	if _, err := skema.NewRegistry(bad); err == nil {
		t.Fatalf("expected error for entry without function")
	}
}

func TestRegistry_ExtendAndBind(t *testing.T) {
	ctx := context.Background()
	ext, err := g.Registry().Extend(palindromes())
	if err != nil {
		t.Fatalf("extend: %v", err)
	}
	if _, ok := g.Registry().Lookup("palindrome"); ok {
		t.Fatalf("Extend must leave the receiver untouched")
	}
	if fams := ext.Families(); fams[len(fams)-1] != "text" {
		t.Fatalf("families = %v", fams)
	}

	s := g.String().Min(3).WithRegistry(ext).Schema.
		Append(skema.Check("palindrome", skema.CodeInvalidValue, nil, nil, "must read the same both ways")).
		Append(skema.Apply("reverse", nil))

	got, err := s.Parse(ctx, "level")
	if err != nil || got != "level" {
		t.Fatalf("got %q %v", got, err)
	}
	it := firstIssue(t, func() error { _, err := s.Parse(ctx, "abc"); return err }())
	if it.Rule != "palindrome" || it.Message != "must read the same both ways" {
		t.Fatalf("unexpected issue %+v", it)
	}

	// the same pipeline against the default registry is misconfigured
	unbound := s.WithRegistry(g.Registry())
	if _, err := unbound.Parse(ctx, "level"); !errors.Is(err, skema.ErrUnknownRule) {
		t.Fatalf("expected unknown rule, got %v", err)
	}
}

func TestRegistry_ValidatorErrorIsInternal(t *testing.T) {
	boom := errors.New("boom")
	reg, err := skema.NewRegistry(skema.Family{Name: "x", Entries: map[string]skema.Entry{
		"any":   skema.ValidatorEntry(skema.Predicate(func(any, any) bool { return true }), nil),
		"fails": skema.ValidatorEntry(func(context.Context, any, any) (bool, error) { return false, boom }, nil),
	}})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	s := skema.New[any](reg, skema.Check("any", "", nil, nil), nil, nil).Append(skema.Check("fails", "", nil, nil))
	_, err = s.Parse(context.Background(), 1)
	var ie *skema.InternalError
	if !errors.As(err, &ie) || ie.Rule != "fails" || !errors.Is(err, boom) {
		t.Fatalf("expected internal error at rule fails, got %v", err)
	}
}
