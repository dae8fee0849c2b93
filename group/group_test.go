package group_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/kytnacode/jrpcdec"
	"github.com/kytnacode/jrpcdec/bench"
	"github.com/kytnacode/jrpcdec/group"
)

type mockRegister struct {
	strategies map[string]bench.Strategy
	invalid    map[string]error
}

func (r *mockRegister) Register(name string, s bench.Strategy) error {
	if err, ok := r.invalid[name]; ok {
		return err
	}

	r.strategies[name] = s

	return nil
}

func (r *mockRegister) setErr(name string, err error) {
	if r.invalid == nil {
		r.invalid = make(map[string]error)
	}

	r.invalid[name] = err
}

func newMockRegister() *mockRegister {
	return &mockRegister{strategies: make(map[string]bench.Strategy)}
}

func TestGroup_RegisterShouldNotReturnAnErrorNever(t *testing.T) {
	t.Parallel()

	type data struct {
		name     string
		strategy bench.Strategy
	}

	testData := map[string]data{
		// Invalid strategies, Group.Register should not return an error even if the strategy is invalid.
		"nil strategy": {name: "nil", strategy: nil},
		"empty name":   {name: "", strategy: jrpcdec.DecodeEnum},
		"comma":        {name: "a,b", strategy: jrpcdec.DecodeEnum},

		// Valid strategies
		"valid": {name: "key", strategy: jrpcdec.DecodeEnum},
	}

	for name, data := range testData {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var g group.Group

			if err := g.Register(data.name, data.strategy); err != nil {
				t.Errorf("Group.Register() should never return an error, got: %v", err)
			}
		})
	}
}

func TestGroup_UseShouldSetDefaultSeparator(t *testing.T) {
	t.Parallel()

	const (
		sep          = "_"
		prefix       = "baseline"
		strategy     = "jsoniter"
		expectedName = prefix + sep + strategy
	)

	var g group.Group

	g.SetSeparator(sep)

	g.Use(prefix, func(g *group.Group) {
		g.AddStrategy(strategy, bench.DecodeJSONIter)
	})

	r := newMockRegister()

	g.RegisterTo(r)

	if _, ok := r.strategies[expectedName]; !ok {
		t.Errorf("Group.Use() should set the default separator, expected strategy %q, got: %v", expectedName, r.strategies)
	}
}

func TestGroup_UseSubgroupsSeparatorShouldOverwriteParents(t *testing.T) {
	t.Parallel()

	const (
		sep          = "_"
		subSep       = "-"
		prefix       = "baseline"
		strategy     = "jsoniter"
		expectedName = prefix + subSep + strategy
	)

	var g group.Group

	g.SetSeparator(sep)

	g.Use(prefix, func(g *group.Group) {
		g.SetSeparator(subSep)
		g.AddStrategy(strategy, bench.DecodeJSONIter)
	})

	r := newMockRegister()

	g.RegisterTo(r)

	if _, ok := r.strategies[expectedName]; !ok {
		t.Errorf("Group.Use() should overwrite the separator, expected strategy %q, got: %v", expectedName, r.strategies)
	}
}

func TestGroup_UseSubgroupShouldRegisterTheirSubgroups(t *testing.T) {
	t.Parallel()

	const expectedName = "cursor.enum.key"

	var g group.Group

	g.Use("cursor", func(g *group.Group) {
		g.Use("enum", func(g *group.Group) {
			g.AddStrategy("key", jrpcdec.DecodeEnum)
		})
	})

	r := newMockRegister()

	if errs := g.RegisterTo(r); len(errs) > 0 {
		t.Errorf("Group.Use() should not return errors, got: %v", errs)
	}

	if _, ok := r.strategies[expectedName]; !ok {
		t.Errorf("Group.Use() should register subgroups, expected strategy %q, got: %v", expectedName, r.strategies)
	}
}

func TestGroup_UseShouldIgnoreSeparatorWhenCalledWithAnEmptyPrefix(t *testing.T) {
	t.Parallel()

	const expectedName = "cow"

	var g group.Group

	g.Use("", func(g *group.Group) {
		g.AddStrategy(expectedName, jrpcdec.DecodeStr)
	})

	r := newMockRegister()

	g.RegisterTo(r)

	if _, ok := r.strategies[expectedName]; !ok {
		t.Errorf("Group.Use() should ignore the separator, expected strategy %q, got: %v", expectedName, r.strategies)
	}
}

func TestGroup_RegisterToShouldReturnErrors(t *testing.T) {
	t.Parallel()

	const expectedErrors = 1

	var g group.Group

	g.AddStrategy("key", jrpcdec.DecodeEnum)
	g.AddStrategy("cow", jrpcdec.DecodeStr)

	r := newMockRegister()
	r.setErr("cow", errors.New("invalid strategy"))

	errs := g.RegisterTo(r)

	if len(errs) != expectedErrors {
		t.Errorf("Group.RegisterTo() should return %v error(s), got: %v: %v", expectedErrors, len(errs), errs)
	}
}

func TestGroup_RegisterToRegistryShouldValidate(t *testing.T) {
	t.Parallel()

	var g group.Group

	g.AddStrategy("key", jrpcdec.DecodeEnum)
	g.AddStrategy("", jrpcdec.DecodeStr)
	g.AddStrategy("nil", nil)

	r := bench.NewRegistry()

	errs := g.RegisterTo(r)
	if len(errs) != 2 {
		t.Fatalf("Group.RegisterTo() should return 2 errors, got: %v", errs)
	}

	for _, err := range errs {
		if !errors.Is(err, bench.ErrInvalidStrategy) {
			t.Errorf("expected %v, got %v", bench.ErrInvalidStrategy, err)
		}
	}

	if names := r.Names(); !slices.Equal(names, []string{"key"}) {
		t.Errorf("expected only key to be registered, got %v", names)
	}
}

func TestGroup_Names(t *testing.T) {
	t.Parallel()

	var g group.Group

	if names := g.Names(); len(names) != 0 {
		t.Errorf("expected no names on a zero group, got %v", names)
	}

	g.AddStrategy("key", jrpcdec.DecodeEnum)
	g.AddStrategy("cow", jrpcdec.DecodeStr)
	g.Use("baseline", func(g *group.Group) {
		g.AddStrategy("jsoniter", bench.DecodeJSONIter)
	})

	expected := []string{"baseline.jsoniter", "cow", "key"}
	if names := g.Names(); !slices.Equal(names, expected) {
		t.Errorf("expected %v, got %v", expected, names)
	}
}
