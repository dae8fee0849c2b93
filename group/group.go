// Package group provides a way to group decode strategies and register them all at once.
//
// It simplifies error handling when registering multiple strategies, and allows to use nested groups.
package group

import (
	"sort"

	"github.com/kytnacode/jrpcdec/bench"
)

// DefaultSeparator is the default separator for the subgroups, see [Group.SetSeparator] to use a custom separator.
const DefaultSeparator = "."

// Group is a group of strategies. It allows to add strategies with [Group.Register] or [Group.AddStrategy] and defer
// error handling until all strategies are registered to another register with [Group.RegisterTo]. It also allows to use
// nested groups with [Group.Use], nested groups will have a prefix for the strategies separated by a separator, defaults
// to [DefaultSeparator], can be changed with [Group.SetSeparator].
//
// Implements the [bench.Register] interface, Register never returns an error, errors are returned all together by
// [Group.RegisterTo].
//
// The zero value is ready to use.
//
// Example:
//
//	var g group.Group
//	g.AddStrategy("key", jrpcdec.DecodeEnum)
//	g.AddStrategy("cow", jrpcdec.DecodeStr)
//
//	g.Use("baseline", func(subG *group.Group) {
//	    subG.AddStrategy("jsoniter", bench.DecodeJSONIter) // Registered as "baseline.jsoniter"
//	})
//
//	errs := g.RegisterTo(registry)
//	if len(errs) > 0 {
//	    // Handle errors
//	}
type Group struct {
	strategies map[string]bench.Strategy
	sep        string // Subgroup separator
}

// init initializes the group, check if the group is already initialized is responsibility of the caller, if
// g.strategies is nil, the group is not initialized yet.
func (g *Group) init() {
	g.strategies = make(map[string]bench.Strategy)
	g.sep = DefaultSeparator
}

// SetSeparator sets the separator used for subgroups added with [Group.Use]. Defaults to [DefaultSeparator].
func (g *Group) SetSeparator(sep string) {
	if g.strategies == nil { // if g.strategies is nil, the group is not initialized
		g.init()
	}

	g.sep = sep
}

// Register adds a strategy to the group. Implements the [bench.Register] interface.
//
// error always returns nil, prefer [Group.AddStrategy].
func (g *Group) Register(name string, s bench.Strategy) error {
	g.AddStrategy(name, s)

	return nil
}

// AddStrategy adds a strategy to the group, a strategy added twice under the same name replaces the first one.
// The strategy is not validated until [Group.RegisterTo].
func (g *Group) AddStrategy(name string, s bench.Strategy) {
	if g.strategies == nil { // if g.strategies is nil, the group is not initialized
		g.init()
	}

	g.strategies[name] = s // Defer registering.
}

// Use adds a subgroup of strategies to the group. The strategies of the subgroup will have a prefix separated by the
// separator, if prefix is empty, subgroup strategies are added without prefix nor separator:
//
//	g.Use("baseline", func(subG *group.Group) {
//	    subG.AddStrategy("jsoniter", bench.DecodeJSONIter) // Will be registered as "baseline.jsoniter"
//	})
//
//	g.Use("", func(subG *group.Group) {
//	    subG.AddStrategy("key", jrpcdec.DecodeEnum) // Will be registered as "key"
//	})
func (g *Group) Use(prefix string, useG func(subG *Group)) {
	if g.strategies == nil { // if g.strategies is nil, the group is not initialized
		g.init()
	}

	subG := new(Group)
	subG.SetSeparator(g.sep) // Subgroup separators default to parent's separator

	useG(subG)

	var pre string
	if prefix != "" {
		pre = prefix + subG.sep
	}

	// Add the strategies of the subgroup to the parent group.
	for name, s := range subG.strategies {
		g.strategies[pre+name] = s
	}
}

// Names returns the names of the strategies in the group, in lexical order.
func (g *Group) Names() []string {
	names := make([]string, 0, len(g.strategies))
	for name := range g.strategies {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// RegisterTo registers all strategies of the group to a [bench.Register] in lexical order of their names, and returns
// every error that occurred.
func (g *Group) RegisterTo(r bench.Register) []error {
	var errs []error

	for _, name := range g.Names() {
		if err := r.Register(name, g.strategies[name]); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}
