package bench

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/kytnacode/jrpcdec"
)

var (
	ErrInvalidStrategy   = errors.New("invalid strategy")   // Error returned when the strategy or its name is invalid.
	ErrStrategyNotFound  = errors.New("strategy not found") // Error returned when the strategy is not registered.
	ErrDuplicateStrategy = errors.New("duplicate strategy") // Error returned when a name is registered twice.
)

// Strategy decodes one response, it must be safe for concurrent use.
type Strategy func(data []byte) (jrpcdec.Response, error)

// Named is a strategy with the name it was registered under.
type Named struct {
	Name   string
	Decode Strategy
}

// Register defines the method to register a strategy.
type Register interface {
	Register(name string, s Strategy) error
}

// Registry holds strategies by name. Implements the Register interface.
// Is safe for concurrent use.
type Registry struct {
	strategies sync.Map
}

// NewRegistry creates a new Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register registers a strategy under name. Implements the Register interface.
// name must be non-empty and contain no whitespace nor commas, so it can be selected from a list.
func (r *Registry) Register(name string, s Strategy) error {
	if err := validateName(name); err != nil {
		return err
	}

	if s == nil {
		return errors.Wrapf(ErrInvalidStrategy, "strategy %q is nil", name)
	}

	if _, loaded := r.strategies.LoadOrStore(name, s); loaded {
		return errors.Wrapf(ErrDuplicateStrategy, "strategy %q", name)
	}

	return nil
}

// Lookup returns the strategy registered under name.
func (r *Registry) Lookup(name string) (Strategy, error) {
	s, ok := r.strategies.Load(name)
	if !ok {
		return nil, errors.Wrapf(ErrStrategyNotFound, "strategy %q", name)
	}

	strategy, _ := s.(Strategy) // Safe to convert.

	return strategy, nil
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	var names []string

	r.strategies.Range(func(k, _ any) bool {
		name, _ := k.(string) // Safe to convert.
		names = append(names, name)

		return true
	})

	sort.Strings(names)

	return names
}

// Select returns the strategies registered under names, in the same order.
func (r *Registry) Select(names []string) ([]Named, error) {
	selected := make([]Named, 0, len(names))

	for _, name := range names {
		s, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}

		selected = append(selected, Named{Name: name, Decode: s})
	}

	return selected, nil
}

// validateName checks a strategy name.
func validateName(name string) error {
	if name == "" {
		return errors.Wrap(ErrInvalidStrategy, "empty name")
	}

	if strings.ContainsAny(name, ", \t\n\r") {
		return errors.Wrapf(ErrInvalidStrategy, "name %q must not contain whitespace or commas", name)
	}

	return nil
}
