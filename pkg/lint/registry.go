package lint

import (
	"slices"
	"sync"
)

// Registry holds the registered lint rules in registration order. Warning
// ordering ties are broken by which rule registered first, so order is
// preserved alongside the id lookup maps.
type Registry struct {
	mu     sync.RWMutex
	order  []Rule
	byID   map[string]Rule
	byName map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule to the registry. Registering an id twice replaces
// the earlier rule but keeps its position in the run order.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rule.ID()]; exists {
		for i, existing := range r.order {
			if existing.ID() == rule.ID() {
				r.order[i] = rule
				break
			}
		}
	} else {
		r.order = append(r.order, rule)
	}

	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by id or name. It tries the id first.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// Rules returns all registered rules in registration order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// IDs returns all registered rule ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
