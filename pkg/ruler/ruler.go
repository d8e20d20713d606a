// Package ruler implements an ordered, named, cacheable registry of
// rule functions. It is the scheduling backbone of the processing
// pipeline: every pass is registered here, can be toggled on and off
// by name, inserted relative to existing passes, and assigned to
// additional named chains beyond the default execution order.
package ruler

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultChain is the name of the unconditional chain every enabled
// rule belongs to.
const DefaultChain = ""

// ErrRuleNotFound is returned by name-based lookups when the
// referenced rule is not registered.
var ErrRuleNotFound = errors.New("rule not found")

// rule is one named entry in the registry.
type rule[T any] struct {
	name    string
	enabled bool
	fn      T
	alt     []string // additional chains beyond the default one
}

// Ruler keeps rules of payload type T in registration order and
// compiles, on demand, the list of enabled functions per chain.
//
// T is the rule signature of the owning pipeline stage; each stage
// instantiates its own Ruler so payloads stay compile-time checked.
//
// All operations are safe for concurrent use. In the usual
// single-threaded pipeline the mutex is uncontended.
type Ruler[T any] struct {
	mu    sync.Mutex
	rules []rule[T]

	// cache maps chain name to the ordered enabled functions for
	// that chain. Nil when stale; rebuilt lazily by GetRules.
	cache map[string][]T
}

// New creates an empty Ruler.
func New[T any]() *Ruler[T] {
	return &Ruler[T]{}
}

// find returns the index of the first rule with the given name, or -1.
func (r *Ruler[T]) find(name string) int {
	for i := range r.rules {
		if r.rules[i].name == name {
			return i
		}
	}
	return -1
}

// compile rebuilds the chain cache from the current rule sequence.
func (r *Ruler[T]) compile() {
	chains := map[string]struct{}{DefaultChain: {}}
	for i := range r.rules {
		if !r.rules[i].enabled {
			continue
		}
		for _, name := range r.rules[i].alt {
			chains[name] = struct{}{}
		}
	}

	r.cache = make(map[string][]T, len(chains))
	for chain := range chains {
		list := []T{}
		for i := range r.rules {
			if !r.rules[i].enabled {
				continue
			}
			if chain != DefaultChain && !contains(r.rules[i].alt, chain) {
				continue
			}
			list = append(list, r.rules[i].fn)
		}
		r.cache[chain] = list
	}
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

// Push appends a new enabled rule to the end of the chain.
//
// Names are not checked for uniqueness: a duplicate name is legal and
// all later name-based lookups address the first registration.
func (r *Ruler[T]) Push(name string, fn T, alt ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule[T]{name: name, enabled: true, fn: fn, alt: alt})
	r.cache = nil
}

// Before inserts a new enabled rule immediately before the rule named
// anchor. Returns ErrRuleNotFound when anchor is not registered.
func (r *Ruler[T]) Before(anchor, name string, fn T, alt ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.find(anchor)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, anchor)
	}
	r.rules = append(r.rules, rule[T]{})
	copy(r.rules[idx+1:], r.rules[idx:])
	r.rules[idx] = rule[T]{name: name, enabled: true, fn: fn, alt: alt}
	r.cache = nil
	return nil
}

// After inserts a new enabled rule immediately after the rule named
// anchor. Returns ErrRuleNotFound when anchor is not registered.
func (r *Ruler[T]) After(anchor, name string, fn T, alt ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.find(anchor)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, anchor)
	}
	r.rules = append(r.rules, rule[T]{})
	copy(r.rules[idx+2:], r.rules[idx+1:])
	r.rules[idx+1] = rule[T]{name: name, enabled: true, fn: fn, alt: alt}
	r.cache = nil
	return nil
}

// At replaces the function and chain membership of the existing rule
// with the given name, preserving its position and enabled state.
// Returns ErrRuleNotFound when the name is not registered.
func (r *Ruler[T]) At(name string, fn T, alt ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.find(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, name)
	}
	r.rules[idx].fn = fn
	r.rules[idx].alt = alt
	r.cache = nil
	return nil
}

// Enable turns on the rules with the given names and returns the
// names actually found. Without ignoreMissing, the first missing name
// aborts with ErrRuleNotFound; with it, missing names are skipped.
func (r *Ruler[T]) Enable(names []string, ignoreMissing bool) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setEnabled(names, ignoreMissing, true)
}

// Disable turns off the rules with the given names. Missing-name
// semantics match Enable.
func (r *Ruler[T]) Disable(names []string, ignoreMissing bool) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setEnabled(names, ignoreMissing, false)
}

// EnableOnly disables every rule, then enables exactly the given
// names. Missing-name semantics match Enable.
func (r *Ruler[T]) EnableOnly(names []string, ignoreMissing bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rules {
		r.rules[i].enabled = false
	}
	r.cache = nil
	_, err := r.setEnabled(names, ignoreMissing, true)
	return err
}

// setEnabled flips the enabled flag for each named rule.
// Callers must hold r.mu.
func (r *Ruler[T]) setEnabled(names []string, ignoreMissing, enabled bool) ([]string, error) {
	found := []string{}
	for _, name := range names {
		idx := r.find(name)
		if idx < 0 {
			if ignoreMissing {
				continue
			}
			return found, fmt.Errorf("%w: %s", ErrRuleNotFound, name)
		}
		r.rules[idx].enabled = enabled
		found = append(found, name)
	}
	r.cache = nil
	return found, nil
}

// GetRules returns the ordered enabled rule functions for the given
// chain, recompiling the cache if it is stale. The default chain is
// DefaultChain (the empty string). The result is never nil: a chain
// with no members yields an empty slice.
//
// Callers must treat the returned slice as read-only.
func (r *Ruler[T]) GetRules(chain string) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil {
		r.compile()
	}
	if list, ok := r.cache[chain]; ok {
		return list
	}
	return []T{}
}

// Names returns all registered rule names in registration order.
func (r *Ruler[T]) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.rules))
	for i := range r.rules {
		names = append(names, r.rules[i].name)
	}
	return names
}

// RuleInfo describes one registered rule for introspection.
type RuleInfo struct {
	Name    string
	Enabled bool
	Chains  []string
}

// Rules returns a snapshot of all registered rules in registration
// order.
func (r *Ruler[T]) Rules() []RuleInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := make([]RuleInfo, 0, len(r.rules))
	for i := range r.rules {
		chains := make([]string, len(r.rules[i].alt))
		copy(chains, r.rules[i].alt)
		infos = append(infos, RuleInfo{
			Name:    r.rules[i].name,
			Enabled: r.rules[i].enabled,
			Chains:  chains,
		})
	}
	return infos
}

// ActiveNames returns the names of currently enabled rules in
// registration order.
func (r *Ruler[T]) ActiveNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := []string{}
	for i := range r.rules {
		if r.rules[i].enabled {
			names = append(names, r.rules[i].name)
		}
	}
	return names
}
