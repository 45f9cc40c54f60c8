package rules

import (
	"sort"
	"sync"
)

var (
	ruleMu   sync.RWMutex
	registry = make(map[string]Rule)
)

// Register makes a rule available by code. It is meant to be called from
// init functions of rule packages. Registering nil or the same code twice
// panics.
func Register(r Rule) {
	if r == nil {
		panic("rules: Register rule is nil")
	}
	ruleMu.Lock()
	defer ruleMu.Unlock()
	if _, dup := registry[r.Code()]; dup {
		panic("rules: Register called twice for rule " + r.Code())
	}
	registry[r.Code()] = r
}

// Get returns the rule with the given code.
func Get(code string) (Rule, bool) {
	ruleMu.RLock()
	defer ruleMu.RUnlock()
	r, ok := registry[code]
	return r, ok
}

// All returns every registered rule, sorted by code.
func All() []Rule {
	ruleMu.RLock()
	defer ruleMu.RUnlock()
	out := make([]Rule, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}

// Codes returns every registered rule code, sorted.
func Codes() []string {
	all := All()
	out := make([]string, len(all))
	for i, r := range all {
		out[i] = r.Code()
	}
	return out
}
