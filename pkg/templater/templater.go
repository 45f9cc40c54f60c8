// Package templater renders SQL sources before they are lexed. Templaters
// register themselves by name; the linter selects one from configuration
// and falls back to the raw source when rendering fails.
package templater

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Templater renders one source file. Process receives the template context
// from configuration and returns the rendered SQL.
type Templater interface {
	Name() string
	Process(src, path string, context map[string]any) (string, error)
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Templater)
)

// Register makes a templater selectable by name. Registering nil or the
// same name twice panics.
func Register(t Templater) {
	if t == nil {
		panic("templater: Register templater is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[t.Name()]; dup {
		panic("templater: Register called twice for templater " + t.Name())
	}
	registry[t.Name()] = t
}

// Select returns the templater with the given name.
func Select(name string) (Templater, error) {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[name]; ok {
		return t, nil
	}
	return nil, errors.Errorf("unknown templater %q, available: %s", name, strings.Join(names(), ", "))
}

// Names returns every registered templater name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
