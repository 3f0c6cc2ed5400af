package theme

import (
	"fmt"
	"sort"
	"sync"
)

var (
	themes = make(map[string]*Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from an init() function for built-in themes.
// Panics if the theme is invalid or its name is already taken.
func Register(t *Theme) {
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("theme: %v", err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.Name]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.Name))
	}
	themes[t.Name] = t
}

// Install adds or replaces a theme, validating it first.
// Used for user-defined themes loaded from configuration, which are
// allowed to shadow built-ins.
func Install(t *Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	themes[t.Name] = t
	return nil
}

// Lookup returns the theme with the given name.
// Returns an error if no such theme is registered.
func Lookup(name string) (*Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme: unknown theme %q", name)
	}
	return t, nil
}

// Names returns the names of all registered themes, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
