package theme

import (
	"fmt"
	"slices"
	"sync"

	appErrors "syntinct/internal/errors"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "syntark"

var registry = &manager{
	themes: make(map[string]Theme),
}

type manager struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

// RegisterTheme adds a theme to the registry. Themes register from init, so
// the set is fixed before any command runs.
func RegisterTheme(name string, t Theme) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, dup := registry.themes[name]; dup {
		panic(fmt.Sprintf("theme %q registered twice", name))
	}
	registry.themes[name] = t
}

// Lookup returns the registered theme with the given name.
func Lookup(name string) (Theme, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	if t, ok := registry.themes[name]; ok {
		return t, nil
	}
	return nil, appErrors.New(appErrors.CodeUnknownTheme,
		fmt.Sprintf("unknown theme %q (available: %v)", name, availableLocked()), nil)
}

// Available returns a list of all registered theme names in sorted order.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return availableLocked()
}

func availableLocked() []string {
	names := make([]string, 0, len(registry.themes))
	for name := range registry.themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Next returns the theme name after name in sorted order, wrapping around.
// An unknown name yields the first theme.
func Next(name string) string {
	return step(name, 1)
}

// Previous returns the theme name before name in sorted order, wrapping around.
// An unknown name yields the first theme.
func Previous(name string) string {
	return step(name, -1)
}

func step(name string, delta int) string {
	names := Available()
	if len(names) == 0 {
		return ""
	}
	idx := slices.Index(names, name)
	if idx < 0 {
		return names[0]
	}
	return names[(idx+delta+len(names))%len(names)]
}
