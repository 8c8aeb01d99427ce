package module

import (
	"fmt"
	"sort"
	"sync"

	ovapplyerrors "github.com/oneview-community/ovapply/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a module factory for the provided module name.
func Register(name string, factory Factory) error {
	if factory == nil {
		return ovapplyerrors.NewModuleError(name, fmt.Errorf("factory is nil"))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return ovapplyerrors.NewModuleError(name, fmt.Errorf("module already registered"))
	}

	registry[name] = factory
	return nil
}

// Get retrieves a module factory by name.
func Get(name string) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := registry[name]
	if !ok {
		return nil, ovapplyerrors.NewModuleError(name, fmt.Errorf("no module registered"))
	}

	return factory, nil
}

// Names returns the registered module names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears module registrations (for tests).
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Factory)
}
