// Package valueobject contains immutable domain values and small
// domain-owned registries.
package valueobject

import (
	"sort"
	"strings"
	"sync"
)

// MaintenanceTypeRegistry is the set of known maintenance type names.
// Types are operator-defined, not a closed enum: new names can be
// registered at runtime, but a config or entry may only reference a name
// the registry knows.
type MaintenanceTypeRegistry struct {
	mu    sync.RWMutex
	types map[string]struct{}
}

// DefaultMaintenanceTypes seeds a fresh registry. These match the types
// the dashboards ship with; operators add more as needed.
var DefaultMaintenanceTypes = []string{"Vidange", "Filtre à air", "Plaquettes", "Pneus", "Courroie"}

// NewMaintenanceTypeRegistry creates a registry seeded with the given type
// names.
func NewMaintenanceTypeRegistry(seed ...string) *MaintenanceTypeRegistry {
	r := &MaintenanceTypeRegistry{types: make(map[string]struct{})}
	for _, name := range seed {
		r.Register(name)
	}
	return r
}

// Register adds a type name to the registry. Blank names are ignored.
// Returns true when the name was not previously known.
func (r *MaintenanceTypeRegistry) Register(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[name]; ok {
		return false
	}
	r.types[name] = struct{}{}
	return true
}

// Known reports whether the registry contains the given type name.
func (r *MaintenanceTypeRegistry) Known(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[strings.TrimSpace(name)]
	return ok
}

// Names returns the registered type names in sorted order.
func (r *MaintenanceTypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
