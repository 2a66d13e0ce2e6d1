package generator

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Registry holds one monotonic counter per namespace. It is the only
// shared state in the generator: construct one in main and hand it to
// whatever needs to mint IDs.
type Registry struct {
	mu    sync.RWMutex
	cells map[string]*atomic.Uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cells: make(map[string]*atomic.Uint64)}
}

// Init allocates a zero-valued counter cell for namespace, replacing
// any existing cell. Call it once per namespace at startup; a second
// call resets the counter, which is not guarded against.
func (r *Registry) Init(namespace string) {
	r.mu.Lock()
	r.cells[namespace] = new(atomic.Uint64)
	r.mu.Unlock()
}

// Has reports whether a counter exists for namespace.
func (r *Registry) Has(namespace string) bool {
	r.mu.RLock()
	_, ok := r.cells[namespace]
	r.mu.RUnlock()
	return ok
}

// NextSeed atomically increments the namespace's counter and returns
// the new value reduced modulo SeedMod. Concurrent callers never
// observe the same raw counter value. Calling NextSeed for a namespace
// that was never Init-ed is a programming error and panics.
func (r *Registry) NextSeed(namespace string) uint64 {
	r.mu.RLock()
	cell, ok := r.cells[namespace]
	r.mu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("generator: namespace %q is not initialized", namespace))
	}
	return cell.Add(1) % SeedMod
}
