package generator

import "time"

// Namespace binds a namespace name to its registry so callers that
// always mint under one name don't have to carry both around. It holds
// no state of its own and only forwards to the registry.
type Namespace struct {
	name string
	reg  *Registry
}

// Namespace returns a handle bound to name. The handle is valid before
// Init is called; drawing seeds through it is not.
func (r *Registry) Namespace(name string) *Namespace {
	return &Namespace{name: name, reg: r}
}

// Name returns the bound namespace name.
func (n *Namespace) Name() string { return n.name }

// Init allocates this namespace's counter in the registry.
func (n *Namespace) Init() { n.reg.Init(n.name) }

// Make mints an ID at the current wall-clock time.
func (n *Namespace) Make(blockID int) (uint64, error) {
	return n.reg.Make(n.name, blockID)
}

// MakeAt mints an ID at an explicit unix time.
func (n *Namespace) MakeAt(blockID int, unixtime int64) (uint64, error) {
	return n.reg.MakeAt(n.name, blockID, unixtime)
}

// Encode draws the next seed for this namespace and packs it with t
// and blockID. Unlike Make it performs no validation.
func (n *Namespace) Encode(t time.Time, blockID int) uint64 {
	return Encode(t, blockID, n.reg.NextSeed(n.name))
}
