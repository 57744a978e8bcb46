package mixin

// ComponentType is a small integer key used to store/retrieve per-instance state.
type ComponentType uint8

// Component is implemented by every state struct a mixin initializer seeds.
type Component interface {
	Type() ComponentType
}

// Listener handles one raised event. The host is the receiver.
type Listener[H any] func(host H, args ...any)

// Mixin is a named capability fragment. H is the host type the fragment is
// attached to (entities and items have separate catalogs).
//
// A Mixin is defined once and must not be mutated after it has been attached
// to any host.
type Mixin[H any] struct {
	Name  string
	Group string

	// Fields holds shared data and behaviour values merged onto the host.
	// A key already present on the host is never overwritten.
	Fields map[string]any

	// Init seeds per-instance state from the construction properties.
	Init func(host H, props Props)

	Listeners map[string]Listener[H]
}
