package mixin

import "sort"

// Composite records which mixins a host carries, the fields they merged, the
// per-instance components their initializers seeded, and the event listeners
// they declared. The zero value is ready to use.
type Composite[H any] struct {
	mixins     map[string]bool
	groups     map[string]bool
	fields     map[string]any
	components map[ComponentType]Component
	listeners  map[string][]Listener[H]
}

func (c *Composite[H]) lazyInit() {
	if c.mixins != nil {
		return
	}
	c.mixins = make(map[string]bool)
	c.groups = make(map[string]bool)
	c.fields = make(map[string]any)
	c.components = make(map[ComponentType]Component)
	c.listeners = make(map[string][]Listener[H])
}

// Attach merges m onto host. Fields already owned by the host win, listeners
// are appended after earlier ones for the same event, and Init runs last.
func (c *Composite[H]) Attach(host H, m *Mixin[H], props Props) {
	c.lazyInit()
	for key, v := range m.Fields {
		if _, owned := c.fields[key]; owned {
			continue
		}
		c.fields[key] = v
	}
	c.mixins[m.Name] = true
	if m.Group != "" {
		c.groups[m.Group] = true
	}
	// Sorted so that a mixin declaring several events registers them in a
	// stable order; per-event order is what RaiseEvent depends on.
	events := make([]string, 0, len(m.Listeners))
	for ev := range m.Listeners {
		events = append(events, ev)
	}
	sort.Strings(events)
	for _, ev := range events {
		c.listeners[ev] = append(c.listeners[ev], m.Listeners[ev])
	}
	if m.Init != nil {
		m.Init(host, props)
	}
}

// Compose attaches every mixin in list order.
func (c *Composite[H]) Compose(host H, props Props, mixins []*Mixin[H]) {
	c.lazyInit()
	for _, m := range mixins {
		c.Attach(host, m, props)
	}
}

// Has reports whether the given mixin descriptor (matched by name) is attached.
func (c *Composite[H]) Has(m *Mixin[H]) bool {
	if m == nil {
		return false
	}
	return c.mixins[m.Name]
}

// HasMixin reports whether a mixin with this name, or any mixin declaring this
// group name, is attached.
func (c *Composite[H]) HasMixin(nameOrGroup string) bool {
	return c.mixins[nameOrGroup] || c.groups[nameOrGroup]
}

// Mixins returns the attached mixin names in sorted order.
func (c *Composite[H]) Mixins() []string {
	names := make([]string, 0, len(c.mixins))
	for name := range c.mixins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field returns the merged field value for key.
func (c *Composite[H]) Field(key string) (any, bool) {
	v, ok := c.fields[key]
	return v, ok
}

// RaiseEvent invokes every listener registered for event, in attach order.
func (c *Composite[H]) RaiseEvent(host H, event string, args ...any) {
	for _, fn := range c.listeners[event] {
		fn(host, args...)
	}
}

// ListenerCount returns how many listeners are registered for event.
func (c *Composite[H]) ListenerCount(event string) int {
	return len(c.listeners[event])
}

// Add stores a per-instance component, replacing any previous one of the same type.
func (c *Composite[H]) Add(comp Component) {
	c.lazyInit()
	c.components[comp.Type()] = comp
}

// Get returns the component of the given type, or nil.
func (c *Composite[H]) Get(t ComponentType) Component {
	return c.components[t]
}

// Remove detaches a component.
func (c *Composite[H]) Remove(t ComponentType) {
	delete(c.components, t)
}

// HasComponent reports whether a component of the given type is stored.
func (c *Composite[H]) HasComponent(t ComponentType) bool {
	return c.Get(t) != nil
}

// FieldAs returns the merged field for key converted to T.
func FieldAs[T any, H any](c *Composite[H], key string) (T, bool) {
	v, ok := c.Field(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
