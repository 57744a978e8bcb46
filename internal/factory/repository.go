package factory

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"cavecrawler/internal/mixin"
)

var (
	// ErrUnknownTemplate is returned when a template key was never defined.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrUnknownMixin is returned when a template names a mixin the catalog lacks.
	ErrUnknownMixin = errors.New("unknown mixin")
)

// Definition is one template as written in the templates file.
type Definition struct {
	Key                   string         `yaml:"key"`
	DisableRandomCreation bool           `yaml:"disable_random_creation"`
	Mixins                []string       `yaml:"mixins"`
	Props                 map[string]any `yaml:"props"`
}

type template[H any] struct {
	props  mixin.Props
	mixins []*mixin.Mixin[H]
}

// Repository is a named store of templates for one host type. It is filled
// once at setup and only read afterwards.
type Repository[H any] struct {
	name      string
	catalog   map[string]*mixin.Mixin[H]
	construct func(mixin.Props, []*mixin.Mixin[H]) H
	templates map[string]template[H]
	random    []string
}

// NewRepository creates an empty repository whose templates may use any
// mixin of catalog.
func NewRepository[H any](name string, catalog map[string]*mixin.Mixin[H], construct func(mixin.Props, []*mixin.Mixin[H]) H) *Repository[H] {
	return &Repository[H]{
		name:      name,
		catalog:   catalog,
		construct: construct,
		templates: make(map[string]template[H]),
	}
}

// Define registers a template, resolving its mixin names against the catalog.
func (r *Repository[H]) Define(def Definition) error {
	t := template[H]{props: mixin.Props(def.Props).Merge(nil)}
	for _, name := range def.Mixins {
		m, ok := r.catalog[name]
		if !ok {
			return fmt.Errorf("%s template %q: %w %q", r.name, def.Key, ErrUnknownMixin, name)
		}
		t.mixins = append(t.mixins, m)
	}
	if _, ok := t.props["name"]; !ok {
		t.props["name"] = def.Key
	}
	if _, dup := r.templates[def.Key]; !dup && !def.DisableRandomCreation {
		r.random = append(r.random, def.Key)
		sort.Strings(r.random)
	}
	r.templates[def.Key] = t
	return nil
}

// Has reports whether key is defined.
func (r *Repository[H]) Has(key string) bool {
	_, ok := r.templates[key]
	return ok
}

// Names returns every defined key in sorted order.
func (r *Repository[H]) Names() []string {
	names := make([]string, 0, len(r.templates))
	for k := range r.templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// RandomNames returns the keys CreateRandom picks from, sorted.
func (r *Repository[H]) RandomNames() []string {
	return append([]string(nil), r.random...)
}

// Create builds a fresh instance of the key's template with extra
// properties laid over a copy of the template's own.
func (r *Repository[H]) Create(key string, extra mixin.Props) (H, error) {
	t, ok := r.templates[key]
	if !ok {
		var zero H
		return zero, fmt.Errorf("%s %q: %w", r.name, key, ErrUnknownTemplate)
	}
	return r.construct(t.props.Merge(extra), t.mixins), nil
}

// MustCreate is Create for keys that are part of the game's own content.
// It panics on an undefined key.
func (r *Repository[H]) MustCreate(key string, extra mixin.Props) H {
	h, err := r.Create(key, extra)
	if err != nil {
		panic(err)
	}
	return h
}

// CreateRandom builds a uniformly chosen template among those not flagged
// to disable random creation.
func (r *Repository[H]) CreateRandom(rng *rand.Rand) (H, error) {
	if len(r.random) == 0 {
		var zero H
		return zero, fmt.Errorf("%s: no randomly creatable templates: %w", r.name, ErrUnknownTemplate)
	}
	return r.Create(r.random[rng.Intn(len(r.random))], nil)
}
