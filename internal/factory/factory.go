// Package factory turns the template file into entities and items: it owns
// the mixin catalog and one repository per host type.
package factory

import (
	"fmt"

	"cavecrawler/assets"
	"cavecrawler/internal/system"
	"cavecrawler/internal/world"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultSightRadius applies to Sight mixins whose template sets no radius.
const DefaultSightRadius = 5

type templateFile struct {
	Entities []Definition `yaml:"entities"`
	Items    []Definition `yaml:"items"`
}

// Factory builds game objects from templates.
type Factory struct {
	Entities *Repository[*world.Entity]
	Items    *Repository[*world.Item]

	rules       *system.Rules
	log         *zap.Logger
	sightRadius int
}

// Option tweaks a Factory before templates are loaded.
type Option func(*Factory)

// WithSightRadius changes the default Sight radius.
func WithSightRadius(r int) Option {
	return func(f *Factory) {
		if r > 0 {
			f.sightRadius = r
		}
	}
}

// New loads the embedded templates. rules drive every behaviour a mixin
// performs.
func New(rules *system.Rules, log *zap.Logger, opts ...Option) (*Factory, error) {
	return NewFromYAML(assets.Templates, rules, log, opts...)
}

// NewFromYAML is New with a caller-supplied templates document.
func NewFromYAML(doc []byte, rules *system.Rules, log *zap.Logger, opts ...Option) (*Factory, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Factory{rules: rules, log: log, sightRadius: DefaultSightRadius}
	for _, opt := range opts {
		opt(f)
	}
	f.Entities = NewRepository("entities", f.entityCatalog(), world.NewEntity)
	f.Items = NewRepository("items", itemCatalog(), world.NewItem)

	var file templateFile
	if err := yaml.Unmarshal(doc, &file); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for _, def := range file.Entities {
		if err := f.Entities.Define(def); err != nil {
			return nil, err
		}
	}
	for _, def := range file.Items {
		if err := f.Items.Define(def); err != nil {
			return nil, err
		}
	}
	log.Debug("templates loaded",
		zap.Int("entities", len(file.Entities)),
		zap.Int("items", len(file.Items)))
	return f, nil
}

// Rules returns the rules the factory's behaviours act through.
func (f *Factory) Rules() *system.Rules { return f.rules }
