package world

import (
	"cavecrawler/internal/glyph"
	"cavecrawler/internal/mixin"
)

// DescribeFunc lets an item mixin override how the item is narrated.
type DescribeFunc func(i *Item) string

// Item is an inventory or floor object. It has no position of its own; the
// map stores it in a per-cell stack.
type Item struct {
	glyph.Dynamic[*Item]
}

// NewItem builds an item from a template and attaches mixins in order.
func NewItem(props mixin.Props, mixins []*mixin.Mixin[*Item]) *Item {
	i := &Item{Dynamic: glyph.NewDynamic[*Item](props)}
	i.Compose(i, props, mixins)
	return i
}

// Describe returns the narration name, honoring a mixin override.
func (i *Item) Describe() string {
	if fn, ok := mixin.FieldAs[DescribeFunc](&i.Composite, FieldDescribe); ok {
		return fn(i)
	}
	return i.Name()
}

// DescribeA returns "an apple" style narration.
func (i *Item) DescribeA(capitalize bool) string {
	return glyph.DescribeA(i.Describe(), capitalize)
}

// DescribeThe returns "the apple" style narration.
func (i *Item) DescribeThe(capitalize bool) string {
	return glyph.DescribeThe(i.Describe(), capitalize)
}
