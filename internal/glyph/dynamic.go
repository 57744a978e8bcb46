package glyph

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"cavecrawler/internal/mixin"
)

// Dynamic is a glyph that carries a display name and a mixin composite.
// H is the concrete owner type (entity or item) passed to mixin behaviours.
type Dynamic[H any] struct {
	Glyph
	mixin.Composite[H]
	name string
}

// NewDynamic builds the glyph and name parts from a template. Mixins are
// composed by the owner once it exists, since they receive it as host.
func NewDynamic[H any](props mixin.Props) Dynamic[H] {
	return Dynamic[H]{Glyph: FromProps(props), name: props.String("name", "")}
}

// Name returns the display name.
func (d *Dynamic[H]) Name() string { return d.name }

// SetName replaces the display name.
func (d *Dynamic[H]) SetName(name string) { d.name = name }

// DescribeA prefixes desc with an indefinite article chosen from its first
// letter. Not perfect ("an unicorn") but matches the classic rule.
func DescribeA(desc string, capitalize bool) string {
	prefixes := [2]string{"a", "an"}
	if capitalize {
		prefixes = [2]string{"A", "An"}
	}
	r, _ := utf8.DecodeRuneInString(desc)
	idx := 0
	if strings.ContainsRune("aeiou", unicode.ToLower(r)) {
		idx = 1
	}
	return prefixes[idx] + " " + desc
}

// DescribeThe prefixes desc with a definite article.
func DescribeThe(desc string, capitalize bool) string {
	if capitalize {
		return "The " + desc
	}
	return "the " + desc
}
