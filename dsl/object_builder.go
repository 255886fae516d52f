package dsl

import (
	"context"
	"fmt"

	stacskema "github.com/reoring/stacskema"
)

type fieldDef struct {
	name     string
	ad       AnyAdapter
	wire     []string // accepted input keys; wire[0] is the output name
	required bool
}

type objectBuilder struct {
	fields        []*fieldDef
	byName        map[string]*fieldDef
	unknownPolicy stacskema.UnknownPolicy
	refines       []objRefine
	title         string
}

type fieldStep struct {
	b *objectBuilder
	f *fieldDef
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *objectBuilder {
	return &objectBuilder{
		byName:        map[string]*fieldDef{},
		unknownPolicy: stacskema.UnknownStrict,
	}
}

// Field registers a field with its adapter. Fields are validated in
// declaration order.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	f := &fieldDef{name: name, ad: ad, wire: []string{name}}
	if prev, ok := b.byName[name]; ok {
		*prev = *f
		return &fieldStep{b: b, f: prev}
	}
	b.fields = append(b.fields, f)
	b.byName[name] = f
	return &fieldStep{b: b, f: f}
}

// Required marks the field as required.
func (f *fieldStep) Required() *fieldStep {
	f.f.required = true
	return f
}

// Alias accepts the field under an external key as well. The alias becomes
// the output name; the plain name stays accepted.
func (f *fieldStep) Alias(wire string) *fieldStep {
	f.f.wire = append([]string{wire}, f.f.wire...)
	return f
}

// AliasOnly accepts the field only under the external key.
func (f *fieldStep) AliasOnly(wire string) *fieldStep {
	f.f.wire = []string{wire}
	return f
}

func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep { return f.b.Field(name, ad) }
func (f *fieldStep) Require(names ...string) *objectBuilder       { return f.b.Require(names...) }
func (f *fieldStep) UnknownStrict() *objectBuilder               { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *objectBuilder                { return f.b.UnknownStrip() }
func (f *fieldStep) Title(t string) *objectBuilder               { return f.b.Title(t) }
func (f *fieldStep) Refine(name string, fn func(context.Context, map[string]any) error) *objectBuilder {
	return f.b.Refine(name, fn)
}
func (f *fieldStep) Build() (stacskema.Schema[map[string]any], error) { return f.b.Build() }
func (f *fieldStep) MustBuild() stacskema.Schema[map[string]any]      { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		if f, ok := b.byName[n]; ok {
			f.required = true
		}
	}
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknownPolicy = stacskema.UnknownStrict
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.unknownPolicy = stacskema.UnknownStrip
	return b
}

// Title names the object in its JSON Schema projection.
func (b *objectBuilder) Title(t string) *objectBuilder {
	b.title = t
	return b
}

// Refine registers a cross-field check run after all fields parsed cleanly.
func (b *objectBuilder) Refine(name string, fn func(context.Context, map[string]any) error) *objectBuilder {
	b.refines = append(b.refines, objRefine{name: name, fn: fn})
	return b
}

// Build validates the declaration and returns the schema.
func (b *objectBuilder) Build() (stacskema.Schema[map[string]any], error) {
	rename := make(map[string]*fieldDef)
	for _, f := range b.fields {
		for _, w := range f.wire {
			if other, dup := rename[w]; dup {
				return nil, fmt.Errorf("dsl: key %q claimed by fields %q and %q", w, other.name, f.name)
			}
			rename[w] = f
		}
	}
	fields := make([]fieldDef, len(b.fields))
	for i, f := range b.fields {
		fields[i] = *f
		fields[i].wire = append([]string(nil), f.wire...)
	}
	return &objectSchema{
		fields:        fields,
		rename:        rename,
		unknownPolicy: b.unknownPolicy,
		refines:       append([]objRefine(nil), b.refines...),
		title:         b.title,
	}, nil
}

// MustBuild is Build that panics on declaration errors.
func (b *objectBuilder) MustBuild() stacskema.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
