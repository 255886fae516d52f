package dsl

import (
	"context"
	"fmt"
	"strings"

	stacskema "github.com/reoring/stacskema"
	js "github.com/reoring/stacskema/jsonschema"
)

// UnionBuilder collects the variants of a discriminated union.
type UnionBuilder[T any] struct {
	discriminator string
	tags          []string
	mapping       map[string]stacskema.Schema[T]
}

// Union starts a discriminated union keyed by the given string field.
func Union[T any](discriminator string) *UnionBuilder[T] {
	return &UnionBuilder[T]{discriminator: discriminator, mapping: map[string]stacskema.Schema[T]{}}
}

// Variant registers the schema used when the discriminator equals tag.
func (u *UnionBuilder[T]) Variant(tag string, s stacskema.Schema[T]) *UnionBuilder[T] {
	if _, ok := u.mapping[tag]; !ok {
		u.tags = append(u.tags, tag)
	}
	u.mapping[tag] = s
	return u
}

// Build returns the union schema.
func (u *UnionBuilder[T]) Build() stacskema.Schema[T] {
	m := make(map[string]stacskema.Schema[T], len(u.mapping))
	for k, v := range u.mapping {
		m[k] = v
	}
	return &unionSchema[T]{discriminator: u.discriminator, tags: append([]string(nil), u.tags...), mapping: m}
}

// unionSchema is a discriminated union over object inputs.
type unionSchema[T any] struct {
	discriminator string
	tags          []string
	mapping       map[string]stacskema.Schema[T]
}

// Select returns the variant schema for v without parsing it.
func (u *unionSchema[T]) Select(v any) (stacskema.Schema[T], error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected object", nil)}
	}
	path := "/" + escape(u.discriminator)
	dv, present := m[u.discriminator]
	if !present || dv == nil {
		return nil, stacskema.Issues{stacskema.NewIssue(path, stacskema.CodeDiscriminatorMissing, "discriminator missing", nil)}
	}
	tag, ok := dv.(string)
	if !ok {
		return nil, stacskema.Issues{stacskema.NewIssue(path, stacskema.CodeInvalidType, "expected string", nil)}
	}
	s, ok := u.mapping[tag]
	if !ok {
		hint := fmt.Sprintf("unknown variant %q; expected one of [%s]", tag, strings.Join(u.tags, ", "))
		return nil, stacskema.Issues{stacskema.NewIssue(path, stacskema.CodeDiscriminatorUnknown, hint, map[string]any{
			"got":      tag,
			"accepted": append([]string(nil), u.tags...),
		})}
	}
	return s, nil
}

func (u *unionSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	s, err := u.Select(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Parse(ctx, v)
}

func (u *unionSchema[T]) Validate(ctx context.Context, v any) error {
	_, err := u.Parse(ctx, v)
	return err
}

func (u *unionSchema[T]) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(u.tags))}
	for _, tag := range u.tags {
		vs, err := u.mapping[tag].JSONSchema()
		if err != nil {
			return nil, err
		}
		out.OneOf = append(out.OneOf, vs)
	}
	return out, nil
}
