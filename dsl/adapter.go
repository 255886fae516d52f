package dsl

import (
	"context"

	stacskema "github.com/reoring/stacskema"
	js "github.com/reoring/stacskema/jsonschema"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper so that schemas of
// different value types can sit side by side in one Object.
type AnyAdapter struct {
	parse      func(context.Context, any) (any, error)
	jsonSchema func() (*js.Schema, error)
}

// SchemaOf adapts a strongly typed Schema[T] for use in Field.
func SchemaOf[T any](s stacskema.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse:      func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		jsonSchema: s.JSONSchema,
	}
}

// Parse runs the wrapped schema.
func (ad AnyAdapter) Parse(ctx context.Context, v any) (any, error) {
	if ad.parse == nil {
		return v, nil
	}
	return ad.parse(ctx, v)
}

// JSONSchema returns the wrapped schema's projection (empty schema when unset).
func (ad AnyAdapter) JSONSchema() (*js.Schema, error) {
	if ad.jsonSchema == nil {
		return &js.Schema{}, nil
	}
	return ad.jsonSchema()
}

// Project converts the output of s with fn. Issues returned by fn are
// reported as-is; other errors become parse_error issues at the root.
func Project[A, B any](s stacskema.Schema[A], fn func(context.Context, A) (B, error)) stacskema.Schema[B] {
	return &projectSchema[A, B]{inner: s, fn: fn}
}

type projectSchema[A, B any] struct {
	inner stacskema.Schema[A]
	fn    func(context.Context, A) (B, error)
}

func (p *projectSchema[A, B]) Parse(ctx context.Context, v any) (B, error) {
	var zero B
	a, err := p.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	b, err := p.fn(ctx, a)
	if err != nil {
		return zero, stacskema.IssuesFromErr("/", err)
	}
	return b, nil
}

func (p *projectSchema[A, B]) Validate(ctx context.Context, v any) error {
	_, err := p.Parse(ctx, v)
	return err
}

func (p *projectSchema[A, B]) JSONSchema() (*js.Schema, error) { return p.inner.JSONSchema() }
