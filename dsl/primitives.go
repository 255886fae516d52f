package dsl

import (
	"context"
	"fmt"
	"strings"

	stacskema "github.com/reoring/stacskema"
	js "github.com/reoring/stacskema/jsonschema"
)

// StringBuilder exposes chaining options for string schemas while implementing Schema[string].
type StringBuilder interface {
	stacskema.Schema[string]
	NonEmpty() StringBuilder
}

// String returns the minimal string schema implementation.
func String() StringBuilder { return &stringSchema{} }

type stringSchema struct{ nonEmpty bool }

func (s *stringSchema) NonEmpty() StringBuilder {
	return &stringSchema{nonEmpty: true}
}

func (s *stringSchema) Parse(ctx context.Context, v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected string", nil)}
	}
	if s.nonEmpty && str == "" {
		return "", stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeTooShort, "must not be empty", map[string]any{"min": 1})}
	}
	return str, nil
}

func (s *stringSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *stringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string"}
	if s.nonEmpty {
		out.MinLength = js.Ptr(1)
	}
	return out, nil
}

// Int returns a schema accepting integral numbers.
func Int() stacskema.Schema[int] { return intSchema{} }

type intSchema struct{}

func (intSchema) Parse(ctx context.Context, v any) (int, error) {
	n, ok := ToInt(v)
	if !ok {
		return 0, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected integer", nil)}
	}
	return n, nil
}

func (s intSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (intSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "integer"}, nil }

// Number returns a schema accepting finite numbers (integer or floating point).
func Number() stacskema.Schema[float64] { return numberSchema{} }

type numberSchema struct{}

func (numberSchema) Parse(ctx context.Context, v any) (float64, error) {
	f, ok := ToFloat64(v)
	if !ok {
		return 0, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected finite number", nil)}
	}
	return f, nil
}

func (s numberSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (numberSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

// Enum returns a schema accepting exactly the given values. Rejections name
// the offending value and list the accepted set in declaration order.
func Enum[T ~string](accepted ...T) stacskema.Schema[T] {
	set := make(map[string]struct{}, len(accepted))
	names := make([]string, 0, len(accepted))
	for _, a := range accepted {
		set[string(a)] = struct{}{}
		names = append(names, string(a))
	}
	return &enumSchema[T]{set: set, names: names}
}

type enumSchema[T ~string] struct {
	set   map[string]struct{}
	names []string
}

func (e *enumSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	str, ok := v.(string)
	if !ok {
		return "", stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected string", nil)}
	}
	if _, ok := e.set[str]; !ok {
		hint := fmt.Sprintf("%q is not one of [%s]", str, strings.Join(e.names, ", "))
		return "", stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidEnum, hint, map[string]any{
			"got":      str,
			"accepted": append([]string(nil), e.names...),
		})}
	}
	return T(str), nil
}

func (e *enumSchema[T]) Validate(ctx context.Context, v any) error {
	_, err := e.Parse(ctx, v)
	return err
}

func (e *enumSchema[T]) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.names))
	for i, n := range e.names {
		vals[i] = n
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}

// Literal returns a schema accepting only the given constant string.
func Literal(value string) stacskema.Schema[string] { return literalSchema{value: value} }

type literalSchema struct{ value string }

func (l literalSchema) Parse(ctx context.Context, v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected string", nil)}
	}
	if str != l.value {
		return "", stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidLiteral, fmt.Sprintf("expected %q", l.value), map[string]any{
			"got":  str,
			"want": l.value,
		})}
	}
	return str, nil
}

func (l literalSchema) Validate(ctx context.Context, v any) error {
	_, err := l.Parse(ctx, v)
	return err
}

func (l literalSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Const: l.value}, nil
}

// MapAny returns an open mapping schema: any string-keyed object is accepted
// and shallow-copied.
func MapAny() stacskema.Schema[map[string]any] { return mapAnySchema{} }

type mapAnySchema struct{}

func (mapAnySchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected object", nil)}
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = val
	}
	return out, nil
}

func (s mapAnySchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (mapAnySchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "object", AdditionalProperties: true}, nil
}
