package stacskema

import (
	"context"

	js "github.com/reoring/stacskema/jsonschema"
)

// Schema validates an untyped, JSON-like value and produces T.
type Schema[T any] interface {
	// Parse transforms an unknown input into T. Every issue found is returned
	// together as Issues; the zero T is returned whenever err != nil.
	Parse(ctx context.Context, v any) (T, error)

	// Validate reports the same issues as Parse without keeping the value.
	Validate(ctx context.Context, v any) error

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validate(ctx, v) == nil
}

// ---- Parse-time context options (internal wiring, exported for subpackages) ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
	_ctxKeyUnknown
)

// WithFailFast returns a child context that marks fail-fast parsing behavior.
// This is set by ParseFrom based on ParseOpt and consumed by schema implementations.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}

// WithUnknownPolicy overrides the unknown-key policy of object schemas for
// parses run with the returned context.
func WithUnknownPolicy(ctx context.Context, p UnknownPolicy) context.Context {
	return context.WithValue(ctx, _ctxKeyUnknown, p)
}

// UnknownPolicyFrom resolves the effective policy: the context override when
// set, otherwise def.
func UnknownPolicyFrom(ctx context.Context, def UnknownPolicy) UnknownPolicy {
	if p, ok := ctx.Value(_ctxKeyUnknown).(UnknownPolicy); ok && p != UnknownDefault {
		return p
	}
	return def
}
