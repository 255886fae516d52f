package dsl

import (
	"context"
	"strconv"

	stacskema "github.com/reoring/stacskema"
	js "github.com/reoring/stacskema/jsonschema"
)

// ArrayBuilder exposes chaining methods for array schemas while implementing Schema[[]E].
type ArrayBuilder[E any] interface {
	stacskema.Schema[[]E]
	Min(n int) ArrayBuilder[E]
	Max(n int) ArrayBuilder[E]
	// Len restricts the length to one of the given values (fixed-arity tuples).
	Len(ns ...int) ArrayBuilder[E]
}

// Array returns an array schema with the given element schema.
func Array[E any](elem stacskema.Schema[E]) ArrayBuilder[E] {
	return &ArraySchema[E]{elem: elem, minLen: -1, maxLen: -1}
}

// ArrayOf adapts Array[E] to AnyAdapter for use in object builders.
func ArrayOf[E any](elem stacskema.Schema[E]) AnyAdapter {
	return SchemaOf[[]E](Array[E](elem))
}

type ArraySchema[E any] struct {
	elem    stacskema.Schema[E]
	minLen  int
	maxLen  int
	lengths []int
}

// Min sets the minimum length.
func (a *ArraySchema[E]) Min(n int) ArrayBuilder[E] { a.minLen = n; return a }

// Max sets the maximum length.
func (a *ArraySchema[E]) Max(n int) ArrayBuilder[E] { a.maxLen = n; return a }

// Len sets the accepted lengths.
func (a *ArraySchema[E]) Len(ns ...int) ArrayBuilder[E] {
	a.lengths = append([]int(nil), ns...)
	return a
}

func (a *ArraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	src, ok := AsSlice(v)
	if !ok {
		return nil, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected array", nil)}
	}
	var iss stacskema.Issues
	if lerr := a.checkLength(len(src)); lerr != nil {
		iss = stacskema.AppendIssues(iss, *lerr)
		if stacskema.IsFailFast(ctx) {
			return nil, iss
		}
	}
	res := make([]E, 0, len(src))
	for i, el := range src {
		ev, err := a.elem.Parse(ctx, el)
		if err != nil {
			iss = stacskema.AppendIssues(iss, stacskema.Rebase("/"+strconv.Itoa(i), stacskema.IssuesFromErr("/", err))...)
			if stacskema.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		res = append(res, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return res, nil
}

func (a *ArraySchema[E]) checkLength(n int) *stacskema.Issue {
	params := map[string]any{"len": n}
	if len(a.lengths) > 0 {
		for _, want := range a.lengths {
			if n == want {
				return nil
			}
		}
		params["accepted"] = append([]int(nil), a.lengths...)
		it := stacskema.NewIssue("/", stacskema.CodeLengthMismatch, "got "+strconv.Itoa(n)+" elements", params)
		return &it
	}
	if a.minLen >= 0 && n < a.minLen {
		params["min"] = a.minLen
		it := stacskema.NewIssue("/", stacskema.CodeTooShort, "at least "+strconv.Itoa(a.minLen)+" elements required", params)
		return &it
	}
	if a.maxLen >= 0 && n > a.maxLen {
		params["max"] = a.maxLen
		it := stacskema.NewIssue("/", stacskema.CodeTooLong, "at most "+strconv.Itoa(a.maxLen)+" elements allowed", params)
		return &it
	}
	return nil
}

func (a *ArraySchema[E]) Validate(ctx context.Context, v any) error {
	_, err := a.Parse(ctx, v)
	return err
}

func (a *ArraySchema[E]) JSONSchema() (*js.Schema, error) {
	items, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	out := &js.Schema{Type: "array", Items: items}
	if a.minLen >= 0 {
		out.MinItems = js.Ptr(a.minLen)
	}
	if a.maxLen >= 0 {
		out.MaxItems = js.Ptr(a.maxLen)
	}
	if len(a.lengths) > 0 {
		lo, hi := a.lengths[0], a.lengths[0]
		for _, n := range a.lengths {
			if n < lo {
				lo = n
			}
			if n > hi {
				hi = n
			}
		}
		out.MinItems, out.MaxItems = js.Ptr(lo), js.Ptr(hi)
	}
	return out, nil
}
