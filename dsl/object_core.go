package dsl

import (
	"context"
	"sort"

	stacskema "github.com/reoring/stacskema"
	js "github.com/reoring/stacskema/jsonschema"
)

type objectSchema struct {
	fields        []fieldDef
	rename        map[string]*fieldDef // wire key -> field
	unknownPolicy stacskema.UnknownPolicy
	refines       []objRefine
	title         string
}

// Ensure objectSchema implements stacskema.Schema[map[string]any]
var _ stacskema.Schema[map[string]any] = (*objectSchema)(nil)

type objRefine struct {
	name string
	fn   func(context.Context, map[string]any) error
}

// Parse validates fields in declaration order and returns a map keyed by
// field name (never by alias). A null optional field counts as absent.
func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected object", nil)}
	}
	failFast := stacskema.IsFailFast(ctx)
	out := make(map[string]any, len(o.fields))
	var iss stacskema.Issues
	for i := range o.fields {
		f := &o.fields[i]
		key, val, present, conflict := lookupField(f, src)
		if conflict != nil {
			iss = stacskema.AppendIssues(iss, *conflict)
			if failFast {
				return nil, iss
			}
			continue
		}
		if !present || (val == nil && !f.required) {
			if f.required {
				iss = stacskema.AppendIssues(iss, stacskema.NewIssue("/"+escape(f.wire[0]), stacskema.CodeRequired, "required property missing", map[string]any{"field": f.wire[0]}))
				if failFast {
					return nil, iss
				}
			}
			continue
		}
		parsed, err := f.ad.Parse(ctx, val)
		if err != nil {
			iss = stacskema.AppendIssues(iss, stacskema.Rebase("/"+escape(key), stacskema.IssuesFromErr("/", err))...)
			if failFast {
				return nil, iss
			}
			continue
		}
		out[f.name] = parsed
	}
	if stacskema.UnknownPolicyFrom(ctx, o.unknownPolicy) == stacskema.UnknownStrict {
		// unknown keys in key-sorted order
		uks := make([]string, 0)
		for k := range src {
			if _, known := o.rename[k]; !known {
				uks = append(uks, k)
			}
		}
		sort.Strings(uks)
		for _, k := range uks {
			iss = stacskema.AppendIssues(iss, stacskema.NewIssue("/"+escape(k), stacskema.CodeUnknownKey, "", map[string]any{"key": k}))
			if failFast {
				return nil, iss
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	if err := o.refine(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// lookupField finds the input key carrying f. More than one accepted key
// present is a conflict reported at the second key.
func lookupField(f *fieldDef, src map[string]any) (string, any, bool, *stacskema.Issue) {
	found := ""
	var val any
	for _, w := range f.wire {
		v, ok := src[w]
		if !ok {
			continue
		}
		if found != "" {
			it := stacskema.NewIssue("/"+escape(w), stacskema.CodeConflict, "also given as "+found, map[string]any{"field": f.name, "keys": []string{found, w}})
			return "", nil, false, &it
		}
		found, val = w, v
	}
	return found, val, found != "", nil
}

func (o *objectSchema) refine(ctx context.Context, v map[string]any) error {
	var iss stacskema.Issues
	for _, r := range o.refines {
		if r.fn == nil {
			continue
		}
		if err := r.fn(ctx, v); err != nil {
			if i2, ok := stacskema.AsIssues(err); ok {
				iss = stacskema.AppendIssues(iss, i2...)
			} else {
				iss = stacskema.AppendIssues(iss, stacskema.Issue{Path: "/", Code: "custom", Message: err.Error(), Hint: r.name, Cause: err})
			}
			if stacskema.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	_, err := o.Parse(ctx, v)
	return err
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	var req []string
	for i := range o.fields {
		f := &o.fields[i]
		ps, err := f.ad.JSONSchema()
		if err != nil {
			return nil, err
		}
		for _, w := range f.wire {
			props[w] = ps
		}
		if f.required {
			req = append(req, f.wire[0])
		}
	}
	sort.Strings(req)
	// UnknownStrict => additionalProperties=false; strip accepts then discards.
	var additional any = true
	if o.unknownPolicy == stacskema.UnknownStrict {
		additional = false
	}
	return &js.Schema{Title: o.title, Type: "object", Properties: props, Required: req, AdditionalProperties: additional}, nil
}

func escape(k string) string { return stacskema.Root().Field(k).Pointer()[1:] }
