package dsl_test

import (
	"context"
	"testing"

	stacskema "github.com/reoring/stacskema"
	g "github.com/reoring/stacskema/dsl"
)

func TestArray_ElementIssuesAreIndexed(t *testing.T) {
	_, err := g.Array(g.Int()).Parse(context.Background(), []any{1, "two", 3, true})
	iss, _ := stacskema.AsIssues(err)
	if len(iss) != 2 || iss[0].Path != "/1" || iss[1].Path != "/3" {
		t.Fatalf("expected issues at /1 and /3, got %v", err)
	}
}

func TestArray_MinMax(t *testing.T) {
	ctx := context.Background()
	s := g.Array(g.Number()).Min(2).Max(3)
	if _, err := s.Parse(ctx, []any{1}); err == nil {
		t.Fatalf("expected too_short")
	} else if iss, _ := stacskema.AsIssues(err); iss[0].Code != stacskema.CodeTooShort {
		t.Fatalf("unexpected: %v", err)
	}
	if _, err := s.Parse(ctx, []any{1, 2, 3, 4}); err == nil {
		t.Fatalf("expected too_long")
	} else if iss, _ := stacskema.AsIssues(err); iss[0].Code != stacskema.CodeTooLong {
		t.Fatalf("unexpected: %v", err)
	}
	if _, err := s.Parse(ctx, []any{1, 2}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestArray_Len(t *testing.T) {
	ctx := context.Background()
	s := g.Array(g.Number()).Len(4, 6)
	numbers := func(n int) []any {
		in := make([]any, n)
		for i := range in {
			in[i] = float64(i)
		}
		return in
	}
	for _, n := range []int{4, 6} {
		if _, err := s.Parse(ctx, numbers(n)); err != nil {
			t.Fatalf("len %d: unexpected err: %v", n, err)
		}
	}
	for _, n := range []int{0, 3, 5, 7} {
		_, err := s.Parse(ctx, numbers(n))
		iss, _ := stacskema.AsIssues(err)
		if len(iss) != 1 || iss[0].Code != stacskema.CodeLengthMismatch {
			t.Fatalf("len %d: expected length_mismatch, got %v", n, err)
		}
	}
}

func TestArray_AcceptsTypedSlices(t *testing.T) {
	got, err := g.Array(g.Number()).Parse(context.Background(), []float64{1, 2})
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected: %v %v", got, err)
	}
	if _, err := g.Array(g.Number()).Parse(context.Background(), "12"); err == nil {
		t.Fatalf("strings are not arrays")
	}
}
