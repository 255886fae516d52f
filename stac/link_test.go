package stac_test

import (
	"context"
	"encoding/json"
	"testing"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/stac"
)

func TestParseLink(t *testing.T) {
	l, err := stac.ParseLink(context.Background(), map[string]any{
		"href":         "./item.json",
		"rel":          "item",
		"type":         "application/json",
		"label:assets": "labels",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if l.Href != "./item.json" || l.Rel != "item" || l.Type != "application/json" || l.Label != "labels" {
		t.Fatalf("unexpected link: %+v", l)
	}
}

func TestParseLink_Requirements(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
		path string
		code string
	}{
		{"missing rel", map[string]any{"href": "x"}, "/rel", stacskema.CodeRequired},
		{"missing href", map[string]any{"rel": "self"}, "/href", stacskema.CodeRequired},
		{"empty href", map[string]any{"href": "", "rel": "self"}, "/href", stacskema.CodeTooShort},
		{"numeric rel", map[string]any{"href": "x", "rel": 1}, "/rel", stacskema.CodeInvalidType},
		{"numeric title", map[string]any{"href": "x", "rel": "self", "title": 2}, "/title", stacskema.CodeInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := stac.ParseLink(context.Background(), tc.in)
			iss, _ := stacskema.AsIssues(err)
			if len(iss) != 1 || iss[0].Path != tc.path || iss[0].Code != tc.code {
				t.Fatalf("expected %s at %s, got %v", tc.code, tc.path, err)
			}
		})
	}
}

func TestLink_JSONRoundTrip(t *testing.T) {
	var l stac.Link
	if err := json.Unmarshal([]byte(`{"href":"a","rel":"self","title":"Self"}`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	b, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	if len(m) != 3 || m["title"] != "Self" {
		t.Fatalf("unexpected wire form: %s", b)
	}
}

func TestLink_UnmarshalReportsIssues(t *testing.T) {
	var l stac.Link
	err := json.Unmarshal([]byte(`{"href":"a"}`), &l)
	if _, ok := stacskema.AsIssues(err); !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
}

func TestLink_EmptyOptionalStringIsAbsent(t *testing.T) {
	l, err := stac.ParseLink(context.Background(), map[string]any{"href": "a", "rel": "self", "type": ""})
	if err != nil {
		t.Fatalf("an empty type is valid: %v", err)
	}
	if _, ok := l.ToMap()["type"]; ok {
		t.Fatalf("empty optional strings are written as absent: %v", l.ToMap())
	}
	again, err := stac.ParseLink(context.Background(), l.ToMap())
	if err != nil || again != l {
		t.Fatalf("re-parse must give the same value: %+v %v", again, err)
	}
}
