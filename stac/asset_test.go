package stac_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/stac"
)

func TestParseAsset_ExtensionAliases(t *testing.T) {
	a, err := stac.ParseAsset(context.Background(), map[string]any{
		"href":               "https://example.com/B01.tif",
		"roles":              []any{"data"},
		"eo:bands":           []any{1, 2, 3},
		"sar:polarizations":  []any{"VV", "VH"},
		"checksum:multihash": "1220abcd",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(a.Bands) != 3 || a.Bands[0] != 1 || a.Bands[2] != 3 {
		t.Fatalf("unexpected bands: %v", a.Bands)
	}
	if len(a.Polarizations) != 2 || a.Multihash != "1220abcd" {
		t.Fatalf("unexpected extension fields: %+v", a)
	}
	if !a.HasRole(stac.RoleData) || a.HasRole(stac.RoleThumbnail) {
		t.Fatalf("unexpected roles: %v", a.Roles)
	}
}

func TestParseAsset_PlainNamesAccepted(t *testing.T) {
	a, err := stac.ParseAsset(context.Background(), map[string]any{"href": "a.tif", "bands": []any{4}})
	if err != nil || len(a.Bands) != 1 || a.Bands[0] != 4 {
		t.Fatalf("unexpected: %+v %v", a, err)
	}
}

func TestParseAsset_UnknownRole(t *testing.T) {
	_, err := stac.ParseAsset(context.Background(), map[string]any{"href": "a.tif", "roles": []any{"data", "icon"}})
	iss, ok := stacskema.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	is := iss[0]
	if is.Code != stacskema.CodeInvalidEnum || is.Path != "/roles/1" {
		t.Fatalf("expected invalid_enum at /roles/1, got %+v", is)
	}
	if is.Params["got"] != "icon" {
		t.Fatalf("expected offending value in params, got %v", is.Params)
	}
	for _, r := range stac.AssetRoles() {
		if !strings.Contains(is.Hint, string(r)) {
			t.Fatalf("hint must list %q: %s", r, is.Hint)
		}
	}
}

func TestParseAsset_MissingHrefAndBadBands(t *testing.T) {
	_, err := stac.ParseAsset(context.Background(), map[string]any{"eo:bands": []any{1, "two"}})
	iss, _ := stacskema.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", err)
	}
	if iss[0].Path != "/href" || iss[0].Code != stacskema.CodeRequired {
		t.Fatalf("unexpected first issue: %+v", iss[0])
	}
	if iss[1].Path != "/eo:bands/1" || iss[1].Code != stacskema.CodeInvalidType {
		t.Fatalf("unexpected second issue: %+v", iss[1])
	}
}

func TestAsset_JSONRoundTrip(t *testing.T) {
	in := `{"href":"a.tif","type":"image/tiff","roles":["data","overview"],"eo:bands":[0,1],"extra":true}`
	var a stac.Asset
	if err := json.Unmarshal([]byte(in), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := m["extra"]; ok {
		t.Fatalf("unknown keys are stripped: %s", out)
	}
	if _, ok := m["eo:bands"]; !ok {
		t.Fatalf("bands must be written under eo:bands: %s", out)
	}
	var again stac.Asset
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if again.Type != "image/tiff" || len(again.Roles) != 2 || len(again.Bands) != 2 {
		t.Fatalf("round trip lost data: %+v", again)
	}
}

func TestAsset_StrictRejectsUnknown(t *testing.T) {
	src := stacskema.JSONBytes([]byte(`{"href":"a.tif","foo":1}`))
	_, err := stacskema.ParseFrom(context.Background(), stac.AssetSchema(), src, stacskema.ParseOpt{Unknown: stacskema.UnknownStrict})
	iss, _ := stacskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != stacskema.CodeUnknownKey || iss[0].Path != "/foo" {
		t.Fatalf("expected unknown_key at /foo, got %v", err)
	}
}

func TestParseAsset_BandOutOfIntRange(t *testing.T) {
	var a stac.Asset
	err := json.Unmarshal([]byte(`{"href":"a","eo:bands":[9223372036854775808]}`), &a)
	iss, ok := stacskema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/eo:bands/0" || iss[0].Code != stacskema.CodeInvalidType {
		t.Fatalf("expected invalid_type at /eo:bands/0, got %v (bands %v)", err, a.Bands)
	}
}

func TestAsset_EmptyOptionalStringIsAbsent(t *testing.T) {
	a, err := stac.ParseAsset(context.Background(), map[string]any{"href": "a.tif", "title": "", "checksum:multihash": ""})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := a.ToMap()
	if _, ok := m["title"]; ok {
		t.Fatalf("empty title must be omitted: %v", m)
	}
	if _, ok := m["checksum:multihash"]; ok {
		t.Fatalf("empty multihash must be omitted: %v", m)
	}
}
