package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testOptions(kind string) Options {
	var opts Options
	opts.Kind = kind
	opts.Output = "text"
	opts.Lang = "en"
	return opts
}

func TestRun_ValidFeatureFromStdin(t *testing.T) {
	in := strings.NewReader(`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":null}`)
	var out bytes.Buffer
	if code := run(testOptions("feature"), in, &out); code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}
	if strings.TrimSpace(out.String()) != "-: ok" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRun_InvalidGeometryText(t *testing.T) {
	in := strings.NewReader(`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1]]]}`)
	var out bytes.Buffer
	if code := run(testOptions("geometry"), in, &out); code != exitInvalid {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "/coordinates/0 invalid_geometry") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRun_JSONReport(t *testing.T) {
	opts := testOptions("asset")
	opts.Output = "json"
	in := strings.NewReader(`{"href":"a.tif","roles":["icon"]}`)
	var out bytes.Buffer
	if code := run(opts, in, &out); code != exitInvalid {
		t.Fatalf("expected exit 1, got %d", code)
	}
	var reports []map[string]any
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatalf("report is not json: %v\n%s", err, out.String())
	}
	issues := reports[0]["issues"].([]any)
	first := issues[0].(map[string]any)
	if first["code"] != "invalid_enum" || first["path"] != "/roles/0" {
		t.Fatalf("unexpected issue: %v", first)
	}
}

func TestRun_StrictRejectsUnknownAndDuplicates(t *testing.T) {
	opts := testOptions("link")
	opts.Strict = true
	var out bytes.Buffer
	code := run(opts, strings.NewReader(`{"href":"a","rel":"self","rel":"item","extra":1}`), &out)
	if code != exitInvalid {
		t.Fatalf("expected exit 1, got %d", code)
	}
	for _, want := range []string{"/rel duplicate_key", "/extra unknown_key"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output: %s", want, out.String())
		}
	}
}

func TestRun_YAMLFileByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bbox.yaml")
	if err := os.WriteFile(path, []byte("[0, 0, 1, 1]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := testOptions("bbox")
	opts.Output = "yaml"
	opts.Args.Files = []string{path}
	var out bytes.Buffer
	if code := run(opts, nil, &out); code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "valid: true") {
		t.Fatalf("unexpected yaml report: %s", out.String())
	}
}

func TestRun_MissingFile(t *testing.T) {
	opts := testOptions("link")
	opts.Args.Files = []string{filepath.Join(t.TempDir(), "missing.json")}
	var out bytes.Buffer
	if code := run(opts, nil, &out); code != exitError {
		t.Fatalf("expected exit 2, got %d", code)
	}
}
