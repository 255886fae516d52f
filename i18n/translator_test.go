package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_geometry", nil); msg != "invalid geometry" {
		t.Fatalf("expected english message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", nil); msg == "invalid type" || msg == "invalid_type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// unsupported languages fall back to en
	SetLanguage("fr")
	if msg := T("length_mismatch", nil); msg != "wrong number of elements" {
		t.Fatalf("expected english fallback, got %q", msg)
	}
	SetLanguage("en")
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("required", nil); msg != "X:required" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("required", nil); msg != "required property missing" {
		t.Fatalf("expected reset to english, got %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes echo the code, got %q", msg)
	}
}
