package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("string", nil); msg != "must be a string" {
		t.Fatalf("unexpected default message: %q", msg)
	}

	SetLanguage("ja")
	if msg := T("string", nil); msg == "must be a string" {
		t.Fatalf("expected japanese message, got %q", msg)
	}
	// rules missing from the ja dictionary fall back to en
	if msg := T("jwt", nil); msg != "must be a valid JWT" {
		t.Fatalf("expected en fallback, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_RendersParams(t *testing.T) {
	got := T("min", map[string]string{"min": "5"})
	if got != "must have a minimum length of 5" {
		t.Fatalf("got %q", got)
	}
	got = For("en").Message("enum", map[string]string{"values": "a, b"})
	if got != "Value must be one of: a, b" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslator_UnknownRuleFallsBackToName(t *testing.T) {
	if got := T("myCustomRule", nil); got != "myCustomRule" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":      "en",
		"en":    "en",
		"ja":    "ja",
		"ja-JP": "ja",
		"fr":    "en",
		"%%":    "en",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

type upper struct{}

func (upper) Message(rule string, _ map[string]string) string { return "X:" + rule }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if got := T("string", nil); got != "X:string" {
		t.Fatalf("got %q", got)
	}
	// explicit language bypasses the custom translator
	if got := For("en").Message("string", nil); got != "must be a string" {
		t.Fatalf("got %q", got)
	}
}
