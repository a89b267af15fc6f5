package i18n_test

import (
	"testing"

	"vitrine/internal/i18n"
)

func TestValid(t *testing.T) {
	for _, s := range []string{"fr", "en", "ar"} {
		if !i18n.Valid(s) {
			t.Errorf("%s must be valid", s)
		}
	}
	for _, s := range []string{"", "de", "FR", "fr-FR"} {
		if i18n.Valid(s) {
			t.Errorf("%q must not be valid", s)
		}
	}
}

func TestDir(t *testing.T) {
	if got := i18n.Dir(i18n.Arabic); got != "rtl" {
		t.Fatalf("arabic dir = %q", got)
	}
	if got := i18n.Dir(i18n.French); got != "ltr" {
		t.Fatalf("french dir = %q", got)
	}
}

func TestDictionariesComplete(t *testing.T) {
	// Every locale must carry every key the default locale has, so no page
	// renders a mix of languages.
	base := i18n.Dict(i18n.DefaultLocale)
	if len(base) == 0 {
		t.Fatal("default dictionary is empty")
	}
	for _, l := range i18n.Locales() {
		d := i18n.Dict(l)
		for key := range base {
			if _, ok := d[key]; !ok {
				t.Errorf("locale %s missing key %q", l, key)
			}
		}
	}
}

func TestDictFallsBackToDefault(t *testing.T) {
	got := i18n.Dict(i18n.Locale("de"))
	if got.T("landing.title") != i18n.Dict(i18n.French).T("landing.title") {
		t.Fatal("unknown locale must fall back to the default dictionary")
	}
}

func TestTFallsBackToKey(t *testing.T) {
	d := i18n.Dict(i18n.English)
	if got := d.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key must echo, got %q", got)
	}
	if got := d.T("landing.cta"); got == "landing.cta" || got == "" {
		t.Fatalf("known key not translated: %q", got)
	}
}
