package entities

import (
	"strings"
	"testing"
)

func TestCatalogLookupNormalizesName(t *testing.T) {
	catalog := DefaultCatalog()

	for _, name := range []string{"french", "French", " FRENCH "} {
		lang, ok := catalog.Lookup(name)
		if !ok {
			t.Fatalf("expected lookup to succeed for %q", name)
		}
		if lang.Code != "fr" {
			t.Errorf("expected code fr for %q, got %s", name, lang.Code)
		}
		if lang.Voice != "Mathieu" {
			t.Errorf("expected voice Mathieu for %q, got %s", name, lang.Voice)
		}
	}
}

func TestCatalogLookupUnknownLanguage(t *testing.T) {
	catalog := DefaultCatalog()

	if _, ok := catalog.Lookup("klingon"); ok {
		t.Error("expected lookup to fail for unsupported language")
	}
}

func TestCatalogContainsSourceLanguage(t *testing.T) {
	catalog := DefaultCatalog()

	// The source language is a recognized name for validation purposes even
	// though it is not a translation target.
	if !catalog.Contains(SourceLanguageName) {
		t.Error("expected catalog to recognize the source language name")
	}
	if _, ok := catalog.Lookup(SourceLanguageName); ok {
		t.Error("source language must not resolve to a translation target")
	}
}

func TestCatalogNamesReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()

	names := catalog.Names()
	if len(names) == 0 {
		t.Fatal("expected at least one supported language")
	}
	names[0] = "klingon"

	if catalog.Names()[0] == "klingon" {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}

func TestDefaultCatalogEntriesAreComplete(t *testing.T) {
	catalog := DefaultCatalog()

	names := catalog.Names()
	if len(names) == 0 {
		t.Fatal("expected at least one supported language")
	}

	for _, name := range names {
		lang, ok := catalog.Lookup(name)
		if !ok {
			t.Fatalf("name %q listed but not resolvable", name)
		}
		if lang.Name != strings.ToLower(lang.Name) {
			t.Errorf("language name %q is not lowercase", lang.Name)
		}
		if lang.Code == "" {
			t.Errorf("language %q has no short code", name)
		}
		if lang.Voice == "" {
			t.Errorf("language %q has no synthesis voice", name)
		}
		if len(lang.Facts) == 0 {
			t.Errorf("language %q has no facts", name)
		}
	}
}
