package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLexicon(t *testing.T) {
	l := Default()

	if l.Len() == 0 {
		t.Fatal("expected embedded word list to be non-empty")
	}

	for _, w := range []string{"hello", "there", "Hello", "THERE"} {
		if !l.Contains(w) {
			t.Errorf("expected %q to be recognized", w)
		}
	}

	if l.Contains("xyzzy") {
		t.Error("expected xyzzy to be unrecognized")
	}
}

func TestNewSkipsEmptyEntries(t *testing.T) {
	l := New([]string{"hello", "", "  ", "World"})

	if l.Len() != 2 {
		t.Errorf("expected 2 words, got %d", l.Len())
	}
	if !l.Contains("world") {
		t.Error("expected world to be recognized")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("apple\nbanana\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if !l.Contains("banana") {
		t.Error("expected banana to be recognized")
	}

	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
