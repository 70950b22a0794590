// Package lexicon provides the recognized-word dictionary used by the input
// validator. The built-in list covers common conversational English; a
// larger list can be supplied from a file at startup.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed words.txt
var defaultWords string

// Lexicon is an immutable set of recognized dictionary words.
type Lexicon struct {
	words map[string]struct{}
}

// New builds a lexicon from the given words. Words are normalized to
// lowercase; empty entries are skipped.
func New(words []string) *Lexicon {
	l := &Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		l.words[w] = struct{}{}
	}
	return l
}

// Default returns the lexicon backed by the embedded word list.
func Default() *Lexicon {
	return New(strings.Split(defaultWords, "\n"))
}

// FromFile loads a lexicon from a newline-separated word list.
func FromFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return New(strings.Split(string(data), "\n")), nil
}

// Contains reports whether word is in the lexicon. The word is lowercased
// before lookup.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.words)
}
