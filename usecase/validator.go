package usecase

import (
	"strings"
	"unicode"

	"github.com/parlolabs/parlo/domain/entities"
	"github.com/parlolabs/parlo/internal/lexicon"
)

// Validator checks that free-text input consists only of recognized
// dictionary words or supported language names.
type Validator struct {
	lexicon *lexicon.Lexicon
	catalog *entities.Catalog
}

// NewValidator creates a validator over the given lexicon and catalog.
func NewValidator(lex *lexicon.Lexicon, catalog *entities.Catalog) *Validator {
	return &Validator{lexicon: lex, catalog: catalog}
}

// IsValid normalizes the input and reports whether every token is either a
// lexicon word or a supported language name. Input that is empty after
// normalization is valid: zero tokens trivially satisfy the check.
func (v *Validator) IsValid(input string) bool {
	for _, token := range normalize(input) {
		if v.lexicon.Contains(token) {
			continue
		}
		if v.catalog.Contains(token) {
			continue
		}
		return false
	}
	return true
}

// normalize lowercases the input, strips punctuation and symbols, collapses
// whitespace, and splits into tokens.
func normalize(input string) []string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range strings.ToLower(input) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			// punctuation and symbols are stripped
		}
	}
	return strings.Fields(b.String())
}
