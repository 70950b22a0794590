package usecase

import (
	"fmt"
	"math/rand"

	"github.com/parlolabs/parlo/domain"
	"github.com/parlolabs/parlo/domain/entities"
)

// FactService returns a random fact about a supported language.
type FactService struct {
	catalog   *entities.Catalog
	pickIndex func(n int) int
}

// NewFactService creates a fact service.
func NewFactService(catalog *entities.Catalog) *FactService {
	return &FactService{catalog: catalog, pickIndex: rand.Intn}
}

// Fact returns one fact for the given language, chosen uniformly at random.
func (s *FactService) Fact(languageName string) (string, error) {
	lang, ok := s.catalog.Lookup(languageName)
	if !ok {
		return "", fmt.Errorf("%w: unsupported language %q", domain.ErrValidation, languageName)
	}
	if len(lang.Facts) == 0 {
		return "", fmt.Errorf("%w: no facts for %q", domain.ErrValidation, languageName)
	}
	return lang.Facts[s.pickIndex(len(lang.Facts))], nil
}
