package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlolabs/parlo/domain"
	"github.com/parlolabs/parlo/domain/entities"
)

func TestFactReturnsCatalogFact(t *testing.T) {
	catalog := entities.DefaultCatalog()
	service := NewFactService(catalog)

	lang, ok := catalog.Lookup("french")
	require.True(t, ok)

	service.pickIndex = func(n int) int {
		assert.Equal(t, len(lang.Facts), n)
		return 0
	}

	fact, err := service.Fact("french")
	require.NoError(t, err)
	assert.Equal(t, lang.Facts[0], fact)
}

func TestFactUnsupportedLanguage(t *testing.T) {
	service := NewFactService(entities.DefaultCatalog())

	_, err := service.Fact("klingon")
	require.ErrorIs(t, err, domain.ErrValidation)
}
