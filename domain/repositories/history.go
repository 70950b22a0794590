package repositories

import (
	"context"

	"github.com/parlolabs/parlo/domain/entities"
)

// HistoryRepository defines data access for translation history.
type HistoryRepository interface {
	// Append stores a new translation record.
	Append(ctx context.Context, record *entities.TranslationRecord) error
	// FindByLanguageAndUser returns every record for the given language and
	// user. An empty result is returned as an empty slice, not an error.
	FindByLanguageAndUser(ctx context.Context, language, userID string) ([]*entities.TranslationRecord, error)
}
