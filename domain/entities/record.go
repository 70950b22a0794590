package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TranslationRecord is one successfully completed translation, persisted in
// the history store. Records are immutable after creation and never deleted
// by this service.
type TranslationRecord struct {
	ID               string    `json:"id" bson:"_id"`
	UserID           string    `json:"user_id" bson:"user_id"`
	Language         string    `json:"language" bson:"language"`
	SourcePhrase     string    `json:"source_phrase" bson:"source_phrase"`
	TranslatedPhrase string    `json:"translated_phrase" bson:"translated_phrase"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// NewTranslationRecord creates a record with a fresh id and creation time.
// The language is stored as the normalized lowercase full name.
func NewTranslationRecord(userID, language, sourcePhrase, translatedPhrase string) *TranslationRecord {
	return &TranslationRecord{
		ID:               uuid.NewString(),
		UserID:           userID,
		Language:         language,
		SourcePhrase:     sourcePhrase,
		TranslatedPhrase: translatedPhrase,
		CreatedAt:        time.Now(),
	}
}

// Validate checks the fields the history store requires.
func (r *TranslationRecord) Validate() error {
	if r.ID == "" {
		return errors.New("record id is required")
	}
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if r.Language == "" {
		return errors.New("language is required")
	}
	if r.SourcePhrase == "" {
		return errors.New("source phrase is required")
	}
	if r.TranslatedPhrase == "" {
		return errors.New("translated phrase is required")
	}
	return nil
}
