package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/parlolabs/parlo/domain"
	"github.com/parlolabs/parlo/domain/entities"
	"github.com/parlolabs/parlo/domain/repositories"
	"github.com/parlolabs/parlo/internal/pipeline"
)

// TranslationResult is the outcome of a completed translation pipeline.
type TranslationResult struct {
	Record   *entities.TranslationRecord
	AudioURL string
}

// TranslationService orchestrates the five-stage translation pipeline:
// validate, translate, persist, synthesize, store audio. Stages run
// strictly in order and the first failure aborts the remainder.
type TranslationService struct {
	validator   *Validator
	catalog     *entities.Catalog
	translator  repositories.Translator
	history     repositories.HistoryRepository
	synthesizer repositories.SpeechSynthesizer
	audioStore  repositories.AudioStore
	runner      *pipeline.Runner
	logger      *zap.Logger
}

// NewTranslationService creates a translation service.
func NewTranslationService(
	validator *Validator,
	catalog *entities.Catalog,
	translator repositories.Translator,
	history repositories.HistoryRepository,
	synthesizer repositories.SpeechSynthesizer,
	audioStore repositories.AudioStore,
	runner *pipeline.Runner,
	logger *zap.Logger,
) *TranslationService {
	return &TranslationService{
		validator:   validator,
		catalog:     catalog,
		translator:  translator,
		history:     history,
		synthesizer: synthesizer,
		audioStore:  audioStore,
		runner:      runner,
		logger:      logger,
	}
}

// ValidateRequest checks the phrase and target language without running the
// pipeline. The quiz flow reuses the language half of this check.
func (s *TranslationService) ValidateRequest(phrase, languageName string) (entities.Language, error) {
	if len(normalize(phrase)) == 0 {
		return entities.Language{}, fmt.Errorf("%w: nothing to translate", domain.ErrValidation)
	}
	if !s.validator.IsValid(phrase) {
		return entities.Language{}, fmt.Errorf("%w: unrecognized words in phrase", domain.ErrValidation)
	}
	return s.ValidateLanguage(languageName)
}

// ValidateLanguage checks that languageName is a supported translation
// target distinct from the source language.
func (s *TranslationService) ValidateLanguage(languageName string) (entities.Language, error) {
	name := strings.ToLower(strings.TrimSpace(languageName))
	if !s.validator.IsValid(name) {
		return entities.Language{}, fmt.Errorf("%w: unrecognized language name %q", domain.ErrValidation, languageName)
	}
	if name == entities.SourceLanguageName {
		return entities.Language{}, fmt.Errorf("%w: cannot translate into the source language", domain.ErrValidation)
	}
	lang, ok := s.catalog.Lookup(name)
	if !ok {
		return entities.Language{}, fmt.Errorf("%w: unsupported language %q", domain.ErrValidation, languageName)
	}
	return lang, nil
}

// Translate runs the full pipeline for one user turn. On success the phrase
// has been translated, persisted, synthesized, and uploaded; the result
// carries the stored record and a playable audio URL.
func (s *TranslationService) Translate(ctx context.Context, userID, phrase, languageName string) (*TranslationResult, error) {
	var (
		lang        entities.Language
		translation *repositories.Translation
		record      *entities.TranslationRecord
		audio       []byte
		audioURL    string
	)

	steps := []pipeline.Step{
		{
			Name: "validate",
			Run: func(ctx context.Context) error {
				var err error
				lang, err = s.ValidateRequest(phrase, languageName)
				return err
			},
		},
		{
			Name: "translate",
			Run: func(ctx context.Context) error {
				var err error
				translation, err = s.translator.Translate(ctx, entities.SourceLanguageCode, lang.Code, phrase)
				if err != nil {
					return fmt.Errorf("%w: %s", domain.ErrTranslation, err)
				}
				return nil
			},
		},
		{
			Name: "persist",
			Run: func(ctx context.Context) error {
				record = entities.NewTranslationRecord(userID, lang.Name, phrase, translation.Text)
				if err := s.history.Append(ctx, record); err != nil {
					return fmt.Errorf("%w: %s", domain.ErrPersistence, err)
				}
				return nil
			},
		},
		{
			Name: "synthesize",
			Run: func(ctx context.Context) error {
				var err error
				audio, err = s.synthesizer.Synthesize(ctx, translation.Text, repositories.VoiceConfig{Voice: lang.Voice})
				if err != nil {
					return fmt.Errorf("%w: %s", domain.ErrSynthesis, err)
				}
				return nil
			},
		},
		{
			Name: "store_audio",
			Run: func(ctx context.Context) error {
				// Artifacts are keyed by record id so concurrent turns
				// cannot overwrite each other's audio.
				key := fmt.Sprintf("translations/%s.mp3", record.ID)
				var err error
				audioURL, err = s.audioStore.Put(ctx, key, audio)
				if err != nil {
					return fmt.Errorf("%w: %s", domain.ErrAudioStorage, err)
				}
				return nil
			},
		},
	}

	if err := s.runner.Execute(ctx, "translation", steps); err != nil {
		return nil, err
	}

	s.logger.Info("Translation pipeline completed",
		zap.String("recordID", record.ID),
		zap.String("language", lang.Name))

	return &TranslationResult{Record: record, AudioURL: audioURL}, nil
}
