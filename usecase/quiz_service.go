package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/parlolabs/parlo/domain"
	"github.com/parlolabs/parlo/domain/entities"
	"github.com/parlolabs/parlo/domain/repositories"
	"github.com/parlolabs/parlo/internal/pipeline"
)

// QuizQuestion is a posed quiz question: the pending state to stash in the
// session and the audio the user should hear.
type QuizQuestion struct {
	Pending  *entities.PendingQuestion
	AudioURL string
}

// QuizResult is the verdict for an answered question.
type QuizResult struct {
	Correct bool
	// Expected is the original source phrase, for inclusion in the
	// "incorrect" response.
	Expected string
}

// QuizService poses questions sampled from a user's translation history and
// checks submitted answers.
type QuizService struct {
	translation *TranslationService
	history     repositories.HistoryRepository
	synthesizer repositories.SpeechSynthesizer
	audioStore  repositories.AudioStore
	runner      *pipeline.Runner
	logger      *zap.Logger

	// pickIndex selects a uniform random index in [0, n). Overridable in
	// tests.
	pickIndex func(n int) int
}

// NewQuizService creates a quiz service.
func NewQuizService(
	translation *TranslationService,
	history repositories.HistoryRepository,
	synthesizer repositories.SpeechSynthesizer,
	audioStore repositories.AudioStore,
	runner *pipeline.Runner,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		translation: translation,
		history:     history,
		synthesizer: synthesizer,
		audioStore:  audioStore,
		runner:      runner,
		logger:      logger,
		pickIndex:   rand.Intn,
	}
}

// Ask poses a new quiz question for the given user and language: it samples
// one record from the user's history, synthesizes its translation, uploads
// the audio, and returns the pending state the session must carry until the
// answer arrives.
func (s *QuizService) Ask(ctx context.Context, userID, languageName string) (*QuizQuestion, error) {
	var (
		lang     entities.Language
		record   *entities.TranslationRecord
		audio    []byte
		audioURL string
	)

	steps := []pipeline.Step{
		{
			Name: "validate",
			Run: func(ctx context.Context) error {
				var err error
				lang, err = s.translation.ValidateLanguage(languageName)
				return err
			},
		},
		{
			Name: "sample_history",
			Run: func(ctx context.Context) error {
				records, err := s.history.FindByLanguageAndUser(ctx, lang.Name, userID)
				if err != nil {
					return fmt.Errorf("%w: %s", domain.ErrPersistence, err)
				}
				if len(records) == 0 {
					return fmt.Errorf("%w: no %s translations for user", domain.ErrNoHistory, lang.Name)
				}
				record = records[s.pickIndex(len(records))]
				return nil
			},
		},
		{
			Name: "synthesize",
			Run: func(ctx context.Context) error {
				var err error
				audio, err = s.synthesizer.Synthesize(ctx, record.TranslatedPhrase, repositories.VoiceConfig{Voice: lang.Voice})
				if err != nil {
					return fmt.Errorf("%w: %s", domain.ErrSynthesis, err)
				}
				return nil
			},
		},
		{
			Name: "store_audio",
			Run: func(ctx context.Context) error {
				key := fmt.Sprintf("quiz/%s.mp3", record.ID)
				var err error
				audioURL, err = s.audioStore.Put(ctx, key, audio)
				if err != nil {
					return fmt.Errorf("%w: %s", domain.ErrAudioStorage, err)
				}
				return nil
			},
		},
	}

	if err := s.runner.Execute(ctx, "quiz", steps); err != nil {
		return nil, err
	}

	s.logger.Info("Quiz question posed",
		zap.String("recordID", record.ID),
		zap.String("language", lang.Name))

	return &QuizQuestion{
		Pending:  entities.PendingFromRecord(record),
		AudioURL: audioURL,
	}, nil
}

// Answer checks a submitted answer against the pending question. The answer
// must match the recorded source phrase exactly. A nil pending question is
// an error: no question is outstanding for this session.
func (s *QuizService) Answer(pending *entities.PendingQuestion, answer string) (*QuizResult, error) {
	if pending == nil {
		return nil, domain.ErrNoPendingQuestion
	}

	correct := answer == pending.SourcePhrase
	s.logger.Info("Quiz answer checked",
		zap.String("recordID", pending.RecordID),
		zap.Bool("correct", correct))

	return &QuizResult{
		Correct:  correct,
		Expected: pending.SourcePhrase,
	}, nil
}
