package domain

import "errors"

// Sentinel errors for the translation pipeline and quiz flow. Every
// external-call failure is wrapped with exactly one of these so the skill
// layer can map it to a fixed spoken message.
var (
	// ErrValidation covers rejected phrases, unknown languages, and
	// requests to translate into the source language.
	ErrValidation = errors.New("validation failed")

	// ErrTranslation covers failures from the machine-translation service.
	ErrTranslation = errors.New("translation service failed")

	// ErrPersistence covers failures writing a translation record.
	ErrPersistence = errors.New("history store failed")

	// ErrSynthesis covers failures from the speech-synthesis service.
	ErrSynthesis = errors.New("speech synthesis failed")

	// ErrAudioStorage covers failures uploading synthesized audio.
	ErrAudioStorage = errors.New("audio storage failed")

	// ErrNoHistory is returned when a quiz is requested for a
	// (language, user) pair with no stored translations.
	ErrNoHistory = errors.New("no translation history")

	// ErrNoPendingQuestion is returned when an answer arrives but no quiz
	// question is outstanding for the session.
	ErrNoPendingQuestion = errors.New("no pending quiz question")
)
