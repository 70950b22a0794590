package skill

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/parlolabs/parlo/domain"
	"github.com/parlolabs/parlo/domain/entities"
	"github.com/parlolabs/parlo/usecase"
)

// Intent and slot names of the interaction model.
const (
	IntentTranslate = "TranslateIntent"
	IntentQuiz      = "QuizIntent"
	IntentFact      = "FactIntent"
	IntentHelp      = "AMAZON.HelpIntent"
	IntentStop      = "AMAZON.StopIntent"
	IntentCancel    = "AMAZON.CancelIntent"

	SlotPhrase   = "phrase"
	SlotLanguage = "language"
	SlotAnswer   = "answer"
)

// Fixed user-facing messages. The underlying cause is logged, never spoken.
const (
	msgWelcome      = "Welcome to Parlo. Ask me to translate a phrase, quiz you, or tell you a language fact."
	msgHelp         = "You can say: translate hello there into French, quiz me in Spanish, or tell me a fact about German."
	msgGoodbye      = "Goodbye."
	msgValidation   = "Sorry, I didn't understand that phrase or language. Please try again with English words and a supported language."
	msgTranslation  = "Sorry, the translation service is unavailable right now. Please try again later."
	msgPersistence  = "Sorry, I couldn't save your translation. Please try again later."
	msgSynthesis    = "Sorry, I couldn't pronounce that translation right now. Please try again later."
	msgAudioStorage = "Sorry, I couldn't prepare the audio for playback. Please try again later."
	msgNoHistory    = "You haven't asked me to translate anything into that language yet. Ask for a translation first, then I can quiz you."
	msgNoPending    = "I haven't asked you a question yet. Say quiz me in a language to start."
	msgUnknown      = "Sorry, something went wrong. Please try again."
)

// errorMessage maps a handler error to its fixed spoken message.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoPendingQuestion):
		return msgNoPending
	case errors.Is(err, domain.ErrNoHistory):
		return msgNoHistory
	case errors.Is(err, domain.ErrValidation):
		return msgValidation
	case errors.Is(err, domain.ErrTranslation):
		return msgTranslation
	case errors.Is(err, domain.ErrPersistence):
		return msgPersistence
	case errors.Is(err, domain.ErrSynthesis):
		return msgSynthesis
	case errors.Is(err, domain.ErrAudioStorage):
		return msgAudioStorage
	default:
		return msgUnknown
	}
}

// Handlers binds the use cases to the interaction model.
type Handlers struct {
	translation *usecase.TranslationService
	quiz        *usecase.QuizService
	facts       *usecase.FactService
	logger      *zap.Logger
}

// NewHandlers creates the intent handlers.
func NewHandlers(
	translation *usecase.TranslationService,
	quiz *usecase.QuizService,
	facts *usecase.FactService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		translation: translation,
		quiz:        quiz,
		facts:       facts,
		logger:      logger,
	}
}

// Register wires every intent into the router.
func (h *Handlers) Register(r *Router) {
	r.HandleLaunch(h.Launch)
	r.HandleIntent(IntentTranslate, h.Translate)
	r.HandleIntent(IntentQuiz, h.Quiz)
	r.HandleIntent(IntentFact, h.Fact)
	r.HandleIntent(IntentHelp, h.Help)
	r.HandleIntent(IntentStop, h.Stop)
	r.HandleIntent(IntentCancel, h.Stop)
}

// Launch greets the user and keeps the session open.
func (h *Handlers) Launch(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	return Prompt(msgWelcome, msgHelp), nil
}

// Help speaks usage examples and keeps the session open.
func (h *Handlers) Help(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	return Prompt(msgHelp, msgHelp), nil
}

// Stop ends the session.
func (h *Handlers) Stop(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	return Speak(msgGoodbye), nil
}

// Translate runs the translation pipeline and responds with playable audio.
func (h *Handlers) Translate(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	phrase := req.SlotValue(SlotPhrase)
	language := req.SlotValue(SlotLanguage)

	result, err := h.translation.Translate(ctx, req.Session.User.UserID, phrase, language)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("In %s, %s is: %s %s",
		result.Record.Language,
		result.Record.SourcePhrase,
		result.Record.TranslatedPhrase,
		AudioTag(result.AudioURL))
	return Speak(text), nil
}

// Quiz handles both phases of the quiz flow, keyed by the answer slot.
func (h *Handlers) Quiz(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	if answer := req.SlotValue(SlotAnswer); answer != "" {
		return h.quizAnswer(req, answer)
	}
	return h.quizAsk(ctx, req)
}

func (h *Handlers) quizAsk(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	language := req.SlotValue(SlotLanguage)

	question, err := h.quiz.Ask(ctx, req.Session.User.UserID, language)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("What does this mean? %s", AudioTag(question.AudioURL))
	attrs := map[string]interface{}{attrPendingQuestion: question.Pending}
	return Elicit(text, SlotAnswer, attrs), nil
}

func (h *Handlers) quizAnswer(req *RequestEnvelope, answer string) (*ResponseEnvelope, error) {
	var pending *entities.PendingQuestion
	var decoded entities.PendingQuestion
	ok, err := decodeAttribute(req.Session.Attributes, attrPendingQuestion, &decoded)
	if err != nil {
		h.logger.Warn("Corrupt pending question attribute", zap.Error(err))
	}
	if ok && err == nil {
		pending = &decoded
	}

	// The pending state is consumed by this turn regardless of outcome:
	// the response carries no session attributes.
	result, err := h.quiz.Answer(pending, answer)
	if err != nil {
		return nil, err
	}

	if result.Correct {
		return Speak("Correct! Well done."), nil
	}
	return Speak(fmt.Sprintf("Incorrect. The right answer was: %s", result.Expected)), nil
}

// Fact speaks a random fact about the requested language.
func (h *Handlers) Fact(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	fact, err := h.facts.Fact(req.SlotValue(SlotLanguage))
	if err != nil {
		return nil, err
	}
	return Speak(fact), nil
}
