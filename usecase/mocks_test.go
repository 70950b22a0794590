package usecase

import (
	"context"
	"errors"

	"github.com/parlolabs/parlo/domain/entities"
	"github.com/parlolabs/parlo/domain/repositories"
)

// fakeTranslator returns a canned translation and records calls.
type fakeTranslator struct {
	translation *repositories.Translation
	err         error
	calls       int
	lastSource  string
	lastTarget  string
	lastText    string
}

func (f *fakeTranslator) Translate(ctx context.Context, sourceCode, targetCode, text string) (*repositories.Translation, error) {
	f.calls++
	f.lastSource = sourceCode
	f.lastTarget = targetCode
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.translation, nil
}

// fakeHistory keeps records in memory.
type fakeHistory struct {
	records   []*entities.TranslationRecord
	appendErr error
	findErr   error
	appends   int
	queries   int
}

func (f *fakeHistory) Append(ctx context.Context, record *entities.TranslationRecord) error {
	f.appends++
	if f.appendErr != nil {
		return f.appendErr
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeHistory) FindByLanguageAndUser(ctx context.Context, language, userID string) ([]*entities.TranslationRecord, error) {
	f.queries++
	if f.findErr != nil {
		return nil, f.findErr
	}
	matches := make([]*entities.TranslationRecord, 0)
	for _, r := range f.records {
		if r.Language == language && r.UserID == userID {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// fakeSynthesizer returns canned audio and records the requested voice.
type fakeSynthesizer struct {
	audio     []byte
	err       error
	calls     int
	lastText  string
	lastVoice string
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text string, config repositories.VoiceConfig) ([]byte, error) {
	f.calls++
	f.lastText = text
	f.lastVoice = config.Voice
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

// fakeAudioStore returns a URL derived from the key.
type fakeAudioStore struct {
	err     error
	calls   int
	lastKey string
}

func (f *fakeAudioStore) Put(ctx context.Context, key string, audio []byte) (string, error) {
	f.calls++
	f.lastKey = key
	if f.err != nil {
		return "", f.err
	}
	return "https://audio.test/" + key, nil
}

var errUpstream = errors.New("upstream unavailable")
