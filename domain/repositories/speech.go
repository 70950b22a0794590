package repositories

import "context"

// VoiceConfig selects the voice for one synthesis call. The voice id is
// chosen per target language from the language catalog.
type VoiceConfig struct {
	Voice        string `json:"voice"`
	OutputFormat string `json:"output_format"`
}

// SpeechSynthesizer abstracts the text-to-speech service.
type SpeechSynthesizer interface {
	// Synthesize converts text to an audio byte stream using the given voice.
	Synthesize(ctx context.Context, text string, config VoiceConfig) ([]byte, error)
}
