package repositories

import "context"

// Translation is the result of one machine-translation call.
type Translation struct {
	// Text is the translated phrase.
	Text string
	// TargetCode is the target language code resolved by the service,
	// normally identical to the requested code.
	TargetCode string
}

// Translator abstracts the machine-translation service.
type Translator interface {
	// Translate translates text between the given ISO 639-1 language codes.
	Translate(ctx context.Context, sourceCode, targetCode, text string) (*Translation, error)
}
