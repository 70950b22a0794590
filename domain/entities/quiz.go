package entities

// PendingQuestion is the quiz question currently awaiting an answer within
// one conversation session. It travels in the session attributes of the
// voice-platform envelope, so exactly one may exist per session; it is
// consumed and cleared on the answering turn and lost if the session ends
// first.
type PendingQuestion struct {
	RecordID         string `json:"record_id"`
	Language         string `json:"language"`
	SourcePhrase     string `json:"source_phrase"`
	TranslatedPhrase string `json:"translated_phrase"`
}

// PendingFromRecord captures the fields of a record needed to pose and later check
// a quiz question.
func PendingFromRecord(r *TranslationRecord) *PendingQuestion {
	return &PendingQuestion{
		RecordID:         r.ID,
		Language:         r.Language,
		SourcePhrase:     r.SourcePhrase,
		TranslatedPhrase: r.TranslatedPhrase,
	}
}
