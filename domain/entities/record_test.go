package entities

import "testing"

func TestNewTranslationRecord(t *testing.T) {
	record := NewTranslationRecord("amzn1.ask.account.abc", "french", "Hello there", "Bonjour")

	if record.ID == "" {
		t.Error("expected a generated id")
	}
	if record.UserID != "amzn1.ask.account.abc" {
		t.Errorf("unexpected user id %q", record.UserID)
	}
	if record.Language != "french" {
		t.Errorf("unexpected language %q", record.Language)
	}
	if record.CreatedAt.IsZero() {
		t.Error("expected creation time to be set")
	}
	if err := record.Validate(); err != nil {
		t.Errorf("expected valid record, got %v", err)
	}
}

func TestTranslationRecordValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TranslationRecord)
	}{
		{"missing id", func(r *TranslationRecord) { r.ID = "" }},
		{"missing user", func(r *TranslationRecord) { r.UserID = "" }},
		{"missing language", func(r *TranslationRecord) { r.Language = "" }},
		{"missing source", func(r *TranslationRecord) { r.SourcePhrase = "" }},
		{"missing translation", func(r *TranslationRecord) { r.TranslatedPhrase = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := NewTranslationRecord("user", "french", "Hello", "Bonjour")
			tc.mutate(record)
			if err := record.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPendingFromRecord(t *testing.T) {
	record := NewTranslationRecord("user", "spanish", "Good morning", "Buenos dias")
	pending := PendingFromRecord(record)

	if pending.RecordID != record.ID {
		t.Errorf("expected record id %q, got %q", record.ID, pending.RecordID)
	}
	if pending.SourcePhrase != "Good morning" {
		t.Errorf("unexpected source phrase %q", pending.SourcePhrase)
	}
	if pending.TranslatedPhrase != "Buenos dias" {
		t.Errorf("unexpected translated phrase %q", pending.TranslatedPhrase)
	}
}
