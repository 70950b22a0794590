package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/parlolabs/parlo/domain/repositories"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	logger := zaptest.NewLogger(t)

	os.Unsetenv("SPEECH_API_KEY")
	if _, err := NewClient(NewConfigFromEnv(), logger); err == nil {
		t.Error("expected error when API key is not set")
	}

	os.Setenv("SPEECH_API_KEY", "test-api-key")
	defer os.Unsetenv("SPEECH_API_KEY")

	client, err := NewClient(NewConfigFromEnv(), logger)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if client.apiKey != "test-api-key" {
		t.Errorf("expected API key 'test-api-key', got %q", client.apiKey)
	}
	if client.outputFormat != defaultOutputFormat {
		t.Errorf("expected default output format %q, got %q", defaultOutputFormat, client.outputFormat)
	}
}

func TestClientSynthesize(t *testing.T) {
	logger := zaptest.NewLogger(t)
	audio := []byte("fake-mp3-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text-to-speech/Mathieu" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			t.Errorf("missing API key header")
		}
		var req synthesisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Text != "Bonjour" {
			t.Errorf("unexpected text %q", req.Text)
		}
		if req.OutputFormat != "mp3" {
			t.Errorf("unexpected output format %q", req.OutputFormat)
		}
		w.Write(audio)
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", APIBaseURL: server.URL}, logger)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	got, err := client.Synthesize(context.Background(), "Bonjour", repositories.VoiceConfig{Voice: "Mathieu"})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(got) != string(audio) {
		t.Errorf("unexpected audio bytes %q", got)
	}
}

func TestClientSynthesizeErrors(t *testing.T) {
	logger := zaptest.NewLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "voice not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", APIBaseURL: server.URL}, logger)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	ctx := context.Background()

	if _, err := client.Synthesize(ctx, "Bonjour", repositories.VoiceConfig{Voice: "Unknown"}); err == nil {
		t.Error("expected error on API failure")
	}
	if _, err := client.Synthesize(ctx, "  ", repositories.VoiceConfig{Voice: "Mathieu"}); err == nil {
		t.Error("expected error for empty text")
	}
	if _, err := client.Synthesize(ctx, "Bonjour", repositories.VoiceConfig{}); err == nil {
		t.Error("expected error for missing voice")
	}
}
