package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestClientTranslate(t *testing.T) {
	logger := zaptest.NewLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Q != "Hello there" || req.Source != "en" || req.Target != "fr" {
			t.Errorf("unexpected request payload: %+v", req)
		}
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "Bonjour", Target: "fr"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, logger)

	result, err := client.Translate(context.Background(), "en", "fr", "Hello there")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Text != "Bonjour" {
		t.Errorf("expected Bonjour, got %q", result.Text)
	}
	if result.TargetCode != "fr" {
		t.Errorf("expected target fr, got %q", result.TargetCode)
	}
}

func TestClientTranslateDefaultsResolvedTarget(t *testing.T) {
	logger := zaptest.NewLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Older deployments do not echo the target code.
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "Hola"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, logger)

	result, err := client.Translate(context.Background(), "en", "es", "Hello")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.TargetCode != "es" {
		t.Errorf("expected requested code es, got %q", result.TargetCode)
	}
}

func TestClientTranslateServerError(t *testing.T) {
	logger := zaptest.NewLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, logger)

	if _, err := client.Translate(context.Background(), "en", "fr", "Hello"); err == nil {
		t.Error("expected error on server failure")
	}
}

func TestClientTranslateEmptyText(t *testing.T) {
	logger := zaptest.NewLogger(t)
	client := NewClient(Config{BaseURL: "http://localhost:1"}, logger)

	if _, err := client.Translate(context.Background(), "en", "fr", "   "); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	os.Setenv("TRANSLATE_API_URL", "http://translate.test")
	os.Setenv("TRANSLATE_TIMEOUT", "5s")
	defer os.Unsetenv("TRANSLATE_API_URL")
	defer os.Unsetenv("TRANSLATE_TIMEOUT")

	cfg := NewConfigFromEnv()
	if cfg.BaseURL != "http://translate.test" {
		t.Errorf("unexpected base URL %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Timeout)
	}
}
