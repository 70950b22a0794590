// Package tts implements the SpeechSynthesizer interface against an HTTP
// text-to-speech API. The voice is selected per request from the language
// catalog rather than fixed at construction time.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/parlolabs/parlo/domain/repositories"
)

const (
	defaultAPIBaseURL   = "https://api.speech.example.com/v1"
	defaultOutputFormat = "mp3"
	defaultTimeout      = 60 * time.Second
)

// Config holds configuration for the synthesis client.
// Required fields:
// - APIKey: API key for the speech service
// Optional fields with defaults:
// - APIBaseURL: base URL for the speech API
// - OutputFormat: audio output format (default: "mp3")
// - Timeout: HTTP timeout (default: 60s)
type Config struct {
	APIKey       string
	APIBaseURL   string
	OutputFormat string
	Timeout      time.Duration
}

// ValidateConfig validates the synthesis client configuration.
func ValidateConfig(config Config) error {
	if config.APIKey == "" {
		return fmt.Errorf("speech API key is required")
	}
	if config.Timeout < 0 {
		return fmt.Errorf("timeout must be positive, got %v", config.Timeout)
	}
	return nil
}

// NewConfigFromEnv creates a Config from environment variables.
func NewConfigFromEnv() Config {
	cfg := Config{
		APIKey:       os.Getenv("SPEECH_API_KEY"),
		APIBaseURL:   os.Getenv("SPEECH_API_BASE_URL"),
		OutputFormat: os.Getenv("SPEECH_OUTPUT_FORMAT"),
	}
	if timeoutStr := os.Getenv("SPEECH_TIMEOUT"); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil && timeout > 0 {
			cfg.Timeout = timeout
		}
	}
	return cfg
}

// Client calls the speech-synthesis API over HTTP.
type Client struct {
	apiKey       string
	apiBaseURL   string
	outputFormat string
	httpClient   *http.Client
	logger       *zap.Logger
}

// Ensure Client implements the SpeechSynthesizer interface
var _ repositories.SpeechSynthesizer = (*Client)(nil)

// NewClient creates a synthesis client, applying defaults for unset
// optional configuration.
func NewClient(config Config, logger *zap.Logger) (*Client, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	apiBaseURL := config.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
		logger.Info("Using default speech API base URL", zap.String("apiBaseURL", apiBaseURL))
	}

	outputFormat := config.OutputFormat
	if outputFormat == "" {
		outputFormat = defaultOutputFormat
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:       config.APIKey,
		apiBaseURL:   strings.TrimRight(apiBaseURL, "/"),
		outputFormat: outputFormat,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       logger,
	}, nil
}

// synthesisRequest is the API request payload.
type synthesisRequest struct {
	Text         string `json:"text"`
	OutputFormat string `json:"output_format"`
}

// Synthesize converts text to an audio byte stream using the given voice.
func (c *Client) Synthesize(ctx context.Context, text string, config repositories.VoiceConfig) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if config.Voice == "" {
		return nil, fmt.Errorf("voice is required")
	}

	outputFormat := config.OutputFormat
	if outputFormat == "" {
		outputFormat = c.outputFormat
	}

	c.logger.Info("Synthesizing speech",
		zap.String("voice", config.Voice),
		zap.String("outputFormat", outputFormat),
		zap.Int("textLength", len(text)))

	body, err := json.Marshal(synthesisRequest{
		Text:         text,
		OutputFormat: outputFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.apiBaseURL, config.Voice)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Speech API returned error",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("response", string(errorBody)))
		return nil, fmt.Errorf("speech API returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("speech API returned empty audio")
	}

	c.logger.Info("Synthesis completed",
		zap.String("voice", config.Voice),
		zap.Int("audioBytes", len(audio)))

	return audio, nil
}
