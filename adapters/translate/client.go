// Package translate implements the Translator interface against an HTTP
// machine-translation API (LibreTranslate-compatible request shape).
package translate

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
	defaultBaseURL = "http://localhost:5000"
	defaultTimeout = 30 * time.Second
)

// Config holds configuration for the translation client.
// Required fields:
// - BaseURL: base URL of the translation API
// Optional fields with defaults:
// - APIKey: API key sent with each request, if the deployment requires one
// - Timeout: HTTP timeout (default: 30s)
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewConfigFromEnv creates a Config from environment variables.
func NewConfigFromEnv() Config {
	cfg := Config{
		BaseURL: os.Getenv("TRANSLATE_API_URL"),
		APIKey:  os.Getenv("TRANSLATE_API_KEY"),
	}
	if timeoutStr := os.Getenv("TRANSLATE_TIMEOUT"); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil && timeout > 0 {
			cfg.Timeout = timeout
		}
	}
	return cfg
}

// Client calls the translation API over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// Ensure Client implements the Translator interface
var _ repositories.Translator = (*Client)(nil)

// NewClient creates a translation client, applying defaults for unset
// optional configuration.
func NewClient(config Config, logger *zap.Logger) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
		logger.Info("Using default translation API base URL", zap.String("baseURL", baseURL))
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// translateRequest is the API request payload.
type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

// translateResponse is the API response payload. Target is echoed back by
// the service; older deployments omit it.
type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Target         string `json:"target,omitempty"`
}

// Translate translates text between the given ISO 639-1 codes.
func (c *Client) Translate(ctx context.Context, sourceCode, targetCode, text string) (*repositories.Translation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	c.logger.Debug("Requesting translation",
		zap.String("source", sourceCode),
		zap.String("target", targetCode),
		zap.Int("textLength", len(text)))

	payload := translateRequest{
		Q:      text,
		Source: sourceCode,
		Target: targetCode,
		Format: "text",
		APIKey: c.apiKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/translate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Translation API returned error",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("response", string(errorBody)))
		return nil, fmt.Errorf("translation API returned status %d", resp.StatusCode)
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	resolved := result.Target
	if resolved == "" {
		resolved = targetCode
	}

	c.logger.Debug("Translation completed",
		zap.String("target", resolved),
		zap.Int("translatedLength", len(result.TranslatedText)))

	return &repositories.Translation{
		Text:       result.TranslatedText,
		TargetCode: resolved,
	}, nil
}
