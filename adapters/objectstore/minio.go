// Package objectstore implements the AudioStore interface against any
// S3-compatible object store.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/parlolabs/parlo/domain/repositories"
)

const (
	defaultContentType   = "audio/mpeg"
	defaultPresignExpiry = 24 * time.Hour
)

// Config holds configuration for the audio store.
// Required fields:
// - Endpoint: object store endpoint host[:port]
// - AccessKey, SecretKey: credentials
// - Bucket: bucket receiving audio artifacts
// Optional fields:
// - UseSSL: connect over TLS
// - Region: bucket region (default: "us-east-1")
// - PublicBaseURL: base URL for playback links; when empty, presigned GET
//   URLs are issued instead
type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	Region        string
	PublicBaseURL string
}

// ValidateConfig validates the audio store configuration.
func ValidateConfig(config Config) error {
	if config.Endpoint == "" {
		return fmt.Errorf("object store endpoint is required")
	}
	if config.AccessKey == "" || config.SecretKey == "" {
		return fmt.Errorf("object store credentials are required")
	}
	if config.Bucket == "" {
		return fmt.Errorf("object store bucket is required")
	}
	return nil
}

// NewConfigFromEnv creates a Config from environment variables.
func NewConfigFromEnv() Config {
	return Config{
		Endpoint:      os.Getenv("AUDIO_STORE_ENDPOINT"),
		AccessKey:     os.Getenv("AUDIO_STORE_ACCESS_KEY"),
		SecretKey:     os.Getenv("AUDIO_STORE_SECRET_KEY"),
		Bucket:        os.Getenv("AUDIO_STORE_BUCKET"),
		UseSSL:        os.Getenv("AUDIO_STORE_USE_SSL") == "true",
		Region:        os.Getenv("AUDIO_STORE_REGION"),
		PublicBaseURL: os.Getenv("AUDIO_STORE_PUBLIC_URL"),
	}
}

// Store uploads audio artifacts to an S3-compatible bucket.
type Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

// Ensure Store implements the AudioStore interface
var _ repositories.AudioStore = (*Store)(nil)

// NewStore creates an audio store backed by an S3-compatible endpoint.
func NewStore(config Config, logger *zap.Logger) (*Store, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	region := config.Region
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	return &Store{
		client:        client,
		bucket:        config.Bucket,
		publicBaseURL: strings.TrimRight(config.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Put uploads audio bytes under the given key and returns a playback URL.
func (s *Store) Put(ctx context.Context, key string, audio []byte) (string, error) {
	if key == "" {
		return "", fmt.Errorf("object key is required")
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(audio), int64(len(audio)),
		minio.PutObjectOptions{ContentType: defaultContentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}

	s.logger.Info("Audio artifact stored",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(audio)))

	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key), nil
	}

	url, err := s.client.PresignedGetObject(ctx, s.bucket, key, defaultPresignExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign audio URL: %w", err)
	}
	return url.String(), nil
}
