// Package mongo implements the translation-history store on MongoDB.
package mongo

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	defaultURI      = "mongodb://localhost:27017"
	defaultDatabase = "parlo"

	connectTimeout = 10 * time.Second
	maxPoolSize    = 10
	minPoolSize    = 1
	maxConnIdle    = 30 * time.Minute
	selectTimeout  = 5 * time.Second
)

// Config holds configuration for the MongoDB connection.
// Required fields:
// - URI: connection string
// - Database: database name holding the translation history
type Config struct {
	URI      string
	Database string
}

// ValidateConfig validates the MongoDB configuration.
func ValidateConfig(config Config) error {
	if config.URI == "" {
		return fmt.Errorf("MongoDB URI is required")
	}
	if config.Database == "" {
		return fmt.Errorf("MongoDB database name is required")
	}
	return nil
}

// NewConfigFromEnv creates a Config from environment variables, applying
// defaults for unset values.
func NewConfigFromEnv() Config {
	cfg := Config{
		URI:      os.Getenv("MONGODB_URI"),
		Database: os.Getenv("MONGODB_DATABASE"),
	}
	if cfg.URI == "" {
		cfg.URI = defaultURI
	}
	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}
	return cfg
}

// Client wraps the MongoDB client and the database holding translation
// history.
type Client struct {
	*mongo.Client
	Database *mongo.Database
	logger   *zap.Logger
}

// NewClient connects to MongoDB and verifies the connection with a ping.
func NewClient(config Config, logger *zap.Logger) (*Client, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	opts := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetMaxConnIdleTime(maxConnIdle).
		SetServerSelectionTimeout(selectTimeout).
		SetConnectTimeout(connectTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("database", config.Database))

	return &Client{
		Client:   client,
		Database: client.Database(config.Database),
		logger:   logger,
	}, nil
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		c.logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		return err
	}
	c.logger.Info("Disconnected from MongoDB")
	return nil
}
