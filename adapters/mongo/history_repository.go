package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parlolabs/parlo/domain/entities"
	"github.com/parlolabs/parlo/domain/repositories"
)

// HistoryRepository stores translation records in MongoDB.
type HistoryRepository struct {
	collection *mongo.Collection
}

// NewHistoryRepository creates a MongoDB-backed history repository.
func NewHistoryRepository(db *mongo.Database) repositories.HistoryRepository {
	return &HistoryRepository{
		collection: db.Collection("translations"),
	}
}

// Append implements repositories.HistoryRepository
func (r *HistoryRepository) Append(ctx context.Context, record *entities.TranslationRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to append translation record: %w", err)
	}
	return nil
}

// FindByLanguageAndUser implements repositories.HistoryRepository
func (r *HistoryRepository) FindByLanguageAndUser(ctx context.Context, language, userID string) ([]*entities.TranslationRecord, error) {
	if language == "" {
		return nil, errors.New("language cannot be empty")
	}
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	filter := bson.M{"language": language, "user_id": userID}
	opts := options.Find().SetSort(bson.M{"created_at": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query translation history: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]*entities.TranslationRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode translation history: %w", err)
	}
	return records, nil
}
