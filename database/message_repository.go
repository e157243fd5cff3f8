package database

import (
	"context"
	"fmt"
	"time"

	"swasthyaguide-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository persists the conversation log. It is write-only from the
// dialogue engine's point of view; the read helpers exist for admin tooling.
type MessageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{
		collection: db.Collection("messages"),
	}
}

// LogExchange stores one user-message/bot-response pair.
func (r *MessageRepository) LogExchange(ctx context.Context, record *models.MessageRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert message record: %w", err)
	}
	return nil
}

// RecentBySession returns the latest exchanges for one session, newest first.
func (r *MessageRepository) RecentBySession(ctx context.Context, sessionID string, limit int64) ([]models.MessageRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query message records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.MessageRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode message records: %w", err)
	}
	return records, nil
}

// CountSince returns how many exchanges were logged after the cutoff.
func (r *MessageRepository) CountSince(ctx context.Context, cutoff time.Time) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"timestamp": bson.M{"$gte": cutoff},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count message records: %w", err)
	}
	return count, nil
}
