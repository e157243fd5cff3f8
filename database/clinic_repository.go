package database

import (
	"context"
	"fmt"
	"time"

	"swasthyaguide-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClinicRepository mirrors the embedded clinic dataset into MongoDB so that
// external tools can query it. The live lookup path reads only the in-memory
// index, never this collection.
type ClinicRepository struct {
	collection *mongo.Collection
}

func NewClinicRepository(db *mongo.Database) *ClinicRepository {
	return &ClinicRepository{
		collection: db.Collection("clinics"),
	}
}

// InsertMany stores a batch of clinics.
func (r *ClinicRepository) InsertMany(ctx context.Context, clinics []models.Clinic) error {
	if len(clinics) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(clinics))
	now := time.Now()
	for _, clinic := range clinics {
		if clinic.CreatedAt.IsZero() {
			clinic.CreatedAt = now
		}
		clinic.UpdatedAt = now
		docs = append(docs, clinic)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert clinics: %w", err)
	}
	return nil
}

// Count returns the number of stored clinics.
func (r *ClinicRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count clinics: %w", err)
	}
	return count, nil
}

// DeleteAll clears the collection before a fresh load.
func (r *ClinicRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete clinics: %w", err)
	}
	return result.DeletedCount, nil
}
