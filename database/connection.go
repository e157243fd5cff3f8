package database

import (
	"context"
	"time"

	"swasthyaguide-backend/config"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect establishes the database connection. The database is optional: it
// only backs the write-only conversation log and the clinic loader, so the
// caller may treat a failure as a warning and run in-memory.
func Connect(cfg *config.Config) error {
	return ConnectMongoDB(cfg)
}

// Disconnect closes database connection
func Disconnect() error {
	return DisconnectMongoDB()
}

// HealthCheck performs a database health check
func HealthCheck() error {
	client := GetMongoClient()
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}
