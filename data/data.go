// Package data manages the MongoDB connection for the task store.
package data

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sangam0207/SpeakDo-Task-Tracker/config"
	"github.com/sangam0207/SpeakDo-Task-Tracker/data/repository"
	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
)

// Data encapsulates all data layer dependencies.
type Data struct {
	client   *mongo.Client
	db       *mongo.Database
	TaskRepo repository.TaskRepository
}

// New creates a new Data instance with a MongoDB connection.
func New(cfg *config.MongoDB, log *logger.Logger) (*Data, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info(ctx, "Connected to MongoDB", "database", cfg.Database)

	db := client.Database(cfg.Database)

	return &Data{
		client:   client,
		db:       db,
		TaskRepo: repository.NewTaskRepository(db, log),
	}, nil
}

// Close closes the MongoDB connection.
func (d *Data) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

// DB returns the MongoDB database instance.
func (d *Data) DB() *mongo.Database {
	return d.db
}
