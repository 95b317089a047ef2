// Package repository provides MongoDB-backed task persistence.
package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
)

var (
	// ErrTaskNotFound indicates the id resolved to no task, or was not a
	// structurally valid identifier.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyPatch indicates an update with no fields to apply.
	ErrEmptyPatch = errors.New("at least one field is required")
)

// Task represents a persisted task.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	Priority    string             `bson:"priority" json:"priority"`
	DueDate     *time.Time         `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ListFilter narrows List results. Zero-value fields are ignored; set
// fields combine with AND.
type ListFilter struct {
	Status   string
	Priority string
	Search   string // case-insensitive substring over title OR description
}

// TaskPatch is an explicit partial update: nil pointer means "leave
// untouched". DueDateSet distinguishes "clear the due date" (set, nil
// value) from "don't touch it" (unset).
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	DueDateSet  bool
}

// IsZero reports whether the patch carries no fields.
func (p *TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && !p.DueDateSet
}

// TaskRepository defines task data operations.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) (*Task, error)
	FindByID(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, filter *ListFilter) ([]*Task, error)
	Update(ctx context.Context, id string, patch *TaskPatch) (*Task, error)
	Delete(ctx context.Context, id string) error
}

type taskRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(db *mongo.Database, log *logger.Logger) TaskRepository {
	collection := db.Collection("tasks")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Warn(ctx, "failed to create index on created_at", "error", err)
	}

	return &taskRepository{
		collection: collection,
		logger:     log,
	}
}

// Create persists a new task, assigning id and timestamps.
func (r *taskRepository) Create(ctx context.Context, task *Task) (*Task, error) {
	now := time.Now().UTC()
	task.ID = primitive.NewObjectID()
	task.CreatedAt = now
	task.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		r.logger.Error(ctx, "failed to create task", "error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	r.logger.Info(ctx, "task created", "id", task.ID.Hex())
	return task, nil
}

// FindByID retrieves a task by id.
func (r *taskRepository) FindByID(ctx context.Context, id string) (*Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	var task Task
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		r.logger.Error(ctx, "failed to find task", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return &task, nil
}

// List retrieves tasks matching the filter, most recently created first.
func (r *taskRepository) List(ctx context.Context, filter *ListFilter) ([]*Task, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.Priority != "" {
			query["priority"] = filter.Priority
		}
		if filter.Search != "" {
			pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
			query["$or"] = bson.A{
				bson.M{"title": pattern},
				bson.M{"description": pattern},
			}
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		r.logger.Error(ctx, "failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []*Task
	if err := cursor.All(ctx, &tasks); err != nil {
		r.logger.Error(ctx, "failed to decode tasks", "error", err)
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	return tasks, nil
}

// Update applies a partial patch in a single atomic find-and-modify, so
// concurrent updates to the same task never interleave partial writes.
func (r *taskRepository) Update(ctx context.Context, id string, patch *TaskPatch) (*Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	if patch == nil || patch.IsZero() {
		return nil, ErrEmptyPatch
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	unset := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.DueDateSet {
		if patch.DueDate != nil {
			set["due_date"] = *patch.DueDate
		} else {
			unset["due_date"] = ""
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		r.logger.Error(ctx, "failed to update task", "id", id, "error", result.Err())
		return nil, fmt.Errorf("failed to update task: %w", result.Err())
	}

	var updated Task
	if err := result.Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to decode updated task: %w", err)
	}

	r.logger.Info(ctx, "task updated", "id", id)
	return &updated, nil
}

// Delete permanently removes a task by id.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrTaskNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		r.logger.Error(ctx, "failed to delete task", "id", id, "error", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}

	r.logger.Info(ctx, "task deleted", "id", id)
	return nil
}
