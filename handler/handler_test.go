package handler

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sangam0207/SpeakDo-Task-Tracker/data"
	"github.com/sangam0207/SpeakDo-Task-Tracker/data/repository"
	"github.com/sangam0207/SpeakDo-Task-Tracker/extraction"
	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
	"github.com/sangam0207/SpeakDo-Task-Tracker/service"
)

// memoryTaskRepository is an in-memory stand-in for the MongoDB task
// repository, matching its patch and filter semantics.
type memoryTaskRepository struct {
	tasks map[string]*repository.Task
	seq   int
}

func newMemoryTaskRepository() *memoryTaskRepository {
	return &memoryTaskRepository{tasks: make(map[string]*repository.Task)}
}

func (r *memoryTaskRepository) tick() time.Time {
	r.seq++
	return time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Second)
}

func (r *memoryTaskRepository) Create(_ context.Context, task *repository.Task) (*repository.Task, error) {
	now := r.tick()
	task.ID = primitive.NewObjectID()
	task.CreatedAt = now
	task.UpdatedAt = now
	stored := *task
	r.tasks[task.ID.Hex()] = &stored
	return task, nil
}

func (r *memoryTaskRepository) FindByID(_ context.Context, id string) (*repository.Task, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrTaskNotFound
	}
	task, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	found := *task
	return &found, nil
}

func (r *memoryTaskRepository) List(_ context.Context, filter *repository.ListFilter) ([]*repository.Task, error) {
	var tasks []*repository.Task
	for _, task := range r.tasks {
		if filter != nil {
			if filter.Status != "" && task.Status != filter.Status {
				continue
			}
			if filter.Priority != "" && task.Priority != filter.Priority {
				continue
			}
			if filter.Search != "" {
				needle := strings.ToLower(filter.Search)
				if !strings.Contains(strings.ToLower(task.Title), needle) &&
					!strings.Contains(strings.ToLower(task.Description), needle) {
					continue
				}
			}
		}
		found := *task
		tasks = append(tasks, &found)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *memoryTaskRepository) Update(_ context.Context, id string, patch *repository.TaskPatch) (*repository.Task, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrTaskNotFound
	}
	if patch == nil || patch.IsZero() {
		return nil, repository.ErrEmptyPatch
	}
	task, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDateSet {
		task.DueDate = patch.DueDate
	}
	task.UpdatedAt = r.tick()
	updated := *task
	return &updated, nil
}

func (r *memoryTaskRepository) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrTaskNotFound
	}
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

type stubGenerator struct {
	output string
	err    error
}

func (g *stubGenerator) Generate(context.Context, string, string) (string, error) {
	return g.output, g.err
}

// newTestRouter builds a gin engine with all routes registered, backed by
// the in-memory repository and the given extraction stub.
func newTestRouter(gen extraction.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.StdLogger()

	d := &data.Data{TaskRepo: newMemoryTaskRepository()}
	svc := &service.Service{
		Task:       service.NewTaskService(d, log),
		Extraction: service.NewExtractionService(extraction.NewClient(gen), 5*time.Second, log),
	}

	r := gin.New()
	NewHandler(svc, log).RegisterRoutes(r)
	return r
}
