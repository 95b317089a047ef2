// Package service contains the business logic for tasks and extraction.
package service

import (
	"github.com/sangam0207/SpeakDo-Task-Tracker/config"
	"github.com/sangam0207/SpeakDo-Task-Tracker/data"
	"github.com/sangam0207/SpeakDo-Task-Tracker/extraction"
	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
)

// Service aggregates all business logic services.
type Service struct {
	Task       *TaskService
	Extraction *ExtractionService
}

// NewService creates a new service instance with all sub-services
// initialized. The extraction upstream is wrapped in a circuit breaker so
// an unhealthy model endpoint fails fast.
func NewService(cfg *config.Config, d *data.Data, log *logger.Logger) *Service {
	gen := extraction.NewBreakerGenerator(extraction.NewChatClient(cfg.AI))
	client := extraction.NewClient(gen)

	return &Service{
		Task:       NewTaskService(d, log),
		Extraction: NewExtractionService(client, cfg.AI.Timeout, log),
	}
}
