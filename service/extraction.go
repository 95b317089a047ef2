package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sangam0207/SpeakDo-Task-Tracker/extraction"
	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
)

// ExtractionService routes transcripts to the extraction client, applying
// the call timeout and classifying failures. It never retries; a degraded
// fallback from the raw transcript is the caller's decision.
type ExtractionService struct {
	client  *extraction.Client
	timeout time.Duration
	logger  *logger.Logger
}

// NewExtractionService creates a new extraction service.
func NewExtractionService(client *extraction.Client, timeout time.Duration, log *logger.Logger) *ExtractionService {
	return &ExtractionService{
		client:  client,
		timeout: timeout,
		logger:  log,
	}
}

// ParseTranscript extracts task fields from a transcript. An empty or
// whitespace-only transcript is an input-validation error, not an
// extraction error.
func (s *ExtractionService) ParseTranscript(ctx context.Context, text string) (*extraction.Fields, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewInvalidInput("text", "text input is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	fields, err := s.client.Extract(ctx, text)
	if err != nil {
		if errors.Is(err, extraction.ErrMalformedExtraction) {
			s.logger.Warn(ctx, "model returned unparsable output", "error", err)
			return nil, NewMalformedExtraction("model returned invalid JSON")
		}
		s.logger.Error(ctx, "extraction upstream failed", "error", err)
		return nil, NewUpstreamUnavailable("failed to parse transcript")
	}

	return fields, nil
}
