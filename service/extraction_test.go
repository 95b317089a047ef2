package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangam0207/SpeakDo-Task-Tracker/extraction"
	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
)

type stubGenerator struct {
	output string
	err    error
}

func (g *stubGenerator) Generate(context.Context, string, string) (string, error) {
	return g.output, g.err
}

func newTestExtractionService(gen extraction.Generator) *ExtractionService {
	client := extraction.NewClient(gen)
	return NewExtractionService(client, 5*time.Second, logger.StdLogger())
}

func TestParseTranscript(t *testing.T) {
	s := newTestExtractionService(&stubGenerator{
		output: `{"title":"call mom","description":"","priority":"high","status":"todo","dueDate":""}`,
	})

	fields, err := s.ParseTranscript(context.Background(), "remind me to call mom, it's urgent")
	if err != nil {
		t.Fatalf("ParseTranscript: %v", err)
	}
	if fields.Title != "call mom" || fields.Priority != "high" || fields.Status != "todo" {
		t.Fatalf("unexpected fields %+v", fields)
	}
}

func TestParseTranscriptEmptyText(t *testing.T) {
	s := newTestExtractionService(&stubGenerator{output: "{}"})

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := s.ParseTranscript(context.Background(), text); KindOf(err) != KindInvalidInput {
			t.Errorf("text %q: expected invalid input, got %v", text, err)
		}
	}
}

func TestParseTranscriptMalformedOutput(t *testing.T) {
	s := newTestExtractionService(&stubGenerator{output: "sure, here's your task:"})

	if _, err := s.ParseTranscript(context.Background(), "buy milk"); KindOf(err) != KindMalformedExtraction {
		t.Fatalf("expected malformed extraction, got %v", err)
	}
}

func TestParseTranscriptUpstreamFailure(t *testing.T) {
	s := newTestExtractionService(&stubGenerator{err: errors.New("connection refused")})

	if _, err := s.ParseTranscript(context.Background(), "buy milk"); KindOf(err) != KindUpstreamUnavailable {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
}
