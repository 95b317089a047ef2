package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

// cannedGenerator returns a fixed completion, or an error.
type cannedGenerator struct {
	output string
	err    error
	system string
	user   string
}

func (g *cannedGenerator) Generate(_ context.Context, system, user string) (string, error) {
	g.system = system
	g.user = user
	if g.err != nil {
		return "", g.err
	}
	return g.output, nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	}
}

func TestExtractWellFormedOutput(t *testing.T) {
	gen := &cannedGenerator{
		output: `{"title":"call mom","description":"","priority":"high","status":"todo","dueDate":"2024-03-11"}`,
	}
	client := NewClient(gen, WithClock(fixedClock()))

	fields, err := client.Extract(context.Background(), "remind me to call mom tomorrow, it's urgent")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if fields.Title != "call mom" {
		t.Fatalf("expected filler-stripped title, got %q", fields.Title)
	}
	if fields.Priority != "high" {
		t.Fatalf("expected high priority, got %q", fields.Priority)
	}
	if fields.DueDate != "2024-03-11" {
		t.Fatalf("expected tomorrow resolved to 2024-03-11, got %q", fields.DueDate)
	}
	if fields.Status != "todo" {
		t.Fatalf("expected todo status, got %q", fields.Status)
	}

	if !strings.Contains(gen.system, "2024-03-10") {
		t.Fatal("expected prompt anchored to the clock date")
	}
	if gen.user != "remind me to call mom tomorrow, it's urgent" {
		t.Fatalf("expected raw transcript passed through, got %q", gen.user)
	}
}

func TestExtractStripsCodeFences(t *testing.T) {
	gen := &cannedGenerator{
		output: "```json\n{\"title\":\"buy milk\",\"description\":\"\",\"priority\":\"low\",\"status\":\"todo\",\"dueDate\":\"\"}\n```",
	}
	client := NewClient(gen, WithClock(fixedClock()))

	fields, err := client.Extract(context.Background(), "buy milk, low priority")
	if err != nil {
		t.Fatalf("expected fenced JSON to parse, got %v", err)
	}
	if fields.Title != "buy milk" || fields.Priority != "low" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestExtractStripsCodeFencesWithoutNewline(t *testing.T) {
	gen := &cannedGenerator{
		output: "```json{\"title\":\"buy milk\",\"description\":\"\",\"priority\":\"low\",\"status\":\"todo\",\"dueDate\":\"\"}```",
	}
	client := NewClient(gen, WithClock(fixedClock()))

	fields, err := client.Extract(context.Background(), "buy milk, low priority")
	if err != nil {
		t.Fatalf("expected fence without newline to parse, got %v", err)
	}
	if fields.Title != "buy milk" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestExtractMalformedOutput(t *testing.T) {
	gen := &cannedGenerator{output: "Sorry, I could not parse that."}
	client := NewClient(gen, WithClock(fixedClock()))

	_, err := client.Extract(context.Background(), "call mom tomorrow")
	if !errors.Is(err, ErrMalformedExtraction) {
		t.Fatalf("expected ErrMalformedExtraction, got %v", err)
	}
}

func TestExtractUpstreamFailure(t *testing.T) {
	gen := &cannedGenerator{err: fmt.Errorf("connection refused")}
	client := NewClient(gen, WithClock(fixedClock()))

	_, err := client.Extract(context.Background(), "call mom tomorrow")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestExtractDefaults(t *testing.T) {
	transcript := strings.Repeat("schedule the quarterly planning meeting ", 4)

	gen := &cannedGenerator{
		output: `{"priority":"whenever","status":"done","dueDate":"next week"}`,
	}
	client := NewClient(gen, WithClock(fixedClock()))

	fields, err := client.Extract(context.Background(), transcript)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if utf8.RuneCountInString(fields.Title) != 80 || !strings.HasPrefix(transcript, fields.Title) {
		t.Fatalf("expected 80-character transcript head as title, got %q", fields.Title)
	}
	if fields.Priority != "medium" {
		t.Fatalf("expected medium fallback priority, got %q", fields.Priority)
	}
	if fields.Status != "todo" {
		t.Fatalf("expected status forced to todo, got %q", fields.Status)
	}
	if fields.DueDate != "" {
		t.Fatalf("expected non-calendar due date to be dropped, got %q", fields.DueDate)
	}
	if fields.Description != "" {
		t.Fatalf("expected empty description fallback, got %q", fields.Description)
	}
}

func TestExtractFallbackTitleCountsCharacters(t *testing.T) {
	transcript := strings.Repeat("愛", 100)

	gen := &cannedGenerator{output: `{}`}
	client := NewClient(gen, WithClock(fixedClock()))

	fields, err := client.Extract(context.Background(), transcript)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if fields.Title != strings.Repeat("愛", 80) {
		t.Fatalf("expected 80-character head of the transcript, got %q", fields.Title)
	}
	if !utf8.ValidString(fields.Title) {
		t.Fatal("fallback title must never split a rune")
	}
}

func TestExtractNeverReturnsPartial(t *testing.T) {
	gen := &cannedGenerator{output: `{}`}
	client := NewClient(gen, WithClock(fixedClock()))

	fields, err := client.Extract(context.Background(), "water the plants")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if fields.Title == "" || fields.Priority == "" || fields.Status == "" {
		t.Fatalf("expected fully populated fields, got %+v", fields)
	}
}
