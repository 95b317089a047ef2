// Package extraction turns free-form transcripts into structured task
// fields by way of an external chat-completion model.
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sangam0207/SpeakDo-Task-Tracker/validation/validator"
)

var (
	// ErrMalformedExtraction indicates the model output could not be decoded
	// as the expected JSON structure.
	ErrMalformedExtraction = errors.New("model output is not valid JSON")

	// ErrUpstreamUnavailable indicates the model call itself failed or
	// timed out.
	ErrUpstreamUnavailable = errors.New("extraction upstream unavailable")
)

// fallbackTitleLen bounds the transcript-derived title, in characters,
// used when the model omits one.
const fallbackTitleLen = 80

// Fields holds the fully populated task fields produced by an extraction.
// Every field is always set; defaults fill anything the model omitted or
// got wrong.
type Fields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
}

// Generator is the narrow capability to invoke a text-generation model.
// Implementations own transport concerns; they must not retry.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Client extracts task fields from transcripts.
type Client struct {
	gen Generator
	now func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithClock overrides the clock used to anchor relative dates.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates an extraction client over the given generator.
func NewClient(gen Generator, opts ...Option) *Client {
	c := &Client{
		gen: gen,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extract invokes the model with the transcript and returns fully
// normalized task fields. The caller is responsible for rejecting empty
// transcripts before calling. Decode failures surface as
// ErrMalformedExtraction; transport failures as ErrUpstreamUnavailable.
// Neither is retried here.
func (c *Client) Extract(ctx context.Context, transcript string) (*Fields, error) {
	prompt := BuildPrompt(c.now())

	raw, err := c.gen.Generate(ctx, prompt, transcript)
	if err != nil {
		if errors.Is(err, ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	cleaned := stripCodeFences(raw)

	var parsed Fields
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExtraction, err)
	}

	return normalize(&parsed, transcript), nil
}

// stripCodeFences removes markdown code fence markers the model may have
// wrapped the JSON in. The opening fence and its optional language tag are
// stripped whether or not a newline follows.
func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "json")
		if idx := strings.LastIndex(cleaned, "```"); idx >= 0 {
			cleaned = cleaned[:idx]
		}
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

// normalize fills defaults so the result is always well-formed: title falls
// back to the transcript head, priority to medium, status is forced to
// todo, and due dates that are not calendar dates become "no due date".
func normalize(parsed *Fields, transcript string) *Fields {
	out := &Fields{
		Title:       strings.TrimSpace(parsed.Title),
		Description: parsed.Description,
		Priority:    parsed.Priority,
		Status:      validator.StatusTodo,
		DueDate:     parsed.DueDate,
	}

	if out.Title == "" {
		title := strings.TrimSpace(transcript)
		if runes := []rune(title); len(runes) > fallbackTitleLen {
			title = string(runes[:fallbackTitleLen])
		}
		out.Title = title
	}

	if !validator.IsValidPriority(out.Priority) {
		out.Priority = validator.PriorityMedium
	}

	if out.DueDate != "" {
		if _, err := validator.ParseDueDate(out.DueDate); err != nil {
			out.DueDate = ""
		}
	}

	return out
}
