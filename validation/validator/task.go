// Package validator enforces task field invariants. All rules are pure
// functions; anything clock-dependent takes the current time explicitly so
// callers control it.
package validator

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Task status values.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	// TitleMinLen is the minimum title length after trimming.
	TitleMinLen = 3
	// TitleMaxLen is the maximum title length after trimming.
	TitleMaxLen = 200

	// DueDateLayout is the calendar date wire format.
	DueDateLayout = "2006-01-02"
)

// Statuses returns the valid status values.
func Statuses() []string {
	return []string{StatusTodo, StatusInProgress, StatusDone}
}

// Priorities returns the valid priority values.
func Priorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValidStatus reports whether s is a valid task status.
func IsValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

// IsValidPriority reports whether p is a valid task priority.
func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ValidateTitle validates a task title and returns its trimmed form.
// Length bounds count characters, not bytes.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", fmt.Errorf("title is required")
	}
	length := utf8.RuneCountInString(trimmed)
	if length < TitleMinLen {
		return "", fmt.Errorf("title must be at least %d characters long", TitleMinLen)
	}
	if length > TitleMaxLen {
		return "", fmt.Errorf("title cannot exceed %d characters", TitleMaxLen)
	}
	return trimmed, nil
}

// ValidateStatus validates a task status.
func ValidateStatus(status string) error {
	if !IsValidStatus(status) {
		return fmt.Errorf("status must be one of %s", strings.Join(Statuses(), ", "))
	}
	return nil
}

// ValidatePriority validates a task priority.
func ValidatePriority(priority string) error {
	if !IsValidPriority(priority) {
		return fmt.Errorf("priority must be one of %s", strings.Join(Priorities(), ", "))
	}
	return nil
}

// ParseDueDate parses a YYYY-MM-DD due date.
func ParseDueDate(value string) (time.Time, error) {
	due, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("dueDate must be a valid %s date", DueDateLayout)
	}
	return due.UTC(), nil
}

// ValidateDueDate parses a due date and rejects dates strictly before the
// current calendar day. Comparison is at day granularity so a task due
// today stays valid for the whole day.
func ValidateDueDate(value string, now time.Time) (time.Time, error) {
	due, err := ParseDueDate(value)
	if err != nil {
		return time.Time{}, err
	}
	today := now.UTC().Truncate(24 * time.Hour)
	if due.Before(today) {
		return time.Time{}, fmt.Errorf("dueDate cannot be in the past")
	}
	return due, nil
}
