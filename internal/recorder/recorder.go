// Package recorder turns raw activity into validated event values. Invalid
// data is rejected here because the rollup store does not re-validate.
package recorder

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/orbit/internal/errors"
	"github.com/julianstephens/orbit/internal/models"
)

var newID = uuid.NewString

var dueTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidEvent, fmt.Sprintf(format, args...))
}

// Mood builds a mood check-in. The label must be one of the mood categories
// (case-insensitive); a missing emoji falls back to the category default.
func Mood(label, emoji string, confidence float64, at time.Time, context string) (models.MoodEntry, error) {
	canonical, ok := models.CanonicalMood(label)
	if !ok {
		return models.MoodEntry{}, invalid("unknown mood %q", label)
	}
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return models.MoodEntry{}, invalid("confidence %v outside [0,1]", confidence)
	}
	if at.IsZero() {
		return models.MoodEntry{}, invalid("mood timestamp is required")
	}

	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		emoji = models.MoodEmoji(canonical)
	}

	return models.MoodEntry{
		ID:         newID(),
		Emoji:      emoji,
		Label:      canonical,
		Confidence: confidence,
		Timestamp:  at,
		Context:    strings.TrimSpace(context),
	}, nil
}

// TaskInput carries the raw fields of a new task.
type TaskInput struct {
	Title       string
	Category    string
	Priority    models.Priority
	DueDate     *time.Time
	DueTime     string
	Recurrence  models.RecurrenceKind
	Description string
	IsMeeting   bool
	Completed   bool
	CreatedAt   time.Time
}

// Task validates a new task and assigns it an id.
func Task(in TaskInput) (models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, invalid("task title is required")
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		return models.Task{}, invalid("priority %q must be low, medium or high", priority)
	}

	switch in.Recurrence {
	case models.RecurrenceNone, models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceMonthly:
	default:
		return models.Task{}, invalid("recurrence %q must be daily, weekly or monthly", in.Recurrence)
	}

	if in.DueTime != "" && !dueTimePattern.MatchString(in.DueTime) {
		return models.Task{}, invalid("due time %q must be HH:MM", in.DueTime)
	}
	if in.CreatedAt.IsZero() {
		return models.Task{}, invalid("task creation time is required")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "general"
	}

	return models.Task{
		ID:          newID(),
		Title:       title,
		Category:    category,
		Priority:    priority,
		DueDate:     in.DueDate,
		DueTime:     in.DueTime,
		IsRecurring: in.Recurrence != models.RecurrenceNone,
		Recurrence:  in.Recurrence,
		Description: strings.TrimSpace(in.Description),
		IsMeeting:   in.IsMeeting,
		Completed:   in.Completed,
		CreatedAt:   in.CreatedAt,
	}, nil
}

// Journal builds a journal entry and counts its words.
func Journal(text, mood string, at time.Time) (models.JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.JournalEntry{}, invalid("journal entry is empty")
	}
	if at.IsZero() {
		return models.JournalEntry{}, invalid("journal timestamp is required")
	}
	if mood != "" {
		canonical, ok := models.CanonicalMood(mood)
		if !ok {
			return models.JournalEntry{}, invalid("unknown mood %q", mood)
		}
		mood = canonical
	}

	return models.JournalEntry{
		ID:        newID(),
		Text:      text,
		WordCount: len(strings.Fields(text)),
		Mood:      mood,
		CreatedAt: at,
	}, nil
}

// Breathing builds a completed breathing session.
func Breathing(exercise string, cycles, seconds int, at time.Time) (models.BreathingSession, error) {
	if strings.TrimSpace(exercise) == "" {
		return models.BreathingSession{}, invalid("breathing exercise name is required")
	}
	if cycles <= 0 {
		return models.BreathingSession{}, invalid("cycles must be positive, got %d", cycles)
	}
	if seconds <= 0 {
		return models.BreathingSession{}, invalid("duration must be positive, got %ds", seconds)
	}
	if at.IsZero() {
		return models.BreathingSession{}, invalid("breathing timestamp is required")
	}

	return models.BreathingSession{
		ID:          newID(),
		Exercise:    exercise,
		Cycles:      cycles,
		Seconds:     seconds,
		CompletedAt: at,
	}, nil
}
