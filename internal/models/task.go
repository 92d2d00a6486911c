package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type RecurrenceKind string

const (
	RecurrenceNone    RecurrenceKind = ""
	RecurrenceDaily   RecurrenceKind = "daily"
	RecurrenceWeekly  RecurrenceKind = "weekly"
	RecurrenceMonthly RecurrenceKind = "monthly"
)

// Task is a tracked to-do. The rollup only reads ID, Completed and CreatedAt.
type Task struct {
	ID          string
	Title       string
	Category    string
	Priority    Priority
	DueDate     *time.Time
	DueTime     string // HH:MM format
	IsRecurring bool
	Recurrence  RecurrenceKind
	Description string
	IsMeeting   bool
	Completed   bool
	CreatedAt   time.Time
}
