package models

import "time"

// Mood is the single check-in kept on a day.
type Mood struct {
	Emoji      string
	Label      string
	Confidence float64 // within [0,1]
}

// DailyRecord aggregates one calendar day. Date is midnight in the store's
// location and is the only identity of the record.
type DailyRecord struct {
	Date           time.Time
	Mood           *Mood
	TasksCompleted int
	TasksTotal     int
	Highlights     []string

	// TaskIDs are the tasks counted in TasksTotal, CompletedTaskIDs the ones
	// counted in TasksCompleted.
	TaskIDs          []string
	CompletedTaskIDs []string
}

// HasMood reports whether the day carries a mood with a label.
func (r DailyRecord) HasMood() bool {
	return r.Mood != nil && r.Mood.Label != ""
}

// AllTasksDone reports whether at least one task was registered and all were completed.
func (r DailyRecord) AllTasksDone() bool {
	return r.TasksTotal > 0 && r.TasksCompleted == r.TasksTotal
}

// HasHighlight reports whether text is already present.
func (r DailyRecord) HasHighlight(text string) bool {
	for _, h := range r.Highlights {
		if h == text {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate store state.
func (r DailyRecord) Clone() DailyRecord {
	out := r
	if r.Mood != nil {
		m := *r.Mood
		out.Mood = &m
	}
	out.Highlights = append([]string{}, r.Highlights...)
	if r.TaskIDs != nil {
		out.TaskIDs = append([]string{}, r.TaskIDs...)
	}
	if r.CompletedTaskIDs != nil {
		out.CompletedTaskIDs = append([]string{}, r.CompletedTaskIDs...)
	}
	return out
}
