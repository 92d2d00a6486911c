package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/orbit/internal/constants"
	"github.com/julianstephens/orbit/internal/models"
	"github.com/julianstephens/orbit/internal/utils"
)

type moodWire struct {
	Emoji      string  `json:"emoji"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type dailyRecordWire struct {
	Date             string    `json:"date"`
	Mood             *moodWire `json:"mood,omitempty"`
	TasksCompleted   int       `json:"tasksCompleted"`
	TasksTotal       int       `json:"tasksTotal"`
	Highlights       []string  `json:"highlights"`
	TaskIDs          []string  `json:"taskIds,omitempty"`
	CompletedTaskIDs []string  `json:"completedTaskIds,omitempty"`
}

type taskWire struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate,omitempty"`
	DueTime     string  `json:"dueTime,omitempty"`
	IsRecurring bool    `json:"isRecurring"`
	Recurrence  string  `json:"recurringType,omitempty"`
	Description string  `json:"description,omitempty"`
	IsMeeting   bool    `json:"isMeeting,omitempty"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt"`
}

type moodEntryWire struct {
	ID         string  `json:"id"`
	Emoji      string  `json:"emoji"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
	Context    string  `json:"context,omitempty"`
}

type journalWire struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
	Mood      string `json:"mood,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type breathingWire struct {
	ID          string `json:"id"`
	Exercise    string `json:"exercise"`
	Cycles      int    `json:"cycles"`
	Seconds     int    `json:"seconds"`
	CompletedAt string `json:"completedAt"`
}

// decodeDay turns a persisted date back into midnight in loc. A midnight
// written in its own offset keeps its calendar date, so a record saved under
// one timezone keeps its day when loaded under another. Any other instant is
// truncated to midnight in loc. Bare YYYY-MM-DD values are accepted too.
func decodeDay(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == len(constants.DateFormat) {
		return utils.ParseDateInLocation(s, loc)
	}
	t, err := utils.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return utils.StartOfDay(t, loc), nil
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}

func decodeInstant(s string, loc *time.Location) (time.Time, error) {
	t, err := utils.ParseTimestamp(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t, nil
}

func encodeRecord(r models.DailyRecord) dailyRecordWire {
	w := dailyRecordWire{
		Date:             utils.FormatTimestamp(r.Date),
		TasksCompleted:   r.TasksCompleted,
		TasksTotal:       r.TasksTotal,
		Highlights:       append([]string{}, r.Highlights...),
		TaskIDs:          r.TaskIDs,
		CompletedTaskIDs: r.CompletedTaskIDs,
	}
	if r.Mood != nil {
		w.Mood = &moodWire{Emoji: r.Mood.Emoji, Label: r.Mood.Label, Confidence: r.Mood.Confidence}
	}
	return w
}

func decodeRecord(w dailyRecordWire, loc *time.Location) (models.DailyRecord, error) {
	day, err := decodeDay(w.Date, loc)
	if err != nil {
		return models.DailyRecord{}, err
	}
	if w.TasksTotal < 0 || w.TasksCompleted < 0 || w.TasksCompleted > w.TasksTotal {
		return models.DailyRecord{}, fmt.Errorf("invalid task counters %d/%d", w.TasksCompleted, w.TasksTotal)
	}

	r := models.DailyRecord{
		Date:             day,
		TasksCompleted:   w.TasksCompleted,
		TasksTotal:       w.TasksTotal,
		Highlights:       dedupe(w.Highlights),
		TaskIDs:          w.TaskIDs,
		CompletedTaskIDs: w.CompletedTaskIDs,
	}
	if w.Mood != nil && w.Mood.Label != "" {
		if w.Mood.Confidence < 0 || w.Mood.Confidence > 1 {
			return models.DailyRecord{}, fmt.Errorf("mood confidence %v outside [0,1]", w.Mood.Confidence)
		}
		r.Mood = &models.Mood{Emoji: w.Mood.Emoji, Label: w.Mood.Label, Confidence: w.Mood.Confidence}
	}
	return r, nil
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func encodeTask(t models.Task) taskWire {
	w := taskWire{
		ID:          t.ID,
		Title:       t.Title,
		Category:    t.Category,
		Priority:    string(t.Priority),
		DueTime:     t.DueTime,
		IsRecurring: t.IsRecurring,
		Recurrence:  string(t.Recurrence),
		Description: t.Description,
		IsMeeting:   t.IsMeeting,
		Completed:   t.Completed,
		CreatedAt:   utils.FormatTimestamp(t.CreatedAt),
	}
	if t.DueDate != nil {
		due := utils.FormatTimestamp(*t.DueDate)
		w.DueDate = &due
	}
	return w
}

func decodeTask(w taskWire, loc *time.Location) (models.Task, error) {
	if w.ID == "" {
		return models.Task{}, fmt.Errorf("task without id")
	}
	created, err := decodeInstant(w.CreatedAt, loc)
	if err != nil {
		return models.Task{}, err
	}
	t := models.Task{
		ID:          w.ID,
		Title:       w.Title,
		Category:    w.Category,
		Priority:    models.Priority(w.Priority),
		DueTime:     w.DueTime,
		IsRecurring: w.IsRecurring,
		Recurrence:  models.RecurrenceKind(w.Recurrence),
		Description: w.Description,
		IsMeeting:   w.IsMeeting,
		Completed:   w.Completed,
		CreatedAt:   created,
	}
	if w.DueDate != nil {
		due, err := decodeInstant(*w.DueDate, loc)
		if err != nil {
			return models.Task{}, err
		}
		t.DueDate = &due
	}
	return t, nil
}

func encodeMoodEntry(m models.MoodEntry) moodEntryWire {
	return moodEntryWire{
		ID:         m.ID,
		Emoji:      m.Emoji,
		Label:      m.Label,
		Confidence: m.Confidence,
		Timestamp:  utils.FormatTimestamp(m.Timestamp),
		Context:    m.Context,
	}
}

func decodeMoodEntry(w moodEntryWire, loc *time.Location) (models.MoodEntry, error) {
	ts, err := decodeInstant(w.Timestamp, loc)
	if err != nil {
		return models.MoodEntry{}, err
	}
	if w.Confidence < 0 || w.Confidence > 1 {
		return models.MoodEntry{}, fmt.Errorf("mood confidence %v outside [0,1]", w.Confidence)
	}
	return models.MoodEntry{
		ID:         w.ID,
		Emoji:      w.Emoji,
		Label:      w.Label,
		Confidence: w.Confidence,
		Timestamp:  ts,
		Context:    w.Context,
	}, nil
}

func encodeJournal(j models.JournalEntry) journalWire {
	return journalWire{
		ID:        j.ID,
		Text:      j.Text,
		WordCount: j.WordCount,
		Mood:      j.Mood,
		CreatedAt: utils.FormatTimestamp(j.CreatedAt),
	}
}

func decodeJournal(w journalWire, loc *time.Location) (models.JournalEntry, error) {
	created, err := decodeInstant(w.CreatedAt, loc)
	if err != nil {
		return models.JournalEntry{}, err
	}
	return models.JournalEntry{
		ID:        w.ID,
		Text:      w.Text,
		WordCount: w.WordCount,
		Mood:      w.Mood,
		CreatedAt: created,
	}, nil
}

func encodeBreathing(b models.BreathingSession) breathingWire {
	return breathingWire{
		ID:          b.ID,
		Exercise:    b.Exercise,
		Cycles:      b.Cycles,
		Seconds:     b.Seconds,
		CompletedAt: utils.FormatTimestamp(b.CompletedAt),
	}
}

func decodeBreathing(w breathingWire, loc *time.Location) (models.BreathingSession, error) {
	done, err := decodeInstant(w.CompletedAt, loc)
	if err != nil {
		return models.BreathingSession{}, err
	}
	if w.Cycles < 0 || w.Seconds < 0 {
		return models.BreathingSession{}, fmt.Errorf("negative breathing counters")
	}
	return models.BreathingSession{
		ID:          w.ID,
		Exercise:    w.Exercise,
		Cycles:      w.Cycles,
		Seconds:     w.Seconds,
		CompletedAt: done,
	}, nil
}
