// Package history owns the per-day rollup. Every event is bucketed to the
// calendar day of its instant and merged into the single record for that day.
package history

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/orbit/internal/constants"
	apperrors "github.com/julianstephens/orbit/internal/errors"
	"github.com/julianstephens/orbit/internal/logger"
	"github.com/julianstephens/orbit/internal/models"
	"github.com/julianstephens/orbit/internal/storage"
	"github.com/julianstephens/orbit/internal/utils"
)

// Service is the rollup store plus the event collections it is fed from.
// It is constructed once per process and is not safe for concurrent use.
type Service struct {
	repo *storage.Repository
	loc  *time.Location
	now  func() time.Time

	// records is ordered by creation, newest day first.
	records   []models.DailyRecord
	tasks     []models.Task
	moods     []models.MoodEntry
	journal   []models.JournalEntry
	breathing []models.BreathingSession
}

type Option func(*Service)

// WithClock replaces time.Now, which decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New builds an empty service over repo. Call Load to restore saved state.
func New(repo *storage.Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		loc:  repo.Location(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores every collection. Unreadable collections start empty. The
// result is the first failed load, or the history load when none failed.
func (s *Service) Load() storage.Result {
	records, res := s.repo.LoadHistory()
	s.records = records

	var tasksRes, moodsRes, journalRes, breathingRes storage.Result
	s.tasks, tasksRes = s.repo.LoadTasks()
	s.moods, moodsRes = s.repo.LoadMoods()
	s.journal, journalRes = s.repo.LoadJournal()
	s.breathing, breathingRes = s.repo.LoadBreathing()

	if failed := firstFailure(res, tasksRes, moodsRes, journalRes, breathingRes); failed.Failed() {
		return failed
	}
	return res
}

func (s *Service) Location() *time.Location { return s.loc }

// Now returns the current instant in the service's location.
func (s *Service) Now() time.Time { return s.now().In(s.loc) }

// Today returns midnight of the current day.
func (s *Service) Today() time.Time { return s.dayOf(s.now()) }

func (s *Service) dayOf(t time.Time) time.Time { return utils.StartOfDay(t, s.loc) }

// recordFor returns the record for day, creating it at the head if missing.
func (s *Service) recordFor(day time.Time) *models.DailyRecord {
	for i := range s.records {
		if s.records[i].Date.Equal(day) {
			return &s.records[i]
		}
	}
	s.records = slices.Insert(s.records, 0, models.DailyRecord{Date: day, Highlights: []string{}})
	return &s.records[0]
}

// UpsertTaskCompletion merges a task's state into the record for the day it
// was created. A task id is counted once in TasksTotal; TasksCompleted moves
// only when that task's completed flag changes. A task already registered
// stays on its record even if the location now maps CreatedAt elsewhere.
func (s *Service) UpsertTaskCompletion(task models.Task) storage.Result {
	rec := s.recordWithTask(task.ID)
	if rec == nil {
		rec = s.recordFor(s.dayOf(task.CreatedAt))
	}
	applyTask(rec, task)
	return s.saveHistory()
}

func (s *Service) recordWithTask(id string) *models.DailyRecord {
	if id == "" {
		return nil
	}
	for i := range s.records {
		if slices.Contains(s.records[i].TaskIDs, id) {
			return &s.records[i]
		}
	}
	return nil
}

func applyTask(rec *models.DailyRecord, task models.Task) {
	highlight := constants.HighlightCompleted + task.Title

	if task.ID == "" {
		// Untracked tasks cannot be deduplicated; count each call.
		rec.TasksTotal++
		if task.Completed {
			rec.TasksCompleted++
			appendHighlight(rec, highlight)
		}
		return
	}

	if !slices.Contains(rec.TaskIDs, task.ID) {
		rec.TaskIDs = append(rec.TaskIDs, task.ID)
		rec.TasksTotal++
	}

	wasCompleted := slices.Contains(rec.CompletedTaskIDs, task.ID)
	switch {
	case task.Completed && !wasCompleted:
		rec.CompletedTaskIDs = append(rec.CompletedTaskIDs, task.ID)
		rec.TasksCompleted++
		appendHighlight(rec, highlight)
	case !task.Completed && wasCompleted:
		rec.CompletedTaskIDs = slices.DeleteFunc(rec.CompletedTaskIDs, func(id string) bool { return id == task.ID })
		rec.TasksCompleted--
		rec.Highlights = slices.DeleteFunc(rec.Highlights, func(h string) bool { return h == highlight })
	}
}

// UpsertMood replaces the mood of the entry's day and prepends its highlight.
func (s *Service) UpsertMood(entry models.MoodEntry) storage.Result {
	rec := s.recordFor(s.dayOf(entry.Timestamp))
	rec.Mood = &models.Mood{Emoji: entry.Emoji, Label: entry.Label, Confidence: entry.Confidence}
	highlight := moodHighlight(entry.Label, entry.Emoji)
	if !rec.HasHighlight(highlight) {
		rec.Highlights = slices.Insert(rec.Highlights, 0, highlight)
	}
	return s.saveHistory()
}

func moodHighlight(label, emoji string) string {
	return strings.TrimSpace(constants.HighlightMood + label + " " + emoji)
}

// AddHighlight appends text to today's record. Blank text is ignored.
func (s *Service) AddHighlight(text string) storage.Result {
	return s.addHighlightOn(s.Today(), text)
}

func (s *Service) addHighlightOn(day time.Time, text string) storage.Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return storage.Result{Status: storage.StatusOK}
	}
	appendHighlight(s.recordFor(day), text)
	return s.saveHistory()
}

func appendHighlight(rec *models.DailyRecord, text string) {
	if !rec.HasHighlight(text) {
		rec.Highlights = append(rec.Highlights, text)
	}
}

// GetAll returns copies of every record, most recently created day first.
func (s *Service) GetAll() []models.DailyRecord {
	out := make([]models.DailyRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	return out
}

// Reset drops all state in memory and in storage.
func (s *Service) Reset() storage.Result {
	s.records = nil
	s.tasks = nil
	s.moods = nil
	s.journal = nil
	s.breathing = nil
	return s.repo.Clear()
}

// AddTask stores a new task and registers it on its creation day.
func (s *Service) AddTask(task models.Task) storage.Result {
	s.tasks = append(s.tasks, task)
	saved := s.repo.SaveTasks(s.tasks)
	return firstFailure(saved, s.UpsertTaskCompletion(task))
}

// SetTaskCompletion flips a stored task's completed flag and rolls the change
// into its day. Setting the current value again changes nothing.
func (s *Service) SetTaskCompletion(id string, completed bool) (models.Task, storage.Result, error) {
	idx := slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	if idx < 0 {
		return models.Task{}, storage.Result{}, fmt.Errorf("%w: task %q", apperrors.ErrNotFound, id)
	}
	s.tasks[idx].Completed = completed
	task := s.tasks[idx]
	saved := s.repo.SaveTasks(s.tasks)
	return task, firstFailure(saved, s.UpsertTaskCompletion(task)), nil
}

// FindTask resolves a task by id or unique id prefix.
func (s *Service) FindTask(ref string) (models.Task, error) {
	var match *models.Task
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.ID == ref {
			return *t, nil
		}
		if ref != "" && strings.HasPrefix(t.ID, ref) {
			if match != nil {
				return models.Task{}, fmt.Errorf("%w: task prefix %q is ambiguous", apperrors.ErrNotFound, ref)
			}
			match = t
		}
	}
	if match == nil {
		return models.Task{}, fmt.Errorf("%w: task %q", apperrors.ErrNotFound, ref)
	}
	return *match, nil
}

func (s *Service) Tasks() []models.Task { return slices.Clone(s.tasks) }

// TodayTasks returns the tasks created today, in the order they were added.
func (s *Service) TodayTasks() []models.Task {
	today := s.Today()
	var out []models.Task
	for _, t := range s.tasks {
		if s.dayOf(t.CreatedAt).Equal(today) {
			out = append(out, t)
		}
	}
	return out
}

// RecordMood stores a check-in and makes it the mood of its day.
func (s *Service) RecordMood(entry models.MoodEntry) storage.Result {
	s.moods = append(s.moods, entry)
	saved := s.repo.SaveMoods(s.moods)
	return firstFailure(saved, s.UpsertMood(entry))
}

func (s *Service) Moods() []models.MoodEntry { return slices.Clone(s.moods) }

// RecordJournal stores an entry and notes it on the entry's day.
func (s *Service) RecordJournal(entry models.JournalEntry) storage.Result {
	s.journal = append(s.journal, entry)
	saved := s.repo.SaveJournal(s.journal)
	note := fmt.Sprintf("%s%d words", constants.HighlightJournal, entry.WordCount)
	return firstFailure(saved, s.addHighlightOn(s.dayOf(entry.CreatedAt), note))
}

func (s *Service) Journal() []models.JournalEntry { return slices.Clone(s.journal) }

// RecordBreathing stores a completed session and notes it on its day.
func (s *Service) RecordBreathing(session models.BreathingSession) storage.Result {
	s.breathing = append(s.breathing, session)
	saved := s.repo.SaveBreathing(s.breathing)
	note := constants.HighlightBreathing + session.Exercise
	return firstFailure(saved, s.addHighlightOn(s.dayOf(session.CompletedAt), note))
}

func (s *Service) BreathingSessions() []models.BreathingSession { return slices.Clone(s.breathing) }

// saveHistory persists the rollup. A failed save leaves memory as is.
func (s *Service) saveHistory() storage.Result {
	res := s.repo.SaveHistory(s.records)
	if res.Failed() {
		logger.Warn("History kept in memory only", "reason", res.Reason)
	}
	return res
}

func firstFailure(results ...storage.Result) storage.Result {
	for _, r := range results {
		if r.Failed() {
			return r
		}
	}
	return storage.Result{Status: storage.StatusOK}
}
