package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/orbit/internal/breathing"
	"github.com/julianstephens/orbit/internal/metrics"
	"github.com/julianstephens/orbit/internal/models"
)

func newModel(t *testing.T, key string) (BreathingModel, *breathing.Session) {
	return newModelWithInterval(t, key, time.Second)
}

func newModelWithInterval(t *testing.T, key string, interval time.Duration) (BreathingModel, *breathing.Session) {
	t.Helper()
	e, err := breathing.Lookup(key)
	if err != nil {
		t.Fatal(err)
	}
	s := breathing.NewSession(e)
	m := NewBreathingModel(s, interval)
	m.Init()
	return m, s
}

func update(m BreathingModel, msg tea.Msg) (BreathingModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(BreathingModel), cmd
}

func TestBreathingModelTicksToCompletion(t *testing.T) {
	m, s := newModel(t, "deep")
	total := s.Exercise().TotalSeconds()

	var cmd tea.Cmd
	for i := 0; i < total; i++ {
		m, cmd = update(m, tickMsg(time.Now()))
	}
	if !s.Finished() {
		t.Fatalf("session not finished after %d ticks", total)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("final tick should quit")
	}
	if m.View() != "" {
		t.Error("finished view should be empty")
	}
}

func TestBreathingModelKeys(t *testing.T) {
	m, s := newModel(t, "box")
	m, _ = update(m, tickMsg(time.Now()))

	m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if s.State() != breathing.StatePaused {
		t.Fatalf("space should pause, state %s", s.State())
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("view should show paused")
	}
	m, _ = update(m, tickMsg(time.Now()))
	if s.Elapsed() != 1 {
		t.Errorf("paused session advanced to %d", s.Elapsed())
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if s.State() != breathing.StateRunning || s.Elapsed() != 0 {
		t.Errorf("restart: state %s elapsed %d", s.State(), s.Elapsed())
	}

	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not return tea.Quit")
	}
	if s.Finished() {
		t.Error("quitting early must not finish the session")
	}
}

func TestBreathingModelInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     time.Duration
	}{
		{name: "custom", interval: 5 * time.Millisecond, want: 5 * time.Millisecond},
		{name: "zero falls back to a second", interval: 0, want: time.Second},
		{name: "negative falls back to a second", interval: -time.Second, want: time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newModelWithInterval(t, "box", tt.interval)
			if m.interval != tt.want {
				t.Errorf("interval = %v, want %v", m.interval, tt.want)
			}
		})
	}
}

func TestBreathingView(t *testing.T) {
	m, _ := newModel(t, "4-7-8")
	view := m.View()
	for _, want := range []string{"4-7-8 Breathing", "Inhale", "Cycle 1 of 4"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestGuide(t *testing.T) {
	if got := guide(1); strings.Count(got, "●") != 1 {
		t.Errorf("guide(1) = %q", got)
	}
	if got := guide(1.6); strings.Count(got, "●") != guideWidth {
		t.Errorf("guide(1.6) = %q", got)
	}
}

func TestRelativeDay(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	today := time.Date(2026, 10, 14, 0, 0, 0, 0, loc)
	tests := []struct {
		t    time.Time
		want string
	}{
		{t: today.Add(23 * time.Hour), want: "Today"},
		{t: today.Add(-time.Minute), want: "Yesterday"},
		{t: today.AddDate(0, 0, -5), want: "5 days ago"},
		{t: today.AddDate(0, 0, -9), want: "2026-10-05"},
	}
	for _, tt := range tests {
		if got := relativeDay(tt.t, today); got != tt.want {
			t.Errorf("relativeDay(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	today := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	records := []models.DailyRecord{{
		Date:           today,
		Mood:           &models.Mood{Emoji: "😊", Label: models.MoodHappy, Confidence: 0.9},
		TasksCompleted: 2,
		TasksTotal:     2,
		Highlights:     []string{"Mood: Happy 😊", "Completed: Stretch"},
	}}
	out := RenderHistory(metrics.Summarize(records, today, 7, 3), today)

	for _, want := range []string{"Last 7 days", "Mood streak: 1 day", "Task streak: 1 day", "Most common", "Completed: Stretch", "2/2 tasks"} {
		if !strings.Contains(out, want) {
			t.Errorf("history missing %q:\n%s", want, out)
		}
	}

	empty := RenderHistory(metrics.Summarize(nil, today, 7, 3), today)
	if !strings.Contains(empty, "No data yet.") {
		t.Errorf("empty history should degrade to no data:\n%s", empty)
	}
}

func TestRenderTasksAndMoods(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{ID: "0123456789", Title: "Write", Category: "work", Priority: models.PriorityHigh, Completed: true, CreatedAt: now},
	}
	if out := RenderTasks(tasks); !strings.Contains(out, "01234567") || !strings.Contains(out, "work, high") {
		t.Errorf("RenderTasks() = %q", out)
	}

	moods := []models.MoodEntry{
		{Emoji: "😢", Label: models.MoodSad, Confidence: 0.5, Timestamp: now.Add(-time.Hour)},
		{Emoji: "😌", Label: models.MoodCalm, Confidence: 1, Timestamp: now},
	}
	out := RenderMoods(moods, now, 1)
	if !strings.Contains(out, models.MoodCalm) || strings.Contains(out, models.MoodSad) {
		t.Errorf("RenderMoods(limit 1) = %q", out)
	}
}
