package metrics

import (
	"testing"
	"time"

	"github.com/julianstephens/orbit/internal/models"
)

var loc = time.FixedZone("JST", 9*60*60)

var today = time.Date(2026, 10, 14, 21, 45, 0, 0, loc)

func day(offset int) time.Time {
	return time.Date(2026, 10, 14+offset, 0, 0, 0, 0, loc)
}

func withMood(offset int, label string) models.DailyRecord {
	return models.DailyRecord{
		Date:       day(offset),
		Mood:       &models.Mood{Label: label, Emoji: models.MoodEmoji(label), Confidence: 0.5},
		Highlights: []string{},
	}
}

func withTasks(offset, completed, total int) models.DailyRecord {
	return models.DailyRecord{Date: day(offset), TasksCompleted: completed, TasksTotal: total, Highlights: []string{}}
}

func TestWindowIsGapFilledAndAscending(t *testing.T) {
	records := []models.DailyRecord{withTasks(0, 1, 1), withTasks(-3, 2, 2), withTasks(-30, 1, 1)}

	for _, n := range []int{1, 3, 7, 30} {
		slots := WindowSlice(records, today, n)
		if len(slots) != n {
			t.Fatalf("Window(%d) yielded %d slots", n, len(slots))
		}
		for i, s := range slots {
			if want := day(i - (n - 1)); !s.Date.Equal(want) {
				t.Errorf("n=%d slot %d date = %v, want %v", n, i, s.Date, want)
			}
		}
		if last := slots[n-1]; !last.Found || last.Record.TasksTotal != 1 {
			t.Errorf("n=%d today slot = %+v", n, last)
		}
	}

	slots := WindowSlice(records, today, 7)
	found := 0
	for _, s := range slots {
		if s.Found {
			found++
		} else if s.Record.HasMood() || s.Record.TasksTotal != 0 {
			t.Errorf("gap slot not empty: %+v", s)
		}
	}
	if found != 2 {
		t.Errorf("found = %d, want 2", found)
	}

	if got := WindowSlice(records, today, 0); len(got) != 0 {
		t.Errorf("Window(0) = %v", got)
	}
}

func TestWindowRestartableAndEarlyStop(t *testing.T) {
	seq := Window(nil, today, 5)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 5 || b != 5 {
		t.Errorf("passes yielded %d and %d, want 5 each", a, b)
	}

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early stop at %d", n)
	}
}

func TestWindowMatchesOnlyExactDay(t *testing.T) {
	records := []models.DailyRecord{withMood(-1, models.MoodSad)}
	slots := WindowSlice(records, today, 2)
	if slots[1].Found {
		t.Error("yesterday's record matched today")
	}
	if !slots[0].Found || slots[0].MoodLabel() != models.MoodSad {
		t.Errorf("yesterday slot = %+v", slots[0])
	}
}

func TestMoodStreak(t *testing.T) {
	tests := []struct {
		name string
		recs []models.DailyRecord
		want int
	}{
		{
			name: "broken by different mood",
			recs: []models.DailyRecord{
				withMood(-3, models.MoodHappy), withMood(-2, models.MoodHappy),
				withMood(-1, models.MoodSad), withMood(0, models.MoodHappy),
			},
			want: 1,
		},
		{
			name: "same mood chain",
			recs: []models.DailyRecord{
				withMood(-2, models.MoodCalm), withMood(-1, models.MoodCalm), withMood(0, models.MoodCalm),
			},
			want: 3,
		},
		{
			name: "no mood today",
			recs: []models.DailyRecord{withMood(-1, models.MoodCalm)},
			want: 0,
		},
		{
			name: "broken by gap",
			recs: []models.DailyRecord{withMood(-2, models.MoodCalm), withMood(0, models.MoodCalm)},
			want: 1,
		},
		{name: "empty", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodStreak(WindowSlice(tt.recs, today, 7)); got != tt.want {
				t.Errorf("MoodStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTaskStreak(t *testing.T) {
	tests := []struct {
		name string
		recs []models.DailyRecord
		want int
	}{
		{
			name: "zero-task day breaks",
			recs: []models.DailyRecord{withTasks(-3, 3, 3), withTasks(-2, 2, 2), withTasks(-1, 0, 0), withTasks(0, 5, 5)},
			want: 1,
		},
		{
			name: "partial day breaks",
			recs: []models.DailyRecord{withTasks(-1, 2, 2), withTasks(0, 1, 2)},
			want: 0,
		},
		{
			name: "full week",
			recs: []models.DailyRecord{
				withTasks(-6, 1, 1), withTasks(-5, 1, 1), withTasks(-4, 1, 1), withTasks(-3, 1, 1),
				withTasks(-2, 1, 1), withTasks(-1, 1, 1), withTasks(0, 1, 1), withTasks(-7, 1, 1),
			},
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaskStreak(WindowSlice(tt.recs, today, 7)); got != tt.want {
				t.Errorf("TaskStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMoodFrequencyAndMostCommon(t *testing.T) {
	recs := []models.DailyRecord{
		withMood(-4, models.MoodHappy), withMood(-2, models.MoodHappy), withMood(0, models.MoodCalm),
		withMood(-10, models.MoodSad),
	}
	slots := WindowSlice(recs, today, 7)

	dist := MoodFrequency(slots)
	if len(dist.Counts) != 2 || dist.Counts[models.MoodHappy] != 2 || dist.Counts[models.MoodCalm] != 1 {
		t.Errorf("Counts = %v, want {Happy: 2, Calm: 1}", dist.Counts)
	}
	if dist.Total() != 3 || dist.Order[0] != models.MoodHappy {
		t.Errorf("Total/Order = %d/%v", dist.Total(), dist.Order)
	}

	if label, ok := MostCommonMood(slots); !ok || label != models.MoodHappy {
		t.Errorf("MostCommonMood() = %q, %v, want Happy", label, ok)
	}
}

func TestMostCommonMoodTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		recs   []models.DailyRecord
		want   string
		wantOK bool
	}{
		{
			name: "first to reach max wins",
			recs: []models.DailyRecord{
				withMood(-3, models.MoodHappy), withMood(-2, models.MoodCalm),
				withMood(-1, models.MoodCalm), withMood(0, models.MoodHappy),
			},
			want: models.MoodCalm, wantOK: true,
		},
		{
			name:   "single each keeps oldest",
			recs:   []models.DailyRecord{withMood(-1, models.MoodSad), withMood(0, models.MoodAngry)},
			want:   models.MoodSad,
			wantOK: true,
		},
		{name: "none", recs: []models.DailyRecord{withTasks(0, 1, 1)}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MostCommonMood(WindowSlice(tt.recs, today, 7))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("MostCommonMood() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRecentActivity(t *testing.T) {
	slots := WindowSlice([]models.DailyRecord{withTasks(0, 1, 1)}, today, 7)

	recent := RecentActivity(slots, 3)
	if len(recent) != 3 {
		t.Fatalf("len = %d", len(recent))
	}
	for i, want := range []time.Time{day(0), day(-1), day(-2)} {
		if !recent[i].Date.Equal(want) {
			t.Errorf("recent[%d] = %v, want %v", i, recent[i].Date, want)
		}
	}
	if got := RecentActivity(slots, 10); len(got) != 7 {
		t.Errorf("k > window returned %d", len(got))
	}
	if got := RecentActivity(slots, 0); len(got) != 0 {
		t.Errorf("k = 0 returned %d", len(got))
	}
	if !slots[6].Date.Equal(day(0)) {
		t.Error("RecentActivity reordered its input")
	}
}

func TestSummarize(t *testing.T) {
	recs := []models.DailyRecord{withTasks(-1, 1, 2), withMood(0, models.MoodHappy)}
	s := Summarize(recs, today, 0, 0)

	if len(s.Window) != 7 || len(s.Recent) != 3 {
		t.Errorf("window/recent = %d/%d", len(s.Window), len(s.Recent))
	}
	if s.MoodStreak != 1 || s.TaskStreak != 0 || !s.HasMostCommon || s.MostCommon != models.MoodHappy {
		t.Errorf("summary = %+v", s)
	}
	if s.TasksCompleted != 1 || s.TasksTotal != 2 {
		t.Errorf("tasks = %d/%d", s.TasksCompleted, s.TasksTotal)
	}
}

func TestWellness(t *testing.T) {
	at := func(offset, hour int) time.Time { return time.Date(2026, 10, 14+offset, hour, 0, 0, 0, loc) }

	sessions := []models.BreathingSession{
		{Exercise: "box", Seconds: 64, CompletedAt: at(0, 8)},
		{Exercise: "4-7-8", Seconds: 76, CompletedAt: at(-1, 23)},
	}
	journal := []models.JournalEntry{
		{WordCount: 10, CreatedAt: at(0, 21)},
		{WordCount: 5, CreatedAt: at(-3, 9)},
	}

	stats := Wellness(journal, sessions, today)
	want := WellnessStats{
		BreathingSessions: 2,
		BreathingMinutes:  2,
		JournalEntries:    2,
		JournalWords:      15,
		ActiveDays:        3,
		CurrentStreak:     2,
	}
	if stats != want {
		t.Errorf("Wellness() = %+v, want %+v", stats, want)
	}

	if got := Wellness(nil, nil, today); got != (WellnessStats{}) {
		t.Errorf("Wellness(empty) = %+v", got)
	}
}
