package metrics

import (
	"time"

	"github.com/julianstephens/orbit/internal/constants"
	"github.com/julianstephens/orbit/internal/models"
	"github.com/julianstephens/orbit/internal/utils"
)

// Summary bundles the views shown on the history screen.
type Summary struct {
	Window         []DaySlot
	MoodStreak     int
	TaskStreak     int
	Frequency      Distribution
	MostCommon     string
	HasMostCommon  bool
	Recent         []DaySlot
	TasksCompleted int
	TasksTotal     int
}

// Summarize computes every history view over the last days ending today.
// Non-positive days or recent fall back to the defaults.
func Summarize(records []models.DailyRecord, today time.Time, days, recent int) Summary {
	if days <= 0 {
		days = constants.DefaultWindowDays
	}
	if recent <= 0 {
		recent = constants.DefaultRecentDays
	}

	window := WindowSlice(records, today, days)
	s := Summary{
		Window:     window,
		MoodStreak: MoodStreak(window),
		TaskStreak: TaskStreak(window),
		Frequency:  MoodFrequency(window),
		Recent:     RecentActivity(window, recent),
	}
	s.MostCommon, s.HasMostCommon = MostCommonMood(window)
	for _, slot := range window {
		s.TasksCompleted += slot.Record.TasksCompleted
		s.TasksTotal += slot.Record.TasksTotal
	}
	return s
}

// WellnessStats summarizes breathing and journaling activity.
type WellnessStats struct {
	BreathingSessions int
	BreathingMinutes  int
	JournalEntries    int
	JournalWords      int
	// ActiveDays is the number of distinct days with any session or entry.
	ActiveDays int
	// CurrentStreak counts consecutive days back from today with activity.
	CurrentStreak int
}

// Wellness computes WellnessStats, bucketing instants into days in today's
// location.
func Wellness(journal []models.JournalEntry, sessions []models.BreathingSession, today time.Time) WellnessStats {
	loc := today.Location()
	active := make(map[int64]struct{})

	var stats WellnessStats
	seconds := 0
	for _, b := range sessions {
		stats.BreathingSessions++
		seconds += b.Seconds
		active[utils.StartOfDay(b.CompletedAt, loc).Unix()] = struct{}{}
	}
	for _, j := range journal {
		stats.JournalEntries++
		stats.JournalWords += j.WordCount
		active[utils.StartOfDay(j.CreatedAt, loc).Unix()] = struct{}{}
	}
	stats.BreathingMinutes = seconds / 60
	stats.ActiveDays = len(active)

	day := utils.StartOfDay(today, loc)
	for {
		if _, ok := active[day.Unix()]; !ok {
			break
		}
		stats.CurrentStreak++
		day = utils.AddDays(day, -1)
	}
	return stats
}
