package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/orbit/internal/metrics"
	"github.com/julianstephens/orbit/internal/models"
)

// RenderHistory draws the history screen: one line per window day plus the
// streaks, the mood distribution and recent highlights.
func RenderHistory(s metrics.Summary, today time.Time) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Last %d days", len(s.Window))))
	b.WriteString("\n")
	for _, slot := range s.Window {
		b.WriteString(renderDayLine(slot, today))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Mood streak: %s   Task streak: %s\n",
		streak(s.MoodStreak), streak(s.TaskStreak)))
	if s.TasksTotal > 0 {
		b.WriteString(fmt.Sprintf("Tasks completed: %d of %d\n", s.TasksCompleted, s.TasksTotal))
	}

	b.WriteString("\n")
	b.WriteString(RenderDistribution(s.Frequency, s.MostCommon, s.HasMostCommon))

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Recent activity"))
	b.WriteString("\n")
	shown := false
	for _, slot := range s.Recent {
		if len(slot.Record.Highlights) == 0 {
			continue
		}
		shown = true
		b.WriteString(titleStyle.Render(relativeDay(slot.Date, today)))
		b.WriteString("\n")
		for _, h := range slot.Record.Highlights {
			b.WriteString("  • " + h + "\n")
		}
	}
	if !shown {
		b.WriteString(subtleStyle.Render("No data yet."))
		b.WriteString("\n")
	}
	return b.String()
}

func renderDayLine(slot metrics.DaySlot, today time.Time) string {
	label := fmt.Sprintf("%-10s", relativeDay(slot.Date, today))
	mood := subtleStyle.Render("–")
	if slot.Record.HasMood() {
		mood = slot.Record.Mood.Emoji + " " + slot.Record.Mood.Label
	}
	tasks := subtleStyle.Render("no tasks")
	if slot.Record.TasksTotal > 0 {
		tasks = fmt.Sprintf("%d/%d tasks", slot.Record.TasksCompleted, slot.Record.TasksTotal)
		if slot.Record.AllTasksDone() {
			tasks = goodStyle.Render(tasks + " ✓")
		}
	}
	return fmt.Sprintf("  %s %s  %s  %s", slot.Date.Format("Mon Jan 02"), label, mood, tasks)
}

// RenderDistribution draws one bar per mood label in first-seen order.
func RenderDistribution(d metrics.Distribution, mostCommon string, ok bool) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Mood frequency"))
	b.WriteString("\n")
	if len(d.Order) == 0 {
		b.WriteString(subtleStyle.Render("No data yet."))
		b.WriteString("\n")
		return b.String()
	}
	for _, label := range d.Order {
		n := d.Counts[label]
		b.WriteString(fmt.Sprintf("  %s %-12s %s %d\n", models.MoodEmoji(label), label, strings.Repeat("█", n), n))
	}
	if ok {
		b.WriteString(fmt.Sprintf("Most common: %s %s\n", models.MoodEmoji(mostCommon), mostCommon))
	}
	return b.String()
}

// RenderWellness draws the breathing and journaling totals.
func RenderWellness(w metrics.WellnessStats) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Wellness"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Breathing: %d sessions, %d min\n", w.BreathingSessions, w.BreathingMinutes))
	b.WriteString(fmt.Sprintf("  Journal:   %d entries, %d words\n", w.JournalEntries, w.JournalWords))
	b.WriteString(fmt.Sprintf("  Active days: %d   Current streak: %s\n", w.ActiveDays, streak(w.CurrentStreak)))
	return b.String()
}

// RenderTasks lists tasks with a short id prefix for done/undo.
func RenderTasks(tasks []models.Task) string {
	if len(tasks) == 0 {
		return subtleStyle.Render("No tasks yet.") + "\n"
	}
	var b strings.Builder
	for _, t := range tasks {
		box := "[ ]"
		title := t.Title
		if t.Completed {
			box = goodStyle.Render("[✓]")
			title = subtleStyle.Render(title)
		}
		extra := []string{t.Category, string(t.Priority)}
		if t.Recurrence != models.RecurrenceNone {
			extra = append(extra, string(t.Recurrence))
		}
		if t.DueDate != nil {
			due := t.DueDate.Format("Jan 02")
			if t.DueTime != "" {
				due += " " + t.DueTime
			}
			extra = append(extra, "due "+due)
		}
		if t.IsMeeting {
			extra = append(extra, "meeting")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n", box, shortID(t.ID), title, subtleStyle.Render("("+strings.Join(extra, ", ")+")")))
	}
	return b.String()
}

// RenderMoods lists mood check-ins, newest first.
func RenderMoods(entries []models.MoodEntry, today time.Time, limit int) string {
	if len(entries) == 0 {
		return subtleStyle.Render("No data yet.") + "\n"
	}
	var b strings.Builder
	shown := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if limit > 0 && shown == limit {
			break
		}
		e := entries[i]
		when := relativeDay(e.Timestamp, today) + " " + e.Timestamp.In(today.Location()).Format("15:04")
		line := fmt.Sprintf("  %s %-12s %3.0f%%  %s", e.Emoji, e.Label, e.Confidence*100, subtleStyle.Render(when))
		if e.Context != "" {
			line += "  " + e.Context
		}
		b.WriteString(line + "\n")
		shown++
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func streak(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// relativeDay names a day relative to today: Today, Yesterday, N days ago,
// or the date beyond a week.
func relativeDay(t, today time.Time) string {
	loc := today.Location()
	y1, m1, d1 := t.In(loc).Date()
	y2, m2, d2 := today.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	diff := int(b.Sub(a).Hours() / 24)
	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Yesterday"
	case diff > 1 && diff <= 7:
		return fmt.Sprintf("%d days ago", diff)
	default:
		return t.In(loc).Format("2006-01-02")
	}
}
