// Package metrics derives read-only views from the daily rollup. Nothing is
// cached; every function recomputes from the records it is given.
package metrics

import (
	"iter"
	"slices"
	"time"

	"github.com/julianstephens/orbit/internal/models"
	"github.com/julianstephens/orbit/internal/utils"
)

// DaySlot is one calendar day of a window. Found is false for gap days, in
// which case Record is an empty record dated Date.
type DaySlot struct {
	Date   time.Time
	Record models.DailyRecord
	Found  bool
}

// MoodLabel returns the day's mood label, or "" when none was logged.
func (d DaySlot) MoodLabel() string {
	if !d.Record.HasMood() {
		return ""
	}
	return d.Record.Mood.Label
}

// Window yields exactly n days ending on today's calendar day, oldest first.
// Each slot carries the record whose date is that exact day, if any. The loop
// can be ranged over more than once; each pass re-reads records.
func Window(records []models.DailyRecord, today time.Time, n int) iter.Seq[DaySlot] {
	return func(yield func(DaySlot) bool) {
		if n <= 0 {
			return
		}
		loc := today.Location()
		end := utils.StartOfDay(today, loc)

		byDay := make(map[int64]models.DailyRecord, len(records))
		for _, r := range records {
			key := utils.StartOfDay(r.Date, loc).Unix()
			if _, dup := byDay[key]; !dup {
				byDay[key] = r
			}
		}

		for i := n - 1; i >= 0; i-- {
			day := utils.AddDays(end, -i)
			slot := DaySlot{Date: day}
			if r, ok := byDay[day.Unix()]; ok {
				slot.Record = r.Clone()
				slot.Found = true
			} else {
				slot.Record = models.DailyRecord{Date: day, Highlights: []string{}}
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// WindowSlice collects Window into a slice.
func WindowSlice(records []models.DailyRecord, today time.Time, n int) []DaySlot {
	return slices.Collect(Window(records, today, n))
}

// RecentActivity returns the last k slots of an ascending window, most
// recent first.
func RecentActivity(slots []DaySlot, k int) []DaySlot {
	if k <= 0 {
		return []DaySlot{}
	}
	if k > len(slots) {
		k = len(slots)
	}
	out := slices.Clone(slots[len(slots)-k:])
	slices.Reverse(out)
	return out
}
