package metrics

// MoodStreak counts the trailing days of an ascending window that carry
// today's mood label. It stops at the first day with no mood or a different
// label, and is 0 when today has no mood.
func MoodStreak(slots []DaySlot) int {
	streak := 0
	current := ""
	for i := len(slots) - 1; i >= 0; i-- {
		label := slots[i].MoodLabel()
		if label == "" {
			break
		}
		if current != "" && label != current {
			break
		}
		current = label
		streak++
	}
	return streak
}

// TaskStreak counts the trailing days on which at least one task was
// registered and every task was completed.
func TaskStreak(slots []DaySlot) int {
	streak := 0
	for i := len(slots) - 1; i >= 0; i-- {
		if !slots[i].Record.AllTasksDone() {
			break
		}
		streak++
	}
	return streak
}
