package metrics

// Distribution counts mood labels. Order lists labels by first appearance in
// chronological order so rendering is stable.
type Distribution struct {
	Counts map[string]int
	Order  []string
}

// Total is the number of days that contributed a mood.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d.Counts {
		total += c
	}
	return total
}

// MoodFrequency counts mood labels over the slots. Days without a mood do
// not contribute.
func MoodFrequency(slots []DaySlot) Distribution {
	d := Distribution{Counts: make(map[string]int)}
	for _, s := range slots {
		label := s.MoodLabel()
		if label == "" {
			continue
		}
		if d.Counts[label] == 0 {
			d.Order = append(d.Order, label)
		}
		d.Counts[label]++
	}
	return d
}

// MostCommonMood returns the most frequent label in the slots. On a tie the
// winner is the label that reached the top count first when scanning oldest
// to newest. ok is false when no day has a mood.
func MostCommonMood(slots []DaySlot) (label string, ok bool) {
	counts := make(map[string]int)
	best := 0
	for _, s := range slots {
		l := s.MoodLabel()
		if l == "" {
			continue
		}
		counts[l]++
		if counts[l] > best {
			best = counts[l]
			label = l
		}
	}
	return label, best > 0
}
