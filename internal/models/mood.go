package models

import "strings"

// Mood categories understood by the rollup and the analyzer.
const (
	MoodHappy       = "Happy"
	MoodSad         = "Sad"
	MoodStressed    = "Stressed"
	MoodAnxious     = "Anxious"
	MoodDepressed   = "Depressed"
	MoodLonely      = "Lonely"
	MoodAngry       = "Angry"
	MoodCalm        = "Calm"
	MoodGrieving    = "Grieving"
	MoodTraumatized = "Traumatized"
	MoodCrisis      = "Crisis"
	MoodMixed       = "Mixed"
)

var moodEmoji = map[string]string{
	MoodHappy:       "😊",
	MoodSad:         "😢",
	MoodStressed:    "😫",
	MoodAnxious:     "😰",
	MoodDepressed:   "😞",
	MoodLonely:      "🥺",
	MoodAngry:       "😠",
	MoodCalm:        "😌",
	MoodGrieving:    "💔",
	MoodTraumatized: "😶",
	MoodCrisis:      "🆘",
	MoodMixed:       "🤔",
}

// MoodLabels lists the categories in display order.
func MoodLabels() []string {
	return []string{
		MoodHappy, MoodCalm, MoodSad, MoodStressed, MoodAnxious, MoodLonely,
		MoodAngry, MoodDepressed, MoodGrieving, MoodTraumatized, MoodCrisis, MoodMixed,
	}
}

// CanonicalMood matches a label case-insensitively against the categories.
func CanonicalMood(label string) (string, bool) {
	label = strings.TrimSpace(label)
	for _, known := range MoodLabels() {
		if strings.EqualFold(known, label) {
			return known, true
		}
	}
	return "", false
}

// MoodEmoji returns the default emoji for a category, or "" when unknown.
func MoodEmoji(label string) string {
	return moodEmoji[label]
}
