package models

import "time"

// MoodEntry is one mood check-in. Timestamp only decides which day it lands on.
type MoodEntry struct {
	ID         string
	Emoji      string
	Label      string
	Confidence float64
	Timestamp  time.Time
	Context    string
}

type JournalEntry struct {
	ID        string
	Text      string
	WordCount int
	Mood      string
	CreatedAt time.Time
}

// BreathingSession is a completed breathing exercise.
type BreathingSession struct {
	ID          string
	Exercise    string
	Cycles      int
	Seconds     int
	CompletedAt time.Time
}
