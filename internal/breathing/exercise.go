// Package breathing holds the guided breathing exercises and the per-second
// countdown that walks through them.
package breathing

import (
	"fmt"
	"strings"

	apperrors "github.com/julianstephens/orbit/internal/errors"
)

type Phase string

const (
	PhaseInhale Phase = "Inhale"
	PhaseHold   Phase = "Hold"
	PhaseExhale Phase = "Exhale"
)

// Step is one phase of a cycle. Duration is in seconds.
type Step struct {
	Phase       Phase
	Duration    int
	Instruction string
}

type Exercise struct {
	Key         string
	Title       string
	Description string
	Icon        string
	Steps       []Step
	Cycles      int
}

// CycleSeconds is the length of one pass through the steps.
func (e Exercise) CycleSeconds() int {
	total := 0
	for _, s := range e.Steps {
		total += s.Duration
	}
	return total
}

// TotalSeconds is the length of the whole exercise.
func (e Exercise) TotalSeconds() int {
	return e.CycleSeconds() * e.Cycles
}

var catalogue = []Exercise{
	{
		Key:         "4-7-8",
		Title:       "4-7-8 Breathing",
		Description: "Calms anxiety & promotes sleep",
		Icon:        "🌙",
		Steps: []Step{
			{Phase: PhaseInhale, Duration: 4, Instruction: "Inhale quietly through your nose"},
			{Phase: PhaseHold, Duration: 7, Instruction: "Hold your breath"},
			{Phase: PhaseExhale, Duration: 8, Instruction: "Exhale through your mouth"},
		},
		Cycles: 4,
	},
	{
		Key:         "box",
		Title:       "Box Breathing",
		Description: "Navy SEAL technique for focus",
		Icon:        "🎯",
		Steps: []Step{
			{Phase: PhaseInhale, Duration: 4, Instruction: "Inhale through your nose"},
			{Phase: PhaseHold, Duration: 4, Instruction: "Hold your breath"},
			{Phase: PhaseExhale, Duration: 4, Instruction: "Exhale through your mouth"},
			{Phase: PhaseHold, Duration: 4, Instruction: "Hold empty lungs"},
		},
		Cycles: 4,
	},
	{
		Key:         "deep",
		Title:       "Deep Breathing",
		Description: "Reduces stress & increases oxygen",
		Icon:        "🫁",
		Steps: []Step{
			{Phase: PhaseInhale, Duration: 4, Instruction: "Inhale deeply through your nose"},
			{Phase: PhaseExhale, Duration: 6, Instruction: "Exhale slowly through your mouth"},
		},
		Cycles: 6,
	},
}

// Exercises returns the catalogue in display order.
func Exercises() []Exercise {
	out := make([]Exercise, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds an exercise by key or title, case-insensitively.
func Lookup(name string) (Exercise, error) {
	name = strings.TrimSpace(name)
	for _, e := range catalogue {
		if strings.EqualFold(e.Key, name) || strings.EqualFold(e.Title, name) {
			return e, nil
		}
	}
	return Exercise{}, fmt.Errorf("%w: unknown breathing exercise %q", apperrors.ErrNotFound, name)
}
