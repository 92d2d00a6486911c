// Package tui holds the interactive breathing view and the lipgloss
// renderers used by the CLI.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/orbit/internal/breathing"
)

const guideWidth = 20

type tickMsg time.Time

// BreathingModel drives a breathing.Session once per second.
type BreathingModel struct {
	session  *breathing.Session
	keys     KeyMap
	help     help.Model
	progress progress.Model
	interval time.Duration
	quitting bool
}

// NewBreathingModel ticks s every interval, or every second when interval
// is not positive.
func NewBreathingModel(s *breathing.Session, interval time.Duration) BreathingModel {
	if interval <= 0 {
		interval = time.Second
	}
	return BreathingModel{
		session:  s,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		interval: interval,
	}
}

func (m BreathingModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m BreathingModel) Init() tea.Cmd {
	m.session.Start()
	return m.tick()
}

func (m BreathingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-8, 60)
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.session.Tick()
		if m.session.Finished() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.session.Pause()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.session.State() == breathing.StateRunning {
				m.session.Pause()
			} else {
				m.session.Start()
			}
		case key.Matches(msg, m.keys.Reset):
			m.session.Reset()
			m.session.Start()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m BreathingModel) View() string {
	if m.quitting {
		return ""
	}

	e := m.session.Exercise()
	step := m.session.Step()

	status := fmt.Sprintf("Cycle %d of %d", m.session.Cycle(), e.Cycles)
	if m.session.State() == breathing.StatePaused {
		status += "  " + warningStyle.Render("paused")
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(e.Icon+" "+e.Title),
		subtleStyle.Render(e.Description),
		"",
		phaseStyle(step.Phase).Render(string(step.Phase))+countdownStyle.Render(fmt.Sprintf("%ds", m.session.Remaining())),
		step.Instruction,
		phaseStyle(step.Phase).Render(guide(m.session.Scale())),
		"",
		status,
		m.progress.ViewAs(m.session.Progress()),
		"",
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}

// guide draws a bar whose length follows the breathing scale (1 to 1.6).
func guide(scale float64) string {
	n := int((scale - 1) / 0.6 * guideWidth)
	n = max(1, min(n, guideWidth))
	return strings.Repeat("●", n) + strings.Repeat("·", guideWidth-n)
}

// RunBreathing shows the breathing view until the exercise finishes, the
// user quits or ctx is cancelled. It reports whether the exercise finished.
func RunBreathing(ctx context.Context, s *breathing.Session, interval time.Duration) (bool, error) {
	p := tea.NewProgram(NewBreathingModel(s, interval), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			s.Pause()
			return false, ctx.Err()
		}
		return false, err
	}
	return s.Finished(), nil
}
