package breathing

import (
	"context"
	"errors"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "idle"
	}
}

// Session is the countdown through one exercise. It advances only on Tick,
// one second per call, so callers own the clock.
type Session struct {
	exercise Exercise
	state    State
	step     int
	cycle    int
	left     int
	elapsed  int
}

func NewSession(e Exercise) *Session {
	return &Session{exercise: e, cycle: 1}
}

// Start begins the exercise from the first step, or resumes a paused one.
func (s *Session) Start() {
	switch s.state {
	case StateRunning:
		return
	case StatePaused:
		s.state = StateRunning
		return
	}
	s.step = 0
	s.cycle = 1
	s.elapsed = 0
	s.left = 0
	if len(s.exercise.Steps) > 0 {
		s.left = s.exercise.Steps[0].Duration
	}
	if s.left <= 0 || s.exercise.Cycles <= 0 {
		s.state = StateFinished
		return
	}
	s.state = StateRunning
}

func (s *Session) Pause() {
	if s.state == StateRunning {
		s.state = StatePaused
	}
}

// Reset returns to the idle state. Progress is discarded.
func (s *Session) Reset() {
	s.state = StateIdle
	s.step = 0
	s.cycle = 1
	s.left = 0
	s.elapsed = 0
}

// Tick advances one second. After the last second of a step it moves to the
// next step, and after the last step of the last cycle the session finishes.
// It reports whether the session is running after the tick.
func (s *Session) Tick() bool {
	if s.state != StateRunning {
		return false
	}
	s.elapsed++

	if s.left > 1 {
		s.left--
		return true
	}

	next := (s.step + 1) % len(s.exercise.Steps)
	if next == 0 {
		if s.cycle >= s.exercise.Cycles {
			s.state = StateFinished
			s.left = 0
			return false
		}
		s.cycle++
	}
	s.step = next
	s.left = s.exercise.Steps[next].Duration
	return true
}

func (s *Session) Exercise() Exercise { return s.exercise }
func (s *Session) State() State       { return s.state }
func (s *Session) Cycle() int         { return s.cycle }
func (s *Session) Remaining() int     { return s.left }

// Elapsed is the number of seconds ticked while running.
func (s *Session) Elapsed() int { return s.elapsed }

func (s *Session) Finished() bool { return s.state == StateFinished }

// Step returns the current step.
func (s *Session) Step() Step {
	if len(s.exercise.Steps) == 0 {
		return Step{}
	}
	return s.exercise.Steps[s.step]
}

// Progress is the completed share of the exercise in [0,1].
func (s *Session) Progress() float64 {
	total := s.exercise.TotalSeconds()
	if total == 0 || s.state == StateFinished {
		return 1
	}
	return float64(s.elapsed) / float64(total)
}

// Scale is the relative size of the breathing guide: it grows from 1 to 1.6
// while inhaling, stays full while holding and shrinks while exhaling.
func (s *Session) Scale() float64 {
	if s.state == StateIdle || s.state == StateFinished {
		return 1
	}
	step := s.Step()
	if step.Duration == 0 {
		return 1
	}
	done := float64(step.Duration-s.left) / float64(step.Duration)
	switch step.Phase {
	case PhaseInhale:
		return 1 + done*0.6
	case PhaseExhale:
		return 1.6 - done*0.6
	default:
		return 1.6
	}
}

// ErrTicksClosed is returned by Run when the tick source stops early.
var ErrTicksClosed = errors.New("tick source closed before the exercise finished")

// Run starts the session and ticks it once per value received on ticks
// until it finishes or ctx is cancelled. onTick, if set, sees every tick.
func Run(ctx context.Context, s *Session, ticks <-chan time.Time, onTick func(*Session)) error {
	s.Start()
	for !s.Finished() {
		select {
		case <-ctx.Done():
			s.Pause()
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return ErrTicksClosed
			}
			s.Tick()
			if onTick != nil {
				onTick(s)
			}
		}
	}
	return nil
}
