package wellness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/orbit/internal/breathing"
	"github.com/julianstephens/orbit/internal/cli"
	"github.com/julianstephens/orbit/internal/recorder"
	"github.com/julianstephens/orbit/internal/tui"
)

type BreatheCmd struct {
	Exercise string        `arg:"" optional:"" help:"Exercise to run (4-7-8, box, deep). Lists exercises when omitted."`
	Headless bool          `help:"Print the countdown instead of opening the interactive view."`
	Interval time.Duration `hidden:"" default:"1s" help:"Tick interval."`
}

func (c *BreatheCmd) Run(ctx *cli.Context) error {
	if c.Exercise == "" {
		listExercises()
		return nil
	}

	e, err := breathing.Lookup(c.Exercise)
	if err != nil {
		return err
	}
	s := breathing.NewSession(e)

	finished := false
	if c.Headless {
		err = c.runHeadless(ctx.Context(), s)
		finished = err == nil
	} else {
		finished, err = tui.RunBreathing(ctx.Context(), s, c.Interval)
	}
	if errors.Is(err, context.Canceled) {
		fmt.Println("Session stopped.")
		return nil
	}
	if err != nil {
		return err
	}
	if !finished {
		fmt.Println("Session not finished, nothing recorded.")
		return nil
	}

	session, err := recorder.Breathing(e.Title, e.Cycles, s.Elapsed(), ctx.History.Now())
	if err != nil {
		return err
	}
	ctx.Report(ctx.History.RecordBreathing(session))
	fmt.Printf("✓ %s complete: %d cycles, %ds\n", e.Title, session.Cycles, session.Seconds)
	return nil
}

func (c *BreatheCmd) runHeadless(ctx context.Context, s *breathing.Session) error {
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e := s.Exercise()
	fmt.Printf("%s %s (%d cycles)\n", e.Icon, e.Title, e.Cycles)

	// announce prints each step as it begins.
	announce := func(s *breathing.Session) {
		step := s.Step()
		if s.Finished() || s.Remaining() != step.Duration {
			return
		}
		fmt.Printf("  [%d/%d] %-6s %ds  %s\n", s.Cycle(), e.Cycles, step.Phase, step.Duration, step.Instruction)
	}

	s.Start()
	announce(s)
	return breathing.Run(ctx, s, ticker.C, announce)
}

func listExercises() {
	fmt.Println("Breathing exercises:")
	for _, e := range breathing.Exercises() {
		fmt.Printf("  %s %-16s %-6s %s, %d cycles (%ds)\n", e.Icon, e.Title, e.Key, e.Description, e.Cycles, e.TotalSeconds())
	}
	fmt.Println("\nRun one with: orbit breathe <exercise>")
}
