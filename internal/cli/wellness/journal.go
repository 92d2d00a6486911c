package wellness

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/orbit/internal/affirmations"
	"github.com/julianstephens/orbit/internal/cli"
	"github.com/julianstephens/orbit/internal/recorder"
)

type JournalCmd struct {
	Text []string `arg:"" optional:"" help:"Entry text. Opens an editor prompt when omitted."`
	Mood string   `short:"m" help:"Mood to tag the entry with."`
}

func (c *JournalCmd) Run(ctx *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if text == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title("What's on your mind?").
					CharLimit(4000).
					Value(&text),
			),
		)
		if err := form.Run(); err != nil {
			if err == huh.ErrUserAborted {
				fmt.Println("Cancelled.")
				return nil
			}
			return err
		}
	}

	entry, err := recorder.Journal(text, c.Mood, ctx.History.Now())
	if err != nil {
		return err
	}
	ctx.Report(ctx.History.RecordJournal(entry))
	fmt.Printf("✓ Journal entry saved (%d words)\n", entry.WordCount)
	return nil
}

type AffirmCmd struct {
	Mood  string `short:"m" help:"Mood to pick an affirmation for. Defaults to today's mood."`
	Index int    `short:"i" help:"Pick a specific affirmation instead of today's." default:"-1"`
}

func (c *AffirmCmd) Run(ctx *cli.Context) error {
	fmt.Println(c.pick(ctx))
	return nil
}

func (c *AffirmCmd) pick(ctx *cli.Context) string {
	mood := c.Mood
	if mood == "" {
		today := ctx.History.Today()
		for _, r := range ctx.History.GetAll() {
			if r.Date.Equal(today) && r.HasMood() {
				mood = r.Mood.Label
				break
			}
		}
	}
	i := c.Index
	if i < 0 {
		i = ctx.History.Today().YearDay()
	}
	return affirmations.Next(mood, i)
}
