package moods

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/orbit/internal/affirmations"
	"github.com/julianstephens/orbit/internal/cli"
	apperrors "github.com/julianstephens/orbit/internal/errors"
	"github.com/julianstephens/orbit/internal/logger"
	"github.com/julianstephens/orbit/internal/models"
	"github.com/julianstephens/orbit/internal/recorder"
	"github.com/julianstephens/orbit/internal/tui"
)

type MoodLogCmd struct {
	Label      string  `arg:"" help:"Mood (Happy, Calm, Sad, Stressed, Anxious, Lonely, Angry, Depressed, Grieving, Traumatized, Crisis, Mixed)."`
	Emoji      string  `help:"Emoji to show instead of the default for the mood."`
	Confidence float64 `short:"c" help:"How sure you are, between 0 and 1." default:"1"`
	Note       string  `short:"n" help:"What is going on."`
}

func (c *MoodLogCmd) Run(ctx *cli.Context) error {
	return record(ctx, c.Label, c.Emoji, c.Confidence, c.Note)
}

func record(ctx *cli.Context, label, emoji string, confidence float64, note string) error {
	entry, err := recorder.Mood(label, emoji, confidence, ctx.History.Now(), note)
	if err != nil {
		return err
	}
	ctx.Report(ctx.History.RecordMood(entry))

	fmt.Printf("✓ Mood logged: %s %s\n", entry.Emoji, entry.Label)
	fmt.Printf("  %s\n", affirmations.Next(entry.Label, ctx.History.Today().YearDay()))
	return nil
}

type MoodAnalyzeCmd struct {
	Text   []string `arg:"" help:"How you feel, in your own words."`
	DryRun bool     `help:"Show the analysis without logging it."`
}

func (c *MoodAnalyzeCmd) Run(ctx *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if text == "" {
		return fmt.Errorf("%w: nothing to analyze", apperrors.ErrInvalidEvent)
	}
	if ctx.Analyzer == nil {
		return cli.Degrade(fmt.Errorf("%w: set an API key with 'orbit key set'", apperrors.ErrAnalysisUnavailable))
	}

	res, err := ctx.Analyzer.Analyze(ctx.Context(), text)
	if err != nil {
		logger.Warn("Mood analysis failed", "error", err)
		return cli.Degrade(err)
	}

	fmt.Printf("%s %s (%.0f%% confidence)\n", res.Emoji, res.PrimaryMood, res.Confidence*100)
	if res.Insight != "" {
		fmt.Printf("  %s\n", res.Insight)
	}
	if c.DryRun {
		return nil
	}
	return record(ctx, res.PrimaryMood, res.Emoji, res.Confidence, text)
}

type MoodPickCmd struct{}

func (c *MoodPickCmd) Run(ctx *cli.Context) error {
	var label, note string

	options := make([]huh.Option[string], 0, len(models.MoodLabels()))
	for _, l := range models.MoodLabels() {
		options = append(options, huh.NewOption(models.MoodEmoji(l)+" "+l, l))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(options...).
				Value(&label),
			huh.NewInput().
				Title("Anything you want to note?").
				Value(&note),
		),
	)
	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			fmt.Println("Cancelled.")
			return nil
		}
		return err
	}
	return record(ctx, label, "", 1, note)
}

type MoodListCmd struct {
	Limit int `short:"l" help:"Number of check-ins to show (0 for all)." default:"10"`
}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	fmt.Print(tui.RenderMoods(ctx.History.Moods(), ctx.History.Today(), c.Limit))
	return nil
}
