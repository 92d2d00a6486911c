package insights

import (
	"fmt"
	"strings"

	"github.com/julianstephens/orbit/internal/cli"
	"github.com/julianstephens/orbit/internal/constants"
	"github.com/julianstephens/orbit/internal/metrics"
	"github.com/julianstephens/orbit/internal/tui"
)

type HistoryCmd struct {
	Days   int `short:"d" help:"Number of days to show, ending today." default:"7"`
	Recent int `short:"r" help:"Number of days in recent activity." default:"3"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	today := ctx.History.Today()
	summary := metrics.Summarize(ctx.History.GetAll(), today, c.Days, c.Recent)
	fmt.Print(tui.RenderHistory(summary, today))
	return nil
}

type StatsCmd struct {
	Days int `short:"d" help:"Number of days in the mood distribution." default:"30"`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	today := ctx.History.Today()
	records := ctx.History.GetAll()

	window := metrics.WindowSlice(records, today, c.Days)
	label, ok := metrics.MostCommonMood(window)

	fmt.Print(tui.RenderWellness(metrics.Wellness(ctx.History.Journal(), ctx.History.BreathingSessions(), today)))
	fmt.Println()
	fmt.Printf("Last %d days: mood streak %d, task streak %d\n", c.Days, metrics.MoodStreak(window), metrics.TaskStreak(window))
	fmt.Print(tui.RenderDistribution(metrics.MoodFrequency(window), label, ok))
	return nil
}

type HighlightCmd struct {
	Text []string `arg:"" help:"Something worth remembering about today."`
}

func (c *HighlightCmd) Run(ctx *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if text == "" {
		return fmt.Errorf("highlight text is empty")
	}
	ctx.Report(ctx.History.AddHighlight(text))
	fmt.Printf("✓ Highlight added for %s\n", ctx.History.Today().Format(constants.DateFormat))
	return nil
}
