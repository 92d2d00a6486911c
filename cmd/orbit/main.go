package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/orbit/internal/analysis"
	"github.com/julianstephens/orbit/internal/cli"
	"github.com/julianstephens/orbit/internal/cli/backups"
	"github.com/julianstephens/orbit/internal/cli/insights"
	"github.com/julianstephens/orbit/internal/cli/moods"
	"github.com/julianstephens/orbit/internal/cli/system"
	"github.com/julianstephens/orbit/internal/cli/tasks"
	"github.com/julianstephens/orbit/internal/cli/wellness"
	"github.com/julianstephens/orbit/internal/constants"
	apperrors "github.com/julianstephens/orbit/internal/errors"
	"github.com/julianstephens/orbit/internal/history"
	"github.com/julianstephens/orbit/internal/keyring"
	"github.com/julianstephens/orbit/internal/kv"
	"github.com/julianstephens/orbit/internal/logger"
	"github.com/julianstephens/orbit/internal/storage"
	"github.com/julianstephens/orbit/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	DataDir  string `help:"Directory holding orbit data and logs." env:"ORBIT_DATA_DIR" default:"~/.config/orbit"`
	Backend  string `help:"Storage backend (json|sqlite|memory)." env:"ORBIT_BACKEND" default:"sqlite" enum:"json,sqlite,memory"`
	Timezone string `help:"IANA timezone that decides day boundaries." env:"ORBIT_TIMEZONE" default:"Local"`
	Debug    bool   `help:"Log debug output to stderr."`

	OpenAIKey     string `name:"openai-key" help:"API key for mood analysis. Falls back to the OS keyring." env:"ORBIT_OPENAI_API_KEY"`
	OpenAIBaseURL string `name:"openai-base-url" help:"OpenAI-compatible endpoint." env:"ORBIT_OPENAI_BASE_URL"`
	OpenAIModel   string `name:"openai-model" help:"Model used for mood analysis." env:"ORBIT_OPENAI_MODEL" default:"gpt-4o-mini"`

	Mood struct {
		Log     moods.MoodLogCmd     `cmd:"" help:"Log how you feel." default:"withargs"`
		Analyze moods.MoodAnalyzeCmd `cmd:"" help:"Describe your day and let orbit name the mood."`
		Pick    moods.MoodPickCmd    `cmd:"" help:"Pick a mood interactively."`
		List    moods.MoodListCmd    `cmd:"" help:"List recent mood check-ins."`
	} `cmd:"" help:"Mood check-ins."`
	Task struct {
		Add  tasks.TaskAddCmd  `cmd:"" help:"Add a new task."`
		Done tasks.TaskDoneCmd `cmd:"" help:"Mark a task as completed."`
		Undo tasks.TaskUndoCmd `cmd:"" help:"Mark a task as not completed."`
		List tasks.TaskListCmd `cmd:"" help:"List tasks." default:"1"`
	} `cmd:"" help:"Manage tasks."`
	Highlight insights.HighlightCmd `cmd:"" help:"Add a highlight to today."`
	History   insights.HistoryCmd   `cmd:"" help:"Show recent days, streaks and mood frequency." default:"1"`
	Stats     insights.StatsCmd     `cmd:"" help:"Show wellness totals."`
	Breathe   wellness.BreatheCmd   `cmd:"" help:"Run a guided breathing exercise."`
	Journal   wellness.JournalCmd   `cmd:"" help:"Write a journal entry."`
	Affirm    wellness.AffirmCmd    `cmd:"" help:"Show an affirmation for your mood."`
	Reset     system.ResetCmd       `cmd:"" help:"Erase all data (a backup is made first)."`
	Backup    struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
	Key struct {
		Set    system.KeySetCmd    `cmd:"" help:"Store the mood analysis API key in the OS keyring."`
		Delete system.KeyDeleteCmd `cmd:"" help:"Remove the API key from the OS keyring."`
	} `cmd:"" help:"Manage the mood analysis API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Mood, tasks, breathing and journaling, rolled up by day"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, constants.DefaultConfigFile),
		kong.Vars{"version": constants.Version},
	)

	dataDir := cli.ExpandHome(CLI.DataDir)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		apperrors.Fatal(fmt.Errorf("invalid timezone %q: %w", CLI.Timezone, err))
	}

	store, err := cli.OpenStore(CLI.Backend, dataDir)
	if err != nil {
		// Changes stay in memory for this run
		logger.Warn("Storage unavailable, using memory", "backend", CLI.Backend, "error", err)
		fmt.Fprintf(os.Stderr, "⚠️  Storage unavailable (%v). Changes will not be saved.\n", err)
		store = kv.NewMemoryStore()
	}
	defer store.Close()

	svc := history.New(storage.NewRepository(store, loc))
	if res := svc.Load(); res.Failed() {
		logger.Warn("History could not be loaded", "reason", res.Reason)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCtx := &cli.Context{
		History:  svc,
		Store:    store,
		Analyzer: newAnalyzer(),
		Ctx:      runCtx,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// newAnalyzer returns nil when no API key is available so commands can
// degrade to manual mood logging.
func newAnalyzer() analysis.Analyzer {
	a, err := analysis.NewOpenAIAnalyzer(analysis.Config{
		APIKey:  keyring.ResolveAPIKey(CLI.OpenAIKey),
		BaseURL: CLI.OpenAIBaseURL,
		Model:   CLI.OpenAIModel,
	})
	if err != nil {
		logger.Debug("Mood analysis disabled", "error", err)
		return nil
	}
	return a
}
