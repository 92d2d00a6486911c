package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/orbit/internal/cli"
)

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Erase all history, tasks, moods, journal entries and breathing sessions?").
					Description("A backup is made first.").
					Affirmative("Erase").
					Negative("Keep").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			if err == huh.ErrUserAborted {
				fmt.Println("Reset cancelled.")
				return nil
			}
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	ctx.Report(ctx.History.Reset())
	fmt.Println("✓ All data cleared")
	return nil
}
