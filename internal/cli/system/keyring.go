package system

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/orbit/internal/cli"
	"github.com/julianstephens/orbit/internal/keyring"
)

// KeySetCmd stores the mood analysis API key in the OS keyring
type KeySetCmd struct {
	Key string `arg:"" optional:"" help:"API key. Prompted for when omitted."`
}

func (cmd *KeySetCmd) Run(ctx *cli.Context) error {
	key := cmd.Key
	if key == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("OpenAI API key").
					EchoMode(huh.EchoModePassword).
					Value(&key),
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

	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}

	fmt.Println("✓ API key stored successfully in OS keyring")
	fmt.Println("  'orbit mood analyze' will use it when no --openai-key is given")
	return nil
}

// KeyDeleteCmd removes the API key from the OS keyring
type KeyDeleteCmd struct{}

func (cmd *KeyDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return err
	}

	fmt.Println("✓ API key removed from OS keyring")
	return nil
}
