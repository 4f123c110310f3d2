package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
	"github.com/hashicorp-forge/soundboard/internal/cmd/commands/invite"
	"github.com/hashicorp-forge/soundboard/internal/cmd/commands/sound"
	"github.com/hashicorp-forge/soundboard/internal/cmd/commands/version"
)

// commands returns the command factories keyed by their space separated
// path.
func commands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	return commandsWith(func() *base.Command {
		return base.New(log, ui)
	})
}

func commandsWith(newBase func() *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"sound": func() (cli.Command, error) {
			return &sound.Command{Command: newBase()}, nil
		},
		"sound create": func() (cli.Command, error) {
			return &sound.CreateCommand{Command: newBase()}, nil
		},
		"sound edit": func() (cli.Command, error) {
			return &sound.EditCommand{Command: newBase()}, nil
		},
		"sound send": func() (cli.Command, error) {
			return &sound.SendCommand{Command: newBase()}, nil
		},
		"sound get": func() (cli.Command, error) {
			return &sound.GetCommand{Command: newBase()}, nil
		},
		"sound list": func() (cli.Command, error) {
			return &sound.ListCommand{Command: newBase()}, nil
		},
		"sound defaults": func() (cli.Command, error) {
			return &sound.DefaultsCommand{Command: newBase()}, nil
		},
		"sound delete": func() (cli.Command, error) {
			return &sound.DeleteCommand{Command: newBase()}, nil
		},
		"sound url": func() (cli.Command, error) {
			return &sound.URLCommand{Command: newBase()}, nil
		},
		"invite": func() (cli.Command, error) {
			return &invite.Command{Command: newBase()}, nil
		},
		"invite create": func() (cli.Command, error) {
			return &invite.CreateCommand{Command: newBase()}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: newBase()}, nil
		},
	}
}
