package invite

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage channel invites"
}

func (c *Command) Help() string {
	return `Usage: soundctl invite <subcommand> [options] [args]

  This command groups subcommands for channel invites.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
