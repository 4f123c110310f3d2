package version

import (
	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
	"github.com/hashicorp-forge/soundboard/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the soundctl version"
}

func (c *Command) Help() string {
	return "Usage: soundctl version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output("soundctl v" + version.Version)
	return 0
}
