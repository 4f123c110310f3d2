package sound

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

type URLCommand struct {
	*base.Command

	flagSound snowflake.SoundID
	flagOpen  bool
}

func (c *URLCommand) Synopsis() string {
	return "Print the CDN link of a sound file"
}

func (c *URLCommand) Help() string {
	return `Usage: soundctl sound url -sound=<id> [-open]

  This command prints where the audio of a sound can be downloaded. It
  does not contact the API.` +
		c.Flags().Help()
}

func (c *URLCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("url", flag.ContinueOnError))

	base.IDVar(f, &c.flagSound, "sound", "(Required) Sound to link.")
	f.BoolVar(&c.flagOpen, "open", false, "Open the link in the default browser.")

	return f
}

func (c *URLCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagSound == 0 {
		ui.Error("sound flag is required")
		return 1
	}

	link := c.flagSound.URL()
	ui.Output(link)

	if c.flagOpen {
		if err := c.OpenURL(link); err != nil {
			ui.Error(fmt.Sprintf("error opening browser: %v", err))
			return 1
		}
	}
	return 0
}
