package sound

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
	"github.com/hashicorp-forge/soundboard/pkg/soundboard"
)

type DeleteCommand struct {
	*base.Command

	flagGuild  snowflake.GuildID
	flagSound  snowflake.SoundID
	flagReason string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a soundboard sound"
}

func (c *DeleteCommand) Help() string {
	return `Usage: soundctl sound delete -guild=<id> -sound=<id> [-reason=<text>]` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))
	c.AddClientFlags(f)

	base.IDVar(f, &c.flagGuild, "guild", "(Required) Guild owning the sound.")
	base.IDVar(f, &c.flagSound, "sound", "(Required) Sound to delete.")
	f.StringVar(&c.flagReason, "reason", "", "Reason recorded in the guild audit log.")

	return f
}

func (c *DeleteCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagGuild == 0 || c.flagSound == 0 {
		ui.Error("guild and sound flags are required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	defer c.Close()

	ctx, cancel := c.Context()
	defer cancel()

	if err := soundboard.Delete(ctx, client, c.flagGuild, c.flagSound, c.flagReason); err != nil {
		ui.Error(err.Error())
		return 1
	}
	logger.Info("deleted soundboard sound",
		"guild_id", c.flagGuild,
		"sound_id", c.flagSound,
	)
	return 0
}
