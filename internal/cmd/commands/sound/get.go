package sound

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
	"github.com/hashicorp-forge/soundboard/pkg/soundboard"
)

type GetCommand struct {
	*base.Command

	flagGuild snowflake.GuildID
	flagSound snowflake.SoundID
}

func (c *GetCommand) Synopsis() string {
	return "Show one soundboard sound"
}

func (c *GetCommand) Help() string {
	return `Usage: soundctl sound get -guild=<id> -sound=<id>` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ContinueOnError))
	c.AddClientFlags(f)

	base.IDVar(f, &c.flagGuild, "guild", "(Required) Guild owning the sound.")
	base.IDVar(f, &c.flagSound, "sound", "(Required) Sound to show.")

	return f
}

func (c *GetCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
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

	sound, err := soundboard.Get(ctx, client, c.flagGuild, c.flagSound)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return c.Output(sound)
}

type ListCommand struct {
	*base.Command

	flagGuild snowflake.GuildID
}

func (c *ListCommand) Synopsis() string {
	return "List the soundboard sounds of a guild"
}

func (c *ListCommand) Help() string {
	return `Usage: soundctl sound list -guild=<id>` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))
	c.AddClientFlags(f)

	base.IDVar(f, &c.flagGuild, "guild", "(Required) Guild to list.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagGuild == 0 {
		ui.Error("guild flag is required")
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

	sounds, err := soundboard.List(ctx, client, c.flagGuild)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return c.Output(sounds)
}

type DefaultsCommand struct {
	*base.Command
}

func (c *DefaultsCommand) Synopsis() string {
	return "List the built-in soundboard sounds"
}

func (c *DefaultsCommand) Help() string {
	return `Usage: soundctl sound defaults

  This command lists the sounds every user can play without a guild.` +
		c.Flags().Help()
}

func (c *DefaultsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("defaults", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *DefaultsCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
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

	sounds, err := soundboard.ListDefault(ctx, client)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return c.Output(sounds)
}
