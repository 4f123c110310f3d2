package sound

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
	"github.com/hashicorp-forge/soundboard/pkg/builder"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

type SendCommand struct {
	*base.Command

	flagChannel     snowflake.ChannelID
	flagSound       snowflake.SoundID
	flagSourceGuild snowflake.GuildID
}

func (c *SendCommand) Synopsis() string {
	return "Play a soundboard sound in a voice channel"
}

func (c *SendCommand) Help() string {
	return `Usage: soundctl sound send -channel=<id> -sound=<id> [options]

  This command plays a sound in a voice channel the bot is connected to.
  Sounds from another guild need -source-guild-id.` +
		c.Flags().Help()
}

func (c *SendCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("send", flag.ContinueOnError))
	c.AddClientFlags(f)

	base.IDVar(f, &c.flagChannel, "channel", "(Required) Voice channel to play in.")
	base.IDVar(f, &c.flagSound, "sound", "(Required) Sound to play.")
	base.IDVar(f, &c.flagSourceGuild, base.FlagName(fieldSourceGuildID), "Guild the sound belongs to.")

	return f
}

func (c *SendCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagChannel == 0 {
		ui.Error("channel flag is required")
		return 1
	}
	if c.flagSound == 0 {
		ui.Error("sound flag is required")
		return 1
	}

	b := builder.NewSendSoundboardSound(c.flagSound)
	if flags.IsSet(base.FlagName(fieldSourceGuildID)) {
		b = b.SourceGuildID(c.flagSourceGuild)
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	defer c.Close()

	ctx, cancel := c.Context()
	defer cancel()

	if err := b.Execute(ctx, client, c.flagChannel); err != nil {
		ui.Error(err.Error())
		return 1
	}
	logger.Info("sent soundboard sound",
		"channel_id", c.flagChannel,
		"sound_id", c.flagSound,
	)

	return 0
}
