package sound

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
	"github.com/hashicorp-forge/soundboard/pkg/builder"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

type EditCommand struct {
	*base.Command

	flagGuild          snowflake.GuildID
	flagSound          snowflake.SoundID
	flagName           string
	flagVolume         float64
	flagEmojiID        snowflake.EmojiID
	flagEmojiName      string
	flagClearEmojiID   bool
	flagClearEmojiName bool
	flagReason         string
	flagValidate       bool
}

func (c *EditCommand) Synopsis() string {
	return "Change an existing soundboard sound"
}

func (c *EditCommand) Help() string {
	return `Usage: soundctl sound edit -guild=<id> -sound=<id> [options]

  This command changes only the fields given as flags. Fields without a
  flag keep their current value. Use -clear-emoji-id or -clear-emoji-name
  to remove an emoji.` +
		c.Flags().Help()
}

func (c *EditCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("edit", flag.ContinueOnError))
	c.AddClientFlags(f)

	base.IDVar(f, &c.flagGuild, "guild", "(Required) Guild owning the sound.")
	base.IDVar(f, &c.flagSound, "sound", "(Required) Sound to change.")
	f.StringVar(&c.flagName, base.FlagName(fieldName), "", "New name.")
	f.Float64Var(&c.flagVolume, base.FlagName(fieldVolume), 1, "New playback volume from 0 to 1.")
	base.IDVar(f, &c.flagEmojiID, base.FlagName(fieldEmojiID), "New custom emoji.")
	f.StringVar(&c.flagEmojiName, base.FlagName(fieldEmojiName), "", "New unicode emoji.")
	f.BoolVar(&c.flagClearEmojiID, "clear-"+base.FlagName(fieldEmojiID), false, "Remove the custom emoji.")
	f.BoolVar(&c.flagClearEmojiName, "clear-"+base.FlagName(fieldEmojiName), false, "Remove the unicode emoji.")
	f.StringVar(&c.flagReason, "reason", "", "Reason recorded in the guild audit log.")
	f.BoolVar(&c.flagValidate, "validate", false, "Check field bounds locally before sending.")

	return f
}

func (c *EditCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagGuild == 0 {
		ui.Error("guild flag is required")
		return 1
	}
	if c.flagSound == 0 {
		ui.Error("sound flag is required")
		return 1
	}
	if c.flagClearEmojiID && flags.IsSet(base.FlagName(fieldEmojiID)) {
		ui.Error("emoji-id and clear-emoji-id cannot be used together")
		return 1
	}
	if c.flagClearEmojiName && flags.IsSet(base.FlagName(fieldEmojiName)) {
		ui.Error("emoji-name and clear-emoji-name cannot be used together")
		return 1
	}

	b := builder.NewEditSoundboardSound()
	if flags.IsSet(base.FlagName(fieldName)) {
		b = b.Name(c.flagName)
	}
	if flags.IsSet(base.FlagName(fieldVolume)) {
		b = b.Volume(c.flagVolume)
	}
	if flags.IsSet(base.FlagName(fieldEmojiID)) {
		b = b.EmojiID(c.flagEmojiID)
	}
	if flags.IsSet(base.FlagName(fieldEmojiName)) {
		b = b.EmojiName(c.flagEmojiName)
	}
	if c.flagClearEmojiID {
		b = b.ClearEmojiID()
	}
	if c.flagClearEmojiName {
		b = b.ClearEmojiName()
	}
	if c.flagReason != "" {
		b = b.AuditLogReason(c.flagReason)
	}

	if c.flagValidate {
		if err := b.Validate(); err != nil {
			ui.Error(fmt.Sprintf("invalid request: %v", err))
			return 1
		}
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	defer c.Close()

	ctx, cancel := c.Context()
	defer cancel()

	updated, err := b.Execute(ctx, client, c.flagGuild, c.flagSound)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	logger.Info("updated soundboard sound",
		"guild_id", c.flagGuild,
		"sound_id", updated.ID,
	)

	return c.Output(updated)
}
