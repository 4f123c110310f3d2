package sound

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
	"github.com/hashicorp-forge/soundboard/pkg/attachment"
	"github.com/hashicorp-forge/soundboard/pkg/builder"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

type CreateCommand struct {
	*base.Command

	flagGuild     snowflake.GuildID
	flagName      string
	flagFile      string
	flagVolume    float64
	flagEmojiID   snowflake.EmojiID
	flagEmojiName string
	flagReason    string
	flagValidate  bool
}

func (c *CreateCommand) Synopsis() string {
	return "Upload a new soundboard sound"
}

func (c *CreateCommand) Help() string {
	return `Usage: soundctl sound create -guild=<id> -name=<name> -file=<path> [options]

  This command uploads an audio file as a new soundboard sound in a guild
  and prints the created sound.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))
	c.AddClientFlags(f)

	base.IDVar(f, &c.flagGuild, "guild", "(Required) Guild to add the sound to.")
	f.StringVar(&c.flagName, base.FlagName(fieldName), "", "(Required) Name of the sound.")
	f.StringVar(&c.flagFile, "file", "", "(Required) Path to an MP3 or OGG file.")
	f.Float64Var(&c.flagVolume, base.FlagName(fieldVolume), 1, "Playback volume from 0 to 1.")
	base.IDVar(f, &c.flagEmojiID, base.FlagName(fieldEmojiID), "Custom emoji shown with the sound.")
	f.StringVar(&c.flagEmojiName, base.FlagName(fieldEmojiName), "", "Unicode emoji shown with the sound.")
	f.StringVar(&c.flagReason, "reason", "", "Reason recorded in the guild audit log.")
	f.BoolVar(&c.flagValidate, "validate", false, "Check field bounds locally before sending.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
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
	if c.flagName == "" {
		ui.Error("name flag is required")
		return 1
	}
	if c.flagFile == "" {
		ui.Error("file flag is required")
		return 1
	}

	sound, err := attachment.FromFile(c.FS, c.flagFile)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading sound file: %v", err))
		return 1
	}

	b := builder.NewCreateSoundboardSound(c.flagName, sound)
	if flags.IsSet(base.FlagName(fieldVolume)) {
		b = b.Volume(c.flagVolume)
	}
	if flags.IsSet(base.FlagName(fieldEmojiID)) {
		b = b.EmojiID(c.flagEmojiID)
	}
	if flags.IsSet(base.FlagName(fieldEmojiName)) {
		b = b.EmojiName(c.flagEmojiName)
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

	created, err := b.Execute(ctx, client, c.flagGuild)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	logger.Info("created soundboard sound",
		"guild_id", c.flagGuild,
		"sound_id", created.ID,
	)

	return c.Output(created)
}
