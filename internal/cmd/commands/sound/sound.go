package sound

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
)

// Wire keys of the soundboard sound payloads. Flags are named after them.
const (
	fieldName          = "name"
	fieldVolume        = "volume"
	fieldEmojiID       = "emoji_id"
	fieldEmojiName     = "emoji_name"
	fieldSourceGuildID = "source_guild_id"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage guild soundboard sounds"
}

func (c *Command) Help() string {
	return `Usage: soundctl sound <subcommand> [options] [args]

  This command groups subcommands for creating, editing, playing and
  inspecting soundboard sounds.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
