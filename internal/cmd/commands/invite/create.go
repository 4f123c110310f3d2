package invite

import (
	"flag"
	"fmt"
	"math"

	"github.com/hashicorp-forge/soundboard/internal/cmd/base"
	"github.com/hashicorp-forge/soundboard/pkg/builder"
	"github.com/hashicorp-forge/soundboard/pkg/models"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

// Wire keys of the create invite payload. Flags are named after them.
const (
	fieldMaxAge              = "max_age"
	fieldMaxUses             = "max_uses"
	fieldTemporary           = "temporary"
	fieldUnique              = "unique"
	fieldTargetType          = "target_type"
	fieldTargetUserID        = "target_user_id"
	fieldTargetApplicationID = "target_application_id"
)

type CreateCommand struct {
	*base.Command

	flagChannel             snowflake.ChannelID
	flagMaxAge              uint
	flagMaxUses             uint
	flagTemporary           bool
	flagUnique              bool
	flagTargetType          string
	flagTargetUserID        snowflake.UserID
	flagTargetApplicationID snowflake.ApplicationID
	flagReason              string
	flagValidate            bool
}

func (c *CreateCommand) Synopsis() string {
	return "Create an invite to a channel"
}

func (c *CreateCommand) Help() string {
	return `Usage: soundctl invite create -channel=<id> [options]

  This command creates an invite and prints it. Settings without a flag
  use the server defaults.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))
	c.AddClientFlags(f)

	base.IDVar(f, &c.flagChannel, "channel", "(Required) Channel the invite points to.")
	f.UintVar(&c.flagMaxAge, base.FlagName(fieldMaxAge), 0, "Seconds until the invite expires, 0 for never.")
	f.UintVar(&c.flagMaxUses, base.FlagName(fieldMaxUses), 0, "Number of uses allowed, 0 for unlimited.")
	f.BoolVar(&c.flagTemporary, base.FlagName(fieldTemporary), false, "Grant temporary membership.")
	f.BoolVar(&c.flagUnique, base.FlagName(fieldUnique), false, "Never reuse a similar existing invite.")
	f.StringVar(&c.flagTargetType, base.FlagName(fieldTargetType), "",
		"Voice channel target, \"stream\" or \"embedded_application\".")
	base.IDVar(f, &c.flagTargetUserID, base.FlagName(fieldTargetUserID), "User whose stream the invite opens.")
	base.IDVar(f, &c.flagTargetApplicationID, base.FlagName(fieldTargetApplicationID), "Embedded application the invite opens.")
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

	if c.flagChannel == 0 {
		ui.Error("channel flag is required")
		return 1
	}
	if c.flagMaxAge > math.MaxUint32 {
		ui.Error(fmt.Sprintf("max-age must be at most %d", uint32(math.MaxUint32)))
		return 1
	}
	if c.flagMaxUses > math.MaxUint8 {
		ui.Error(fmt.Sprintf("max-uses must be at most %d", math.MaxUint8))
		return 1
	}

	b := builder.NewCreateInvite()
	if flags.IsSet(base.FlagName(fieldMaxAge)) {
		b = b.MaxAge(uint32(c.flagMaxAge))
	}
	if flags.IsSet(base.FlagName(fieldMaxUses)) {
		b = b.MaxUses(uint8(c.flagMaxUses))
	}
	if flags.IsSet(base.FlagName(fieldTemporary)) {
		b = b.Temporary(c.flagTemporary)
	}
	if flags.IsSet(base.FlagName(fieldUnique)) {
		b = b.Unique(c.flagUnique)
	}
	if flags.IsSet(base.FlagName(fieldTargetType)) {
		targetType, err := models.ParseInviteTargetType(c.flagTargetType)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		b = b.TargetType(targetType)
	}
	if flags.IsSet(base.FlagName(fieldTargetUserID)) {
		b = b.TargetUserID(c.flagTargetUserID)
	}
	if flags.IsSet(base.FlagName(fieldTargetApplicationID)) {
		b = b.TargetApplicationID(c.flagTargetApplicationID)
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

	inv, err := b.Execute(ctx, client, c.flagChannel)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	logger.Info("created invite",
		"channel_id", c.flagChannel,
		"code", inv.Code,
	)

	return c.Output(inv)
}
