package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

// InviteBaseURL is the host serving invite links.
const InviteBaseURL = "https://discord.gg"

// InviteTargetType selects what a voice channel invite opens.
type InviteTargetType uint8

const (
	InviteTargetStream              InviteTargetType = 1
	InviteTargetEmbeddedApplication InviteTargetType = 2
)

func (t InviteTargetType) String() string {
	switch t {
	case InviteTargetStream:
		return "stream"
	case InviteTargetEmbeddedApplication:
		return "embedded_application"
	default:
		return fmt.Sprintf("InviteTargetType(%d)", uint8(t))
	}
}

// ParseInviteTargetType accepts the names returned by String.
func ParseInviteTargetType(s string) (InviteTargetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stream":
		return InviteTargetStream, nil
	case "embedded_application", "embedded-application":
		return InviteTargetEmbeddedApplication, nil
	default:
		return 0, fmt.Errorf("unknown invite target type %q", s)
	}
}

// PartialGuild is the guild summary embedded in invites.
type PartialGuild struct {
	ID          snowflake.GuildID `json:"id"`
	Name        string            `json:"name"`
	Icon        *string           `json:"icon,omitempty"`
	Description *string           `json:"description,omitempty"`
}

// PartialChannel is the channel summary embedded in invites.
type PartialChannel struct {
	ID   snowflake.ChannelID `json:"id"`
	Name string              `json:"name"`
	Type int                 `json:"type"`
}

// Invite is an invite with its metadata, as returned when one is created.
type Invite struct {
	Code    string          `json:"code"`
	Guild   *PartialGuild   `json:"guild,omitempty"`
	Channel *PartialChannel `json:"channel"`
	Inviter *User           `json:"inviter,omitempty"`

	TargetType        *InviteTargetType `json:"target_type,omitempty"`
	TargetUser        *User             `json:"target_user,omitempty"`
	TargetApplication *Application      `json:"target_application,omitempty"`

	ApproximatePresenceCount *int       `json:"approximate_presence_count,omitempty"`
	ApproximateMemberCount   *int       `json:"approximate_member_count,omitempty"`
	ExpiresAt                *time.Time `json:"expires_at,omitempty"`

	Uses      int       `json:"uses"`
	MaxUses   int       `json:"max_uses"`
	MaxAge    int       `json:"max_age"`
	Temporary bool      `json:"temporary"`
	CreatedAt time.Time `json:"created_at"`
}

// URL returns the shareable invite link.
func (i *Invite) URL() string {
	return InviteBaseURL + "/" + i.Code
}

// Expires reports whether the invite has a time limit.
func (i *Invite) Expires() bool {
	return i.MaxAge > 0
}
