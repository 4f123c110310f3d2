package models

import "github.com/hashicorp-forge/soundboard/pkg/snowflake"

// SoundboardSound is a sound that can be played in voice channels.
//
// A sound belongs to a guild, or to no guild when it is one of the
// platform's default sounds. A snapshot is never mutated client side; edits
// return a new snapshot that replaces the old one.
type SoundboardSound struct {
	ID   snowflake.SoundID `json:"sound_id"`
	Name string            `json:"name"`
	// Volume ranges from 0 to 1.
	Volume float64 `json:"volume"`

	// A sound carries a custom emoji (EmojiID) or a standard unicode emoji
	// (EmojiName). The service keeps at most one of them meaningful.
	EmojiID   *snowflake.EmojiID `json:"emoji_id"`
	EmojiName *string            `json:"emoji_name"`

	GuildID *snowflake.GuildID `json:"guild_id,omitempty"`

	// Available is false when the guild lost the boost tier that unlocked
	// the sound. The sound is not deleted.
	Available bool `json:"available"`

	// User is the creator. Only present for callers with the permission to
	// manage guild expressions.
	User *User `json:"user,omitempty"`
}

// URL returns the direct link to the sound's audio file.
func (s *SoundboardSound) URL() string {
	return s.ID.URL()
}

// IsDefault reports whether the sound is a platform default sound rather
// than one uploaded to a guild.
func (s *SoundboardSound) IsDefault() bool {
	return s.GuildID == nil
}
