package rest

import "github.com/hashicorp-forge/soundboard/pkg/snowflake"

// Paths are built by concatenation; snowflakes never need escaping.

// GuildSoundboardSounds is the collection of a guild's sounds.
// POST creates a sound, GET lists them.
func GuildSoundboardSounds(guildID snowflake.GuildID) string {
	return "/guilds/" + guildID.String() + "/soundboard-sounds"
}

// GuildSoundboardSound is a single guild sound. GET, PATCH and DELETE.
func GuildSoundboardSound(guildID snowflake.GuildID, soundID snowflake.SoundID) string {
	return GuildSoundboardSounds(guildID) + "/" + soundID.String()
}

// DefaultSoundboardSounds lists the platform's built-in sounds.
func DefaultSoundboardSounds() string {
	return "/soundboard-default-sounds"
}

// ChannelInvites is the invite collection of a channel. POST creates one.
func ChannelInvites(channelID snowflake.ChannelID) string {
	return "/channels/" + channelID.String() + "/invites"
}

// SendSoundboardSound plays a sound in a voice channel.
func SendSoundboardSound(channelID snowflake.ChannelID) string {
	return "/channels/" + channelID.String() + "/send-soundboard-sound"
}
