// Package snowflake provides strongly typed 64-bit resource identifiers.
//
// The remote service issues every resource a snowflake: a globally unique,
// never reused unsigned 64-bit integer whose upper 42 bits carry the
// millisecond creation time relative to the platform epoch
// (2015-01-01T00:00:00Z).
//
// Each resource kind gets its own named type (SoundID, GuildID, ChannelID,
// UserID, ApplicationID, EmojiID). The types share a representation but are
// not interchangeable, so passing a ChannelID where a SoundID is expected is
// a compile error:
//
//	guild := snowflake.GuildID(7)
//	sound := snowflake.SoundID(42)
//	fmt.Println(guild.Get(), sound.String()) // 7 42
//
// Identifiers compare, order and hash like the underlying integer. No
// structural validation is performed; the value is opaque beyond Get and
// CreatedAt.
//
// # JSON
//
// The service sends identifiers as decimal strings to avoid precision loss in
// clients that use floating point numbers. All identifier types marshal to a
// JSON string and accept either a string or a number when unmarshaling.
package snowflake
