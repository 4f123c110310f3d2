package snowflake

import "time"

// SoundID identifies a soundboard sound.
type SoundID uint64

// GuildID identifies a guild (server), the collection that owns soundboard sounds.
type GuildID uint64

// ChannelID identifies a channel.
type ChannelID uint64

// UserID identifies a user.
type UserID uint64

// ApplicationID identifies an application.
type ApplicationID uint64

// EmojiID identifies a custom emoji.
type EmojiID uint64

// Get returns the raw integer value.
func (id SoundID) Get() uint64 { return uint64(id) }

func (id SoundID) String() string { return format(uint64(id)) }

// CreatedAt returns the creation time embedded in the identifier.
func (id SoundID) CreatedAt() time.Time { return Timestamp(uint64(id)) }

// MarshalJSON implements json.Marshaler.
func (id SoundID) MarshalJSON() ([]byte, error) { return marshal(uint64(id)) }

// UnmarshalJSON implements json.Unmarshaler.
func (id *SoundID) UnmarshalJSON(data []byte) error { return unmarshal(data, (*uint64)(id)) }

// Get returns the raw integer value.
func (id GuildID) Get() uint64 { return uint64(id) }

func (id GuildID) String() string { return format(uint64(id)) }

// CreatedAt returns the creation time embedded in the identifier.
func (id GuildID) CreatedAt() time.Time { return Timestamp(uint64(id)) }

// MarshalJSON implements json.Marshaler.
func (id GuildID) MarshalJSON() ([]byte, error) { return marshal(uint64(id)) }

// UnmarshalJSON implements json.Unmarshaler.
func (id *GuildID) UnmarshalJSON(data []byte) error { return unmarshal(data, (*uint64)(id)) }

// Get returns the raw integer value.
func (id ChannelID) Get() uint64 { return uint64(id) }

func (id ChannelID) String() string { return format(uint64(id)) }

// CreatedAt returns the creation time embedded in the identifier.
func (id ChannelID) CreatedAt() time.Time { return Timestamp(uint64(id)) }

// MarshalJSON implements json.Marshaler.
func (id ChannelID) MarshalJSON() ([]byte, error) { return marshal(uint64(id)) }

// UnmarshalJSON implements json.Unmarshaler.
func (id *ChannelID) UnmarshalJSON(data []byte) error { return unmarshal(data, (*uint64)(id)) }

// Get returns the raw integer value.
func (id UserID) Get() uint64 { return uint64(id) }

func (id UserID) String() string { return format(uint64(id)) }

// CreatedAt returns the creation time embedded in the identifier.
func (id UserID) CreatedAt() time.Time { return Timestamp(uint64(id)) }

// MarshalJSON implements json.Marshaler.
func (id UserID) MarshalJSON() ([]byte, error) { return marshal(uint64(id)) }

// UnmarshalJSON implements json.Unmarshaler.
func (id *UserID) UnmarshalJSON(data []byte) error { return unmarshal(data, (*uint64)(id)) }

// Get returns the raw integer value.
func (id ApplicationID) Get() uint64 { return uint64(id) }

func (id ApplicationID) String() string { return format(uint64(id)) }

// CreatedAt returns the creation time embedded in the identifier.
func (id ApplicationID) CreatedAt() time.Time { return Timestamp(uint64(id)) }

// MarshalJSON implements json.Marshaler.
func (id ApplicationID) MarshalJSON() ([]byte, error) { return marshal(uint64(id)) }

// UnmarshalJSON implements json.Unmarshaler.
func (id *ApplicationID) UnmarshalJSON(data []byte) error { return unmarshal(data, (*uint64)(id)) }

// Get returns the raw integer value.
func (id EmojiID) Get() uint64 { return uint64(id) }

func (id EmojiID) String() string { return format(uint64(id)) }

// CreatedAt returns the creation time embedded in the identifier.
func (id EmojiID) CreatedAt() time.Time { return Timestamp(uint64(id)) }

// MarshalJSON implements json.Marshaler.
func (id EmojiID) MarshalJSON() ([]byte, error) { return marshal(uint64(id)) }

// UnmarshalJSON implements json.Unmarshaler.
func (id *EmojiID) UnmarshalJSON(data []byte) error { return unmarshal(data, (*uint64)(id)) }
