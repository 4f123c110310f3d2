package builder

import (
	"context"
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/soundboard/pkg/optional"
	"github.com/hashicorp-forge/soundboard/pkg/rest"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

type sendSoundboardSoundPayload struct {
	SoundID       snowflake.SoundID                 `json:"sound_id"`
	SourceGuildID optional.Field[snowflake.GuildID] `json:"source_guild_id,omitzero"`
}

// SendSoundboardSound builds a request that plays a sound in the voice
// channel the current user is connected to.
//
// Requires the Speak and Use Soundboard permissions, and Use External Sounds
// when the sound comes from another guild.
type SendSoundboardSound struct {
	payload sendSoundboardSoundPayload
}

// NewSendSoundboardSound starts a send request for soundID.
func NewSendSoundboardSound(soundID snowflake.SoundID) SendSoundboardSound {
	return SendSoundboardSound{
		payload: sendSoundboardSoundPayload{SoundID: soundID},
	}
}

// SoundID replaces the sound given to NewSendSoundboardSound.
func (b SendSoundboardSound) SoundID(id snowflake.SoundID) SendSoundboardSound {
	b.payload.SoundID = id
	return b
}

// SourceGuildID sets the guild the sound comes from. Required for sounds
// from a different guild than the channel's.
func (b SendSoundboardSound) SourceGuildID(id snowflake.GuildID) SendSoundboardSound {
	b.payload.SourceGuildID = optional.Some(id)
	return b
}

// MarshalJSON encodes the request body.
func (b SendSoundboardSound) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.payload)
}

// Validate checks that a sound is selected. Execute does not call it.
func (b SendSoundboardSound) Validate() error {
	return validation.Errors{
		"sound_id": validation.Validate(b.payload.SoundID, validation.Required),
	}.Filter()
}

// Execute plays the sound in channelID. The service returns no content.
func (b SendSoundboardSound) Execute(ctx context.Context, s rest.Submitter, channelID snowflake.ChannelID) error {
	return executeNoContent(ctx, "send soundboard sound", s, &rest.Request{
		Method: http.MethodPost,
		Path:   rest.SendSoundboardSound(channelID),
		Body:   b,
	})
}
