package builder

import (
	"context"
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/soundboard/pkg/attachment"
	"github.com/hashicorp-forge/soundboard/pkg/models"
	"github.com/hashicorp-forge/soundboard/pkg/optional"
	"github.com/hashicorp-forge/soundboard/pkg/rest"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

type createSoundboardSoundPayload struct {
	Name      string                            `json:"name"`
	Sound     string                            `json:"sound"`
	Volume    optional.Field[float64]           `json:"volume,omitzero"`
	EmojiID   optional.Field[snowflake.EmojiID] `json:"emoji_id,omitzero"`
	EmojiName optional.Field[string]            `json:"emoji_name,omitzero"`
}

// CreateSoundboardSound builds a request that uploads a new sound to a guild.
//
// Requires the Create Guild Expressions permission.
type CreateSoundboardSound struct {
	payload        createSoundboardSoundPayload
	auditLogReason string
}

// NewCreateSoundboardSound starts a create request with its mandatory
// fields. The sound must be an MP3 or OGG file of at most 512 KB and 5.2
// seconds.
func NewCreateSoundboardSound(name string, sound *attachment.Attachment) CreateSoundboardSound {
	return CreateSoundboardSound{
		payload: createSoundboardSoundPayload{
			Name:  name,
			Sound: sound.ToBase64(),
		},
	}
}

// Name replaces the name given to NewCreateSoundboardSound.
// Must be between 2 and 32 characters long.
func (b CreateSoundboardSound) Name(name string) CreateSoundboardSound {
	b.payload.Name = name
	return b
}

// Sound replaces the file given to NewCreateSoundboardSound.
func (b CreateSoundboardSound) Sound(sound *attachment.Attachment) CreateSoundboardSound {
	b.payload.Sound = sound.ToBase64()
	return b
}

// Volume sets the playback volume, between 0 and 1.
func (b CreateSoundboardSound) Volume(volume float64) CreateSoundboardSound {
	b.payload.Volume = optional.Some(volume)
	return b
}

// EmojiID sets a custom emoji for the sound.
func (b CreateSoundboardSound) EmojiID(id snowflake.EmojiID) CreateSoundboardSound {
	b.payload.EmojiID = optional.Some(id)
	return b
}

// EmojiName sets a standard unicode emoji for the sound.
func (b CreateSoundboardSound) EmojiName(name string) CreateSoundboardSound {
	b.payload.EmojiName = optional.Some(name)
	return b
}

// AuditLogReason sets the audit log reason sent with the request.
func (b CreateSoundboardSound) AuditLogReason(reason string) CreateSoundboardSound {
	b.auditLogReason = reason
	return b
}

// MarshalJSON encodes the request body.
func (b CreateSoundboardSound) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.payload)
}

// Validate checks the documented bounds locally. Execute does not call it.
func (b CreateSoundboardSound) Validate() error {
	errs := validation.Errors{
		"name":  validation.Validate(b.payload.Name, nameRules...),
		"sound": validation.Validate(b.payload.Sound, validation.Required),
	}
	validateSoundFields(errs, b.payload.Volume, b.payload.EmojiID, b.payload.EmojiName)
	return errs.Filter()
}

// Execute creates the sound in guildID.
func (b CreateSoundboardSound) Execute(ctx context.Context, s rest.Submitter, guildID snowflake.GuildID) (*models.SoundboardSound, error) {
	return execute[models.SoundboardSound](ctx, "create soundboard sound", s, &rest.Request{
		Method:         http.MethodPost,
		Path:           rest.GuildSoundboardSounds(guildID),
		Body:           b,
		AuditLogReason: b.auditLogReason,
	})
}
